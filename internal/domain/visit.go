package domain

import "time"

// RetentionLimitDefault caps the number of visit rows kept per owner.
const RetentionLimitDefault = 30

// Visit is an append-only page-view event attributed to a profile owner.
type Visit struct {
	ID        string
	OwnerID   string
	IP        string
	UserAgent string
	Page      string
	VisitedAt time.Time
}
