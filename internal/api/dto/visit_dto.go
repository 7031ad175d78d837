package dto

import (
	"time"

	"github.com/devhive-labs/portfolio-service/internal/domain"
)

// TrackVisitRequest payload for POST /api/visits/track.
type TrackVisitRequest struct {
	UserID string `json:"userId"`
	Page   string `json:"page"`
}

// VisitResponse is one visit row on the wire.
type VisitResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"userId"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Page      string    `json:"page,omitempty"`
	VisitedAt time.Time `json:"time"`
}

// NewVisitResponse maps a domain visit to its API representation.
func NewVisitResponse(visit *domain.Visit) VisitResponse {
	return VisitResponse{
		ID:        visit.ID,
		OwnerID:   visit.OwnerID,
		IP:        visit.IP,
		UserAgent: visit.UserAgent,
		Page:      visit.Page,
		VisitedAt: visit.VisitedAt,
	}
}

// NewVisitResponses maps a slice of visits.
func NewVisitResponses(visits []domain.Visit) []VisitResponse {
	out := make([]VisitResponse, 0, len(visits))
	for i := range visits {
		out = append(out, NewVisitResponse(&visits[i]))
	}
	return out
}
