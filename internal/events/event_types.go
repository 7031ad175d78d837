package events

import (
	"time"

	"github.com/devhive-labs/portfolio-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered  EventType = "user_registered"
	EventApprovalChanged EventType = "approval_changed"
	EventVisitRecorded   EventType = "visit_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OwnerID   string      `json:"owner_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload accompanies EventUserRegistered.
type UserRegisteredPayload struct {
	Email    string `json:"email"`
	Username string `json:"username,omitempty"`
}

// ApprovalChangedPayload accompanies EventApprovalChanged.
type ApprovalChangedPayload struct {
	OldState domain.ApprovalState `json:"old_state"`
	NewState domain.ApprovalState `json:"new_state"`
}

// VisitRecordedPayload accompanies EventVisitRecorded.
type VisitRecordedPayload struct {
	VisitID string `json:"visit_id"`
	Page    string `json:"page"`
	Trimmed int64  `json:"trimmed"`
}
