package domain

import "time"

// Role separates portfolio owners from administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ApprovalState gates public visibility of a profile. Wire values are
// inherited from the original data set; the approved state keeps its legacy
// value "approval" on the wire while being named Approved in code.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalFailed   ApprovalState = "failed"
	ApprovalApproved ApprovalState = "approval"
)

// ParseApprovalState validates a wire value against the enumerated set.
func ParseApprovalState(value string) (ApprovalState, bool) {
	switch ApprovalState(value) {
	case ApprovalPending, ApprovalFailed, ApprovalApproved:
		return ApprovalState(value), true
	default:
		return "", false
	}
}

// User is the domain model for a portfolio owner.
type User struct {
	ID            string
	Email         string
	Username      string
	PasswordHash  string
	Role          Role
	Approval      ApprovalState
	Title         string
	Image         string
	Phone         string
	PortfolioLink string
	Notes         string
	ResumePDF     string
	CVPDF         string

	Bio           *Bio
	Social        []SocialLink
	Skills        []SkillCategory
	CurrentStatus *CurrentStatus
	Projects      []Project
	Experience    []Experience
	Education     []Education
	Certificates  []Certificate

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// PubliclyVisible reports whether third parties may see profile content.
func (u *User) PubliclyVisible() bool {
	return u != nil && u.Approval == ApprovalApproved
}
