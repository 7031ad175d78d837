package dto

import (
	"time"

	"github.com/devhive-labs/portfolio-service/internal/domain"
)

// SignupRequest payload for new portfolio owners.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// VerifyResponse is returned by GET /api/auth/verify.
type VerifyResponse struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"userId"`
}

// ApprovalRequest updates the approval flag.
type ApprovalRequest struct {
	Approval string `json:"approval"`
}

// UserUpdateRequest is a partial profile edit; nil fields stay untouched.
type UserUpdateRequest struct {
	Username      *string                `json:"username"`
	Title         *string                `json:"title"`
	Image         *string                `json:"image"`
	Phone         *string                `json:"phone"`
	PortfolioLink *string                `json:"portfolioLink"`
	Notes         *string                `json:"notes"`
	ResumePDF     *string                `json:"resumePdf"`
	CVPDF         *string                `json:"cvPdf"`
	Bio           *domain.Bio            `json:"bio"`
	Social        []domain.SocialLink    `json:"social"`
	Skills        []domain.SkillCategory `json:"skills"`
	CurrentStatus *domain.CurrentStatus  `json:"currentStatus"`
	Projects      []domain.Project       `json:"projects"`
	Experience    []domain.Experience    `json:"experience"`
	Education     []domain.Education     `json:"education"`
	Certificates  []domain.Certificate   `json:"certificates"`
}

// UserResponse is the full profile representation.
type UserResponse struct {
	ID            string                 `json:"id"`
	Email         string                 `json:"email"`
	Username      string                 `json:"username,omitempty"`
	Role          domain.Role            `json:"role"`
	Approval      domain.ApprovalState   `json:"approval"`
	Title         string                 `json:"title,omitempty"`
	Image         string                 `json:"image,omitempty"`
	Phone         string                 `json:"phone,omitempty"`
	PortfolioLink string                 `json:"portfolioLink,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	ResumePDF     string                 `json:"resumePdf,omitempty"`
	CVPDF         string                 `json:"cvPdf,omitempty"`
	Bio           *domain.Bio            `json:"bio,omitempty"`
	Social        []domain.SocialLink    `json:"social,omitempty"`
	Skills        []domain.SkillCategory `json:"skills,omitempty"`
	CurrentStatus *domain.CurrentStatus  `json:"currentStatus,omitempty"`
	Projects      []domain.Project       `json:"projects,omitempty"`
	Experience    []domain.Experience    `json:"experience,omitempty"`
	Education     []domain.Education     `json:"education,omitempty"`
	Certificates  []domain.Certificate   `json:"certificates,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

// UserSummary is the directory-listing shape.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Title    string `json:"title,omitempty"`
	Image    string `json:"image,omitempty"`
}

// NewUserResponse maps a domain user to its API representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Username:      user.Username,
		Role:          user.Role,
		Approval:      user.Approval,
		Title:         user.Title,
		Image:         user.Image,
		Phone:         user.Phone,
		PortfolioLink: user.PortfolioLink,
		Notes:         user.Notes,
		ResumePDF:     user.ResumePDF,
		CVPDF:         user.CVPDF,
		Bio:           user.Bio,
		Social:        user.Social,
		Skills:        user.Skills,
		CurrentStatus: user.CurrentStatus,
		Projects:      user.Projects,
		Experience:    user.Experience,
		Education:     user.Education,
		Certificates:  user.Certificates,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// NewUserSummary maps a domain user to the directory shape.
func NewUserSummary(user *domain.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Title:    user.Title,
		Image:    user.Image,
	}
}
