package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/devhive-labs/portfolio-service/internal/auth"
	"github.com/devhive-labs/portfolio-service/internal/domain"
	"github.com/devhive-labs/portfolio-service/internal/events"
	"github.com/devhive-labs/portfolio-service/internal/repository"
	apperrors "github.com/devhive-labs/portfolio-service/pkg/util"
)

// ProfileView is the approval-gated result of a profile lookup. When Full is
// false only the contact fallback is populated.
type ProfileView struct {
	Full     bool
	User     *domain.User
	Fallback *ContactFallback
}

// ContactFallback is served to third parties while a profile is not
// approved.
type ContactFallback struct {
	Username string               `json:"username,omitempty"`
	Title    string               `json:"title,omitempty"`
	Approval domain.ApprovalState `json:"approval"`
	Contact  []domain.SocialLink  `json:"contact,omitempty"`
	Message  string               `json:"message"`
}

// ProfileUpdate carries a partial profile edit; nil fields are untouched.
type ProfileUpdate struct {
	Username      *string
	Title         *string
	Image         *string
	Phone         *string
	PortfolioLink *string
	Notes         *string
	ResumePDF     *string
	CVPDF         *string
	Bio           *domain.Bio
	Social        []domain.SocialLink
	Skills        []domain.SkillCategory
	CurrentStatus *domain.CurrentStatus
	Projects      []domain.Project
	Experience    []domain.Experience
	Education     []domain.Education
	Certificates  []domain.Certificate
}

// ProfileService owns profile retrieval, editing and the approval workflow.
type ProfileService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository, dispatcher events.Dispatcher) *ProfileService {
	return &ProfileService{users: users, dispatcher: dispatcher, now: time.Now}
}

// GetProfile resolves a profile for the given viewer. Owners and admins see
// full content regardless of approval state; everyone else gets the contact
// fallback until the profile is approved.
func (s *ProfileService) GetProfile(ctx context.Context, id string, viewer *auth.Principal) (*ProfileView, error) {
	if id == "" {
		return nil, apperrors.NewValidationError("user id required", nil)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}

	if user.PubliclyVisible() || viewer.IsAdmin() || viewer.Owns(user.ID) {
		return &ProfileView{Full: true, User: user}, nil
	}
	return &ProfileView{Full: false, Fallback: fallbackFor(user)}, nil
}

func fallbackFor(user *domain.User) *ContactFallback {
	var contact []domain.SocialLink
	for _, link := range user.Social {
		switch link.Platform {
		case domain.PlatformMail, domain.PlatformGmail, domain.PlatformPhone:
			contact = append(contact, link)
		}
	}
	return &ContactFallback{
		Username: user.Username,
		Title:    user.Title,
		Approval: user.Approval,
		Contact:  contact,
		Message:  "this profile is not publicly available; please contact the administrator",
	}
}

// ListDirectory returns approved profiles for the public directory.
func (s *ProfileService) ListDirectory(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.PubliclyVisible() {
			approved = append(approved, u)
		}
	}
	return approved, nil
}

// UpdateProfile applies a partial edit to the owner's profile. Experience
// durations are derived server-side from the submitted date ranges.
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&user.Username, update.Username)
	applyString(&user.Title, update.Title)
	applyString(&user.Image, update.Image)
	applyString(&user.Phone, update.Phone)
	applyString(&user.PortfolioLink, update.PortfolioLink)
	applyString(&user.Notes, update.Notes)
	applyString(&user.ResumePDF, update.ResumePDF)
	applyString(&user.CVPDF, update.CVPDF)

	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.Social != nil {
		for _, link := range update.Social {
			if !domain.ValidPlatform(link.Platform) {
				return nil, apperrors.NewValidationError("unknown social platform",
					map[string]any{"platform": string(link.Platform)})
			}
		}
		user.Social = update.Social
	}
	if update.Skills != nil {
		user.Skills = update.Skills
	}
	if update.CurrentStatus != nil {
		user.CurrentStatus = update.CurrentStatus
	}
	if update.Projects != nil {
		user.Projects = update.Projects
	}
	if update.Experience != nil {
		now := s.now()
		for i := range update.Experience {
			update.Experience[i].DeriveDuration(now)
		}
		user.Experience = update.Experience
	}
	if update.Education != nil {
		user.Education = update.Education
	}
	if update.Certificates != nil {
		user.Certificates = update.Certificates
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the account; visit rows cascade at the store level.
func (s *ProfileService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return err
	}
	return nil
}

// UpdateApproval sets the approval state after validating the wire value
// against the enumerated set. Nothing is written for an invalid value.
func (s *ProfileService) UpdateApproval(ctx context.Context, id, value string) (domain.ApprovalState, error) {
	state, ok := domain.ParseApprovalState(value)
	if !ok {
		return "", apperrors.NewValidationError("invalid approval state",
			map[string]any{"approval": value, "allowed": []string{"pending", "failed", "approval"}})
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return "", err
	}

	oldState := user.Approval
	if err := s.users.UpdateApproval(ctx, id, state); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return "", err
	}

	if s.dispatcher != nil && oldState != state {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventApprovalChanged,
			OwnerID:   id,
			Timestamp: s.now(),
			Payload:   events.ApprovalChangedPayload{OldState: oldState, NewState: state},
		})
	}
	return state, nil
}
