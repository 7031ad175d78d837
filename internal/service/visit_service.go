package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/devhive-labs/portfolio-service/internal/domain"
	"github.com/devhive-labs/portfolio-service/internal/events"
	"github.com/devhive-labs/portfolio-service/internal/repository"
	apperrors "github.com/devhive-labs/portfolio-service/pkg/util"
)

// Deduper suppresses repeated views of the same page from the same source.
// Implementations must be best-effort; errors never block the write path.
type Deduper interface {
	Seen(ctx context.Context, ownerID, ip, page string) (bool, error)
}

// VisitService records page views and enforces the per-owner retention
// ceiling.
type VisitService struct {
	visits     repository.VisitRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	deduper    Deduper
	logger     *zap.Logger
	retention  int
}

// NewVisitService builds the service. A nil deduper disables duplicate-view
// suppression; retention values below one fall back to the default ceiling.
func NewVisitService(visits repository.VisitRepository, users repository.UserRepository,
	dispatcher events.Dispatcher, deduper Deduper, logger *zap.Logger, retention int) *VisitService {
	if retention <= 0 {
		retention = domain.RetentionLimitDefault
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VisitService{
		visits:     visits,
		users:      users,
		dispatcher: dispatcher,
		deduper:    deduper,
		logger:     logger,
		retention:  retention,
	}
}

// Track records one page view for the owner and trims history beyond the
// retention ceiling. The returned flag reports whether a row was written;
// duplicate views inside the dedup window are acknowledged without a write.
// Trim failures are logged and never roll back the insert.
func (s *VisitService) Track(ctx context.Context, ownerID, page, ip, userAgent string) (*domain.Visit, bool, error) {
	if ownerID == "" {
		return nil, false, apperrors.NewValidationError("owner id required", nil)
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, apperrors.NewNotFound("user", map[string]any{"id": ownerID})
		}
		return nil, false, err
	}

	if s.deduper != nil {
		seen, err := s.deduper.Seen(ctx, ownerID, ip, page)
		if err != nil {
			s.logger.Warn("visit dedup check failed", zap.Error(err))
		} else if seen {
			return nil, false, nil
		}
	}

	visit := &domain.Visit{
		OwnerID:   ownerID,
		IP:        ip,
		UserAgent: userAgent,
		Page:      page,
	}
	if err := s.visits.Create(ctx, visit); err != nil {
		return nil, false, err
	}

	trimmed, err := s.visits.TrimToNewest(ctx, ownerID, s.retention)
	if err != nil {
		s.logger.Error("visit retention trim failed",
			zap.String("owner_id", ownerID), zap.Error(err))
	} else if trimmed > 0 {
		s.logger.Debug("trimmed visit history",
			zap.String("owner_id", ownerID), zap.Int64("removed", trimmed))
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventVisitRecorded,
			OwnerID:   ownerID,
			Timestamp: time.Now(),
			Payload:   events.VisitRecordedPayload{VisitID: visit.ID, Page: page, Trimmed: trimmed},
		})
	}
	return visit, true, nil
}

// List returns the owner's visit history, newest first.
func (s *VisitService) List(ctx context.Context, ownerID string) ([]domain.Visit, error) {
	if ownerID == "" {
		return nil, apperrors.NewValidationError("owner id required", nil)
	}
	return s.visits.ListByOwner(ctx, ownerID)
}

// DeleteOne removes a single visit scoped to the owner. A wrong owner id
// matches nothing and surfaces NotFound without touching other rows.
func (s *VisitService) DeleteOne(ctx context.Context, ownerID, visitID string) error {
	if ownerID == "" || visitID == "" {
		return apperrors.NewValidationError("owner id and visit id required", nil)
	}
	affected, err := s.visits.Delete(ctx, ownerID, visitID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.NewNotFound("visit", map[string]any{"id": visitID})
	}
	return nil
}

// DeleteAll removes the owner's entire history. Zero rows removed is a
// success; the operation is idempotent.
func (s *VisitService) DeleteAll(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, apperrors.NewValidationError("owner id required", nil)
	}
	return s.visits.DeleteAllByOwner(ctx, ownerID)
}
