package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/devhive-labs/portfolio-service/internal/domain"
	"github.com/devhive-labs/portfolio-service/internal/events"
)

// memUserRepo is an in-memory UserRepository used across service tests.
type memUserRepo struct {
	mu            sync.Mutex
	byID          map[string]*domain.User
	nextID        int
	approvalWrite int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: make(map[string]*domain.User)}
}

func (r *memUserRepo) add(user *domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("u%03d", r.nextID)
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.byID[user.ID] = &clone
	return user
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.add(user)
	return nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *memUserRepo) UpdateApproval(_ context.Context, id string, state domain.ApprovalState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	r.approvalWrite++
	user.Approval = state
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, 0, len(r.byID))
	for _, user := range r.byID {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

// memVisitRepo is an in-memory VisitRepository with monotonic timestamps.
type memVisitRepo struct {
	mu      sync.Mutex
	visits  []domain.Visit
	nextID  int
	clock   time.Time
	trimErr error
}

func newMemVisitRepo() *memVisitRepo {
	return &memVisitRepo{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memVisitRepo) Create(_ context.Context, visit *domain.Visit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.clock = r.clock.Add(time.Second)
	visit.ID = fmt.Sprintf("v%03d", r.nextID)
	visit.VisitedAt = r.clock
	r.visits = append(r.visits, *visit)
	return nil
}

func (r *memVisitRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Visit
	for _, v := range r.visits {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VisitedAt.After(out[j].VisitedAt) })
	return out, nil
}

func (r *memVisitRepo) TrimToNewest(_ context.Context, ownerID string, keep int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.trimErr != nil {
		return 0, r.trimErr
	}

	var owned []domain.Visit
	var rest []domain.Visit
	for _, v := range r.visits {
		if v.OwnerID == ownerID {
			owned = append(owned, v)
		} else {
			rest = append(rest, v)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].VisitedAt.After(owned[j].VisitedAt) })
	if len(owned) <= keep {
		return 0, nil
	}
	removed := int64(len(owned) - keep)
	r.visits = append(rest, owned[:keep]...)
	return removed, nil
}

func (r *memVisitRepo) Delete(_ context.Context, ownerID, visitID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, v := range r.visits {
		if v.ID == visitID && v.OwnerID == ownerID {
			r.visits = append(r.visits[:i], r.visits[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *memVisitRepo) DeleteAllByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []domain.Visit
	var removed int64
	for _, v := range r.visits {
		if v.OwnerID == ownerID {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	r.visits = kept
	return removed, nil
}

// captureDispatcher records published events.
type captureDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *captureDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *captureDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *captureDispatcher) ofType(t events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []events.Event
	for _, e := range d.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// staticDeduper reports a fixed answer.
type staticDeduper struct {
	seen bool
	err  error
}

func (d *staticDeduper) Seen(context.Context, string, string, string) (bool, error) {
	return d.seen, d.err
}
