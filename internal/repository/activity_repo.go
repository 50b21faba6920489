package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

func (a *Activity) clone() *Activity {
	c := *a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return &c
}

type ActivityRepository interface {
	// Load replaces the whole registry with the given activities.
	Load(ctx context.Context, activities []*Activity) error
	List(ctx context.Context) ([]*Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// memActivityRepository keeps activities in process memory. Returned records
// are copies, so callers never alias the stored participant slices.
type memActivityRepository struct {
	mu         sync.RWMutex
	order      []string
	activities map[string]*Activity
}

func NewMemActivityRepository() ActivityRepository {
	return &memActivityRepository{
		activities: make(map[string]*Activity),
	}
}

func (m *memActivityRepository) Load(_ context.Context, activities []*Activity) error {
	order := make([]string, 0, len(activities))
	byName := make(map[string]*Activity, len(activities))

	for _, a := range activities {
		if _, ok := byName[a.Name]; ok {
			return errors.Wrapf(ErrAlreadyExists, "activity %q", a.Name)
		}
		if a.MaxParticipants <= 0 {
			return errors.Errorf("activity %q: max participants must be positive", a.Name)
		}
		if len(a.Participants) > a.MaxParticipants {
			return errors.Errorf("activity %q: %d participants exceed capacity %d", a.Name, len(a.Participants), a.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, dup := seen[email]; dup {
				return errors.Wrapf(ErrAlreadyExists, "activity %q: participant %q", a.Name, email)
			}
			seen[email] = struct{}{}
		}

		order = append(order, a.Name)
		byName[a.Name] = a.clone()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.order = order
	m.activities = byName
	return nil
}

func (m *memActivityRepository) List(_ context.Context) ([]*Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	res := make([]*Activity, 0, len(m.order))
	for _, name := range m.order {
		res = append(res, m.activities[name].clone())
	}
	return res, nil
}

func (m *memActivityRepository) Get(_ context.Context, name string) (*Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return a.clone(), nil
}

func (m *memActivityRepository) AddParticipant(_ context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.activities[name]
	if !ok {
		return ErrNotFound
	}
	if slices.Contains(a.Participants, email) {
		return ErrAlreadyExists
	}

	a.Participants = append(a.Participants, email)
	return nil
}

func (m *memActivityRepository) RemoveParticipant(_ context.Context, name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.activities[name]
	if !ok {
		return ErrNotFound
	}

	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return ErrNotFound
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}
