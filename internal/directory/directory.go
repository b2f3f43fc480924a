package directory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Activity is an extracurricular offering with a capacity-bounded roster.
// Participants stay ordered by signup time and contain no duplicates.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

var (
	ErrNotFound        = errors.New("activity not found")
	ErrAlreadyEnrolled = errors.New("student is already signed up")
	ErrFull            = errors.New("activity is full")
	ErrNotEnrolled     = errors.New("student is not signed up for this activity")
)

// Service is an in-memory activity registry. The key set is fixed at
// construction; only rosters mutate, and every mutation runs its
// check-then-act sequence under the write lock so concurrent signups cannot
// race a roster past capacity.
type Service struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// New seeds a registry from the given activity set and validates the roster
// invariants up front.
func New(seed map[string]Activity) (*Service, error) {
	activities := make(map[string]*Activity, len(seed))
	for name, act := range seed {
		if name == "" {
			return nil, errors.New("activity name must not be empty")
		}
		if act.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", name)
		}
		if len(act.Participants) > act.MaxParticipants {
			return nil, fmt.Errorf("activity %q: %d participants exceed capacity %d",
				name, len(act.Participants), act.MaxParticipants)
		}
		seen := make(map[string]struct{}, len(act.Participants))
		for _, email := range act.Participants {
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %s", name, email)
			}
			seen[email] = struct{}{}
		}
		copied := act
		copied.Participants = slices.Clone(act.Participants)
		activities[name] = &copied
	}
	return &Service{activities: activities}, nil
}

// List returns a deep-copied snapshot of the full registry. Callers may
// mutate the result freely.
func (s *Service) List(ctx context.Context) map[string]Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Activity, len(s.activities))
	for name, act := range s.activities {
		copied := *act
		copied.Participants = slices.Clone(act.Participants)
		out[name] = copied
	}
	return out
}

// Signup appends email to the named activity's roster. Fails with ErrNotFound
// for an unknown activity, ErrAlreadyEnrolled for a duplicate and ErrFull
// when the roster is at capacity. Never silently succeeds on a repeat call.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if slices.Contains(act.Participants, email) {
		return ErrAlreadyEnrolled
	}
	if len(act.Participants) >= act.MaxParticipants {
		return ErrFull
	}
	act.Participants = append(act.Participants, email)
	return nil
}

// Unregister removes email from the named activity's roster. Fails with
// ErrNotFound for an unknown activity and ErrNotEnrolled when the email is
// not on the roster; the roster is left untouched on failure.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	idx := slices.Index(act.Participants, email)
	if idx < 0 {
		return ErrNotEnrolled
	}
	act.Participants = slices.Delete(act.Participants, idx, idx+1)
	return nil
}
