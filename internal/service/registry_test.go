package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakoovad/mergington-activities/internal/db"
	"github.com/yakoovad/mergington-activities/internal/metrics"
	"github.com/yakoovad/mergington-activities/internal/repository"
)

func newSeededService(t *testing.T) *ActivityService {
	t.Helper()

	service := NewActivityService(db.NewMutexTransactor()).
		WithActivityRepo(repository.NewMemActivityRepository()).
		WithMetrics(metrics.New(prometheus.NewRegistry()))

	require.Nil(t, service.Seed(context.Background(), repository.SeedActivities()))
	return service
}

func participantsOf(t *testing.T, s *ActivityService, name string) []string {
	t.Helper()

	all, err := s.List(context.Background())
	require.Nil(t, err)
	require.Contains(t, all, name)
	return all[name].Participants
}

func assertInvariants(t *testing.T, s *ActivityService) {
	t.Helper()

	all, err := s.List(context.Background())
	require.Nil(t, err)

	for name, a := range all {
		assert.LessOrEqual(t, len(a.Participants), a.MaxParticipants, name)

		seen := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			_, dup := seen[email]
			assert.False(t, dup, "duplicate %q in %q", email, name)
			seen[email] = struct{}{}
		}
	}
}

func TestRegistry_ListSeed(t *testing.T) {
	s := newSeededService(t)

	all, err := s.List(context.Background())
	require.Nil(t, err)
	assert.Len(t, all, 9)
	assert.Equal(t, 25, all["Soccer Team"].MaxParticipants)
	assert.Equal(t, []string{"lucas@mergington.edu", "james@mergington.edu"}, all["Soccer Team"].Participants)
}

func TestRegistry_SecondEnrollFailsWithoutChange(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	_, err := s.Enroll(ctx, "Drama Club", "student@mergington.edu")
	require.Nil(t, err)
	before := participantsOf(t, s, "Drama Club")

	_, err = s.Enroll(ctx, "Drama Club", "student@mergington.edu")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeAlreadyEnrolled, err.Code)
	assert.Equal(t, before, participantsOf(t, s, "Drama Club"))
}

func TestRegistry_EnrollWithdrawRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	_, err := s.Enroll(ctx, "Science Club", "first@mergington.edu")
	require.Nil(t, err)
	before := participantsOf(t, s, "Science Club")

	_, err = s.Enroll(ctx, "Science Club", "testflow@mergington.edu")
	require.Nil(t, err)
	assert.Contains(t, participantsOf(t, s, "Science Club"), "testflow@mergington.edu")

	_, err = s.Withdraw(ctx, "Science Club", "testflow@mergington.edu")
	require.Nil(t, err)
	assert.Equal(t, before, participantsOf(t, s, "Science Club"))
}

func TestRegistry_CapacityBoundary(t *testing.T) {
	for _, seeded := range repository.SeedActivities() {
		t.Run(seeded.Name, func(t *testing.T) {
			ctx := context.Background()
			s := newSeededService(t)

			free := seeded.MaxParticipants - len(seeded.Participants)
			for i := 0; i < free; i++ {
				_, err := s.Enroll(ctx, seeded.Name, fmt.Sprintf("player%d@mergington.edu", i))
				require.Nil(t, err, "signup %d", i)
			}
			assert.Len(t, participantsOf(t, s, seeded.Name), seeded.MaxParticipants)

			_, err := s.Enroll(ctx, seeded.Name, "toolate@mergington.edu")
			require.NotNil(t, err)
			assert.Equal(t, ErrorCodeCapacityExceeded, err.Code)
			assert.Equal(t, "Activity is full", err.Message)
			assert.NotContains(t, participantsOf(t, s, seeded.Name), "toolate@mergington.edu")

			assertInvariants(t, s)
		})
	}
}

func TestRegistry_FreedSlot(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	for i := 0; i < 10; i++ {
		_, err := s.Enroll(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i))
		require.Nil(t, err)
	}

	_, err := s.Enroll(ctx, "Chess Club", "blocked@mergington.edu")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeCapacityExceeded, err.Code)

	_, err = s.Withdraw(ctx, "Chess Club", "student0@mergington.edu")
	require.Nil(t, err)

	_, err = s.Enroll(ctx, "Chess Club", "blocked@mergington.edu")
	require.Nil(t, err)

	participants := participantsOf(t, s, "Chess Club")
	assert.Len(t, participants, 12)
	assert.Equal(t, "blocked@mergington.edu", participants[len(participants)-1])
}

func TestRegistry_UnknownActivity(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	_, err := s.Enroll(ctx, "NonExistent Activity", "x@y.edu")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)

	_, err = s.Withdraw(ctx, "NonExistent Activity", "x@y.edu")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)
}

func TestRegistry_NoEmailFormatValidation(t *testing.T) {
	s := newSeededService(t)

	enrollment, err := s.Enroll(context.Background(), "Art Studio", "not-an-email")
	require.Nil(t, err)
	assert.Equal(t, "Signed up not-an-email for Art Studio", enrollment.Message)
	assert.Contains(t, participantsOf(t, s, "Art Studio"), "not-an-email")
}

func TestRegistry_WithdrawNotEnrolled(t *testing.T) {
	s := newSeededService(t)

	_, err := s.Withdraw(context.Background(), "Soccer Team", "notregistered@mergington.edu")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotEnrolled, err.Code)
	assert.Equal(t, "Student not registered for this activity", err.Message)
}

func TestRegistry_ConcurrentEnrollRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	const attempts = 100
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		full     int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Enroll(ctx, "Chess Club", fmt.Sprintf("racer%d@mergington.edu", i))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case err.Code == ErrorCodeCapacityExceeded:
				full++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, accepted)
	assert.Equal(t, attempts-10, full)
	assert.Len(t, participantsOf(t, s, "Chess Club"), 12)
	assertInvariants(t, s)
}

func TestRegistry_SeedResets(t *testing.T) {
	ctx := context.Background()
	s := newSeededService(t)

	_, err := s.Withdraw(ctx, "Gym Class", "john@mergington.edu")
	require.Nil(t, err)

	require.Nil(t, s.Seed(ctx, repository.SeedActivities()))
	assert.Equal(t, []string{"john@mergington.edu", "olivia@mergington.edu"}, participantsOf(t, s, "Gym Class"))
}
