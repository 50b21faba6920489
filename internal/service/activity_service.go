package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/yakoovad/mergington-activities/internal/db"
	"github.com/yakoovad/mergington-activities/internal/metrics"
	"github.com/yakoovad/mergington-activities/internal/model"
	"github.com/yakoovad/mergington-activities/internal/repository"
	"github.com/yakoovad/mergington-activities/pkg/logger"
	"go.uber.org/zap"
)

const unknownActivityLabel = "unknown"

type ActivityService struct {
	tx db.Transactor

	activities repository.ActivityRepository
	metrics    *metrics.Metrics
}

func NewActivityService(tx db.Transactor) *ActivityService {
	return &ActivityService{
		tx: tx,
	}
}

// Seed replaces the registry contents. It runs once at startup; tests use it
// to restore a known state between cases.
func (s *ActivityService) Seed(ctx context.Context, activities []*repository.Activity) *Error {
	l := logger.FromContext(ctx)

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.activities.Load(txCtx, activities); err != nil {
			l.Error("failed to load activities", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to load activities")
		}
		return nil
	})
	if res := asError(err); res != nil {
		return res
	}

	for _, a := range activities {
		s.metrics.SetParticipants(a.Name, len(a.Participants))
	}

	l.Info("activities seeded", zap.Int("count", len(activities)))
	return nil
}

func (s *ActivityService) List(ctx context.Context) (model.Activities, *Error) {
	l := logger.FromContext(ctx)

	repoActivities, err := s.activities.List(ctx)
	if err != nil {
		l.Error("failed to list activities", zap.Error(err))
		return nil, NewError(ErrorCodeUnspecified, "failed to list activities")
	}

	res := make(model.Activities, len(repoActivities))
	for _, a := range repoActivities {
		res[a.Name] = &model.Activity{
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    a.Participants,
		}
	}

	return res, nil
}

// Enroll signs email up for the activity. Checks run in a fixed order:
// activity exists, email not yet enrolled, activity not full.
func (s *ActivityService) Enroll(ctx context.Context, activityName, email string) (*model.Enrollment, *Error) {
	l := logger.FromContext(ctx).With(zap.String("activity", activityName), zap.String("email", email))
	l.Debug("enrolling student")

	label := activityName
	participants := 0

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		activity, err := s.activities.Get(txCtx, activityName)
		if errors.Is(err, repository.ErrNotFound) {
			label = unknownActivityLabel
			l.Warn("activity not found")
			return NewError(ErrorCodeNotFound, "Activity not found")
		}
		if err != nil {
			l.Error("failed to get activity", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to get activity")
		}

		if slices.Contains(activity.Participants, email) {
			l.Warn("student already enrolled")
			return NewError(ErrorCodeAlreadyEnrolled, "Student already signed up for this activity")
		}

		if len(activity.Participants) >= activity.MaxParticipants {
			l.Warn("activity is full", zap.Int("max_participants", activity.MaxParticipants))
			return NewError(ErrorCodeCapacityExceeded, "Activity is full")
		}

		err = s.activities.AddParticipant(txCtx, activityName, email)
		if errors.Is(err, repository.ErrAlreadyExists) {
			return NewError(ErrorCodeAlreadyEnrolled, "Student already signed up for this activity")
		}
		if err != nil {
			l.Error("failed to add participant", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to add participant")
		}

		participants = len(activity.Participants) + 1
		return nil
	})
	if res := asError(err); res != nil {
		s.metrics.RecordEnrollment(label, string(res.Code))
		return nil, res
	}

	s.metrics.RecordEnrollment(label, metrics.ResultOK)
	s.metrics.SetParticipants(activityName, participants)

	l.Info("student enrolled", zap.Int("participants", participants))

	return &model.Enrollment{
		Activity: activityName,
		Email:    email,
		Message:  fmt.Sprintf("Signed up %s for %s", email, activityName),
	}, nil
}

// Withdraw removes one occurrence of email from the activity's participants.
func (s *ActivityService) Withdraw(ctx context.Context, activityName, email string) (*model.Enrollment, *Error) {
	l := logger.FromContext(ctx).With(zap.String("activity", activityName), zap.String("email", email))
	l.Debug("withdrawing student")

	label := activityName
	participants := 0

	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		activity, err := s.activities.Get(txCtx, activityName)
		if errors.Is(err, repository.ErrNotFound) {
			label = unknownActivityLabel
			l.Warn("activity not found")
			return NewError(ErrorCodeNotFound, "Activity not found")
		}
		if err != nil {
			l.Error("failed to get activity", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to get activity")
		}

		if !slices.Contains(activity.Participants, email) {
			l.Warn("student not enrolled")
			return NewError(ErrorCodeNotEnrolled, "Student not registered for this activity")
		}

		if err = s.activities.RemoveParticipant(txCtx, activityName, email); err != nil {
			l.Error("failed to remove participant", zap.Error(err))
			return NewError(ErrorCodeUnspecified, "failed to remove participant")
		}

		participants = len(activity.Participants) - 1
		return nil
	})
	if res := asError(err); res != nil {
		s.metrics.RecordWithdrawal(label, string(res.Code))
		return nil, res
	}

	s.metrics.RecordWithdrawal(label, metrics.ResultOK)
	s.metrics.SetParticipants(activityName, participants)

	l.Info("student withdrawn", zap.Int("participants", participants))

	return &model.Enrollment{
		Activity: activityName,
		Email:    email,
		Message:  fmt.Sprintf("Unregistered %s from %s", email, activityName),
	}, nil
}

func (s *ActivityService) WithActivityRepo(r repository.ActivityRepository) *ActivityService {
	s.activities = r
	return s
}

func (s *ActivityService) WithMetrics(m *metrics.Metrics) *ActivityService {
	s.metrics = m
	return s
}

func asError(err error) *Error {
	if err == nil {
		return nil
	}

	var res *Error
	if errors.As(err, &res) {
		return res
	}
	return NewError(ErrorCodeUnspecified, "transaction failed")
}
