package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/events"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewExercise is a validated add-exercise request. A nil Date means
// "today", evaluated once when the exercise is stored.
type NewExercise struct {
	Description string
	Duration    int
	Date        *time.Time
}

type ExerciseService interface {
	AddExercise(ctx context.Context, userID primitive.ObjectID, input NewExercise) (*domain.Exercise, *domain.User, error)
}

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	users        UserService
	exerciseRepo repository.ExerciseRepository
	publisher    events.Publisher
	logger       logrus.FieldLogger
	now          func() time.Time
}

// NewExerciseService creates a new instance of exerciseService. A nil
// publisher disables events; a nil now uses time.Now.
func NewExerciseService(
	users UserService,
	exerciseRepo repository.ExerciseRepository,
	publisher events.Publisher,
	logger logrus.FieldLogger,
	now func() time.Time,
) ExerciseService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if now == nil {
		now = time.Now
	}
	return &exerciseService{
		users:        users,
		exerciseRepo: exerciseRepo,
		publisher:    publisher,
		logger:       logger,
		now:          now,
	}
}

// AddExercise resolves the user and stores an exercise under the user's
// current username. It returns the stored exercise and the resolved user.
func (s *exerciseService) AddExercise(ctx context.Context, userID primitive.ObjectID, input NewExercise) (*domain.Exercise, *domain.User, error) {
	if input.Description == "" {
		return nil, nil, malformed("description is required")
	}
	if input.Duration <= 0 {
		return nil, nil, malformed("duration must be a positive integer")
	}
	if input.Date != nil {
		if err := domain.CheckExerciseDate(*input.Date); err != nil {
			return nil, nil, malformed("date: %v", err)
		}
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	exercise := &domain.Exercise{
		Username:    user.Username,
		Description: input.Description,
		Duration:    input.Duration,
		Date:        domain.CalendarDay(date),
	}
	id, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		return nil, nil, storeUnavailable("save exercise", err)
	}
	exercise.ID = id
	observability.RecordExerciseLogged()

	// the exercise is already stored; a failed event must not fail the request
	if err := s.publisher.PublishExerciseLogged(ctx, events.NewExerciseLogged(user, exercise, now)); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"user_id":     user.ID.Hex(),
			"exercise_id": id.Hex(),
		}).Warn("failed to publish exercise event")
	}
	return exercise, user, nil
}
