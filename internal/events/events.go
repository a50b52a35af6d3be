// Package events publishes notifications about stored exercises.
package events

import (
	"alcyxob/exercise-tracker/internal/domain"
	"context"
	"time"
)

// ExerciseLogged is the payload emitted after an exercise is stored.
type ExerciseLogged struct {
	ExerciseID  string    `json:"exerciseId"`
	UserID      string    `json:"userId"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        string    `json:"date"` // YYYY-MM-DD
	OccurredAt  time.Time `json:"occurredAt"`
}

// NewExerciseLogged builds the event for a stored exercise.
func NewExerciseLogged(user *domain.User, ex *domain.Exercise, at time.Time) ExerciseLogged {
	return ExerciseLogged{
		ExerciseID:  ex.ID.Hex(),
		UserID:      user.ID.Hex(),
		Username:    ex.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        ex.Date.Format(domain.ISODateLayout),
		OccurredAt:  at.UTC(),
	}
}

// Publisher delivers exercise events.
type Publisher interface {
	PublishExerciseLogged(ctx context.Context, evt ExerciseLogged) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishExerciseLogged(context.Context, ExerciseLogged) error { return nil }

func (NopPublisher) Close() error { return nil }
