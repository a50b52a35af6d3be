package service

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/observability"
	"alcyxob/exercise-tracker/internal/repository"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserLog is a user's formatted exercise log. Count is the number of
// exercises in the requested window before the limit was applied.
type UserLog struct {
	User   *domain.User
	Window domain.LogWindow
	Count  int64
	Log    []domain.LogEntry
}

type LogService interface {
	// QueryLog selects username's exercises inside the filter window,
	// most recent first and bounded by the effective limit.
	QueryLog(ctx context.Context, username string, filter domain.LogFilter) ([]domain.Exercise, error)
	// GetUserLog resolves userID and returns its formatted log.
	GetUserLog(ctx context.Context, userID primitive.ObjectID, filter domain.LogFilter) (*UserLog, error)
}

// logService implements the LogService interface.
type logService struct {
	users        UserService
	exerciseRepo repository.ExerciseRepository
	defaultLimit int
	now          func() time.Time
}

// NewLogService creates a new instance of logService. defaultLimit applies
// when a query has no positive limit; 0 keeps logs unbounded.
func NewLogService(users UserService, exerciseRepo repository.ExerciseRepository, defaultLimit int, now func() time.Time) LogService {
	if now == nil {
		now = time.Now
	}
	return &logService{
		users:        users,
		exerciseRepo: exerciseRepo,
		defaultLimit: defaultLimit,
		now:          now,
	}
}

func (s *logService) QueryLog(ctx context.Context, username string, filter domain.LogFilter) ([]domain.Exercise, error) {
	window := filter.Resolve(s.now(), s.defaultLimit)
	return s.query(ctx, username, window)
}

func (s *logService) query(ctx context.Context, username string, window domain.LogWindow) ([]domain.Exercise, error) {
	records, err := s.exerciseRepo.FindLog(ctx, username, window)
	if err != nil {
		return nil, storeUnavailable("query exercises", err)
	}
	// Stores may push ordering and limits down; reapplying them keeps the
	// result independent of what a given store guarantees.
	return domain.SelectLog(records, username, window), nil
}

func (s *logService) GetUserLog(ctx context.Context, userID primitive.ObjectID, filter domain.LogFilter) (*UserLog, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	window := filter.Resolve(s.now(), s.defaultLimit)
	records, err := s.query(ctx, user.Username, window)
	if err != nil {
		return nil, err
	}

	count := int64(len(records))
	if window.Limit > 0 && len(records) == window.Limit {
		// the log may have been truncated; ask the store for the full size
		count, err = s.exerciseRepo.Count(ctx, user.Username, window)
		if err != nil {
			return nil, storeUnavailable("count exercises", err)
		}
	}

	log := domain.FormatLog(records)
	observability.RecordLogQuery(len(log))
	return &UserLog{
		User:   user,
		Window: window,
		Count:  count,
		Log:    log,
	}, nil
}
