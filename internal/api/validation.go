package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request validators. Each returns an error wrapping
// service.ErrMalformedRequest when the input is unusable.

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", service.ErrMalformedRequest, fmt.Sprintf(format, args...))
}

// validateUserID checks the :id path parameter.
func validateUserID(c *gin.Context) (primitive.ObjectID, error) {
	raw := c.Param("id")
	if raw == "" {
		return primitive.NilObjectID, malformed("user id is required")
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, malformed("user id %q is not a valid id", raw)
	}
	return id, nil
}

// CreateUserRequest accepts JSON or form-encoded bodies.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
}

// bindCreateUser requires a non-empty username string.
func bindCreateUser(c *gin.Context) (string, error) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		return "", malformed("username must be a string: %v", err)
	}
	if req.Username == "" {
		return "", malformed("username is required")
	}
	return req.Username, nil
}

// AddExerciseRequest accepts JSON or form-encoded bodies. Duration may be
// sent as a JSON number or a numeric string.
type AddExerciseRequest struct {
	Description string      `json:"description" form:"description"`
	Duration    json.Number `json:"duration" form:"duration"`
	Date        string      `json:"date" form:"date"`
}

// bindAddExercise requires a description and a positive integer duration.
// An empty date is left nil so the service stamps the current day.
func bindAddExercise(c *gin.Context) (service.NewExercise, error) {
	var req AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		return service.NewExercise{}, malformed("invalid exercise body: %v", err)
	}
	if req.Description == "" {
		return service.NewExercise{}, malformed("description is required")
	}

	duration, err := parseDuration(string(req.Duration))
	if err != nil {
		return service.NewExercise{}, err
	}

	input := service.NewExercise{Description: req.Description, Duration: duration}
	if strings.TrimSpace(req.Date) != "" {
		date, err := domain.ParseDate(req.Date)
		if err != nil {
			return service.NewExercise{}, malformed("date %q is not a calendar date", req.Date)
		}
		if err := domain.CheckExerciseDate(date); err != nil {
			return service.NewExercise{}, malformed("date %q: %v", req.Date, err)
		}
		input.Date = &date
	}
	return input, nil
}

// parseDuration reads whole minutes. Fractional input is truncated the way
// integer parsing of "30.5" yields 30.
func parseDuration(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, malformed("duration is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 {
			return 0, malformed("duration %q is not an integer", raw)
		}
		n = int(f)
	}
	if n <= 0 {
		return 0, malformed("duration must be a positive number of minutes")
	}
	return n, nil
}

// parseLogQuery reads the optional from, to and limit query parameters.
// Malformed dates and non-numeric limits are rejected; limit <= 0 means
// no cap.
func parseLogQuery(c *gin.Context) (domain.LogFilter, error) {
	var filter domain.LogFilter

	if raw, ok := c.GetQuery("from"); ok && raw != "" {
		from, err := domain.ParseDate(raw)
		if err != nil {
			return filter, malformed("from %q is not a calendar date", raw)
		}
		filter.From = &from
	}
	if raw, ok := c.GetQuery("to"); ok && raw != "" {
		to, err := domain.ParseDate(raw)
		if err != nil {
			return filter, malformed("to %q is not a calendar date", raw)
		}
		filter.To = &to
	}
	if raw, ok := c.GetQuery("limit"); ok && raw != "" {
		limit, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return filter, malformed("limit %q is not an integer", raw)
		}
		if limit > 0 {
			filter.Limit = limit
		}
	}
	return filter, nil
}
