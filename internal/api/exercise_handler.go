package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
	logger          logrus.FieldLogger
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService, logger logrus.FieldLogger) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService, logger: logger}
}

// ExerciseResponse echoes a stored exercise together with its owner.
// ID is the user's id, not the exercise's.
type ExerciseResponse struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// MapExerciseToResponse converts a stored exercise and its user to ExerciseResponse.
func MapExerciseToResponse(user *domain.User, ex *domain.Exercise) ExerciseResponse {
	return ExerciseResponse{
		ID:          user.ID.Hex(),
		Username:    ex.Username,
		Date:        domain.FormatDate(ex.Date),
		Duration:    ex.Duration,
		Description: ex.Description,
	}
}

// AddExercise godoc
// @Summary Log an exercise for a user
// @Tags Exercises
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param id path string true "User's ObjectID Hex"
// @Param exercise body AddExerciseRequest true "Exercise details; date defaults to today"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Malformed request or user not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{id}/exercises [post]
func (h *ExerciseHandler) AddExercise(c *gin.Context) {
	userID, err := validateUserID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	input, err := bindAddExercise(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	exercise, user, err := h.exerciseService.AddExercise(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapExerciseToResponse(user, exercise))
}
