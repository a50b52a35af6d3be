package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
	logger      logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{userService: userService, logger: logger}
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{Username: user.Username, ID: user.ID.Hex()}
}

// MapUsersToResponse converts a slice of domain.User to UserResponse DTOs.
func MapUsersToResponse(users []domain.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	return responses
}

// CreateUser godoc
// @Summary Create a user
// @Tags Users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param user body CreateUserRequest true "Username"
// @Success 201 {object} UserResponse
// @Failure 400 {object} gin.H "Malformed request"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	username, err := bindCreateUser(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), username)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// ListUsers godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(users))
}
