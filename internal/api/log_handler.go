package api

import (
	"alcyxob/exercise-tracker/internal/domain"
	"alcyxob/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LogHandler serves exercise logs and log exports.
type LogHandler struct {
	logService    service.LogService
	exportService service.ExportService
	logger        logrus.FieldLogger
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(logService service.LogService, exportService service.ExportService, logger logrus.FieldLogger) *LogHandler {
	return &LogHandler{logService: logService, exportService: exportService, logger: logger}
}

// LogResponse is a user's exercise log. From and To echo the supplied
// filters in display format and are omitted when not supplied.
type LogResponse struct {
	ID       string            `json:"_id"`
	Username string            `json:"username"`
	From     string            `json:"from,omitempty"`
	To       string            `json:"to,omitempty"`
	Count    int64             `json:"count"`
	Log      []domain.LogEntry `json:"log"`
}

// GetLog godoc
// @Summary Get a user's exercise log
// @Description Returns the user's exercises in [from, to], most recent first, capped at limit.
// @Tags Logs
// @Produce json
// @Param id path string true "User's ObjectID Hex"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD), defaults to today"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} LogResponse
// @Failure 400 {object} gin.H "Malformed request or user not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /users/{id}/logs [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	userID, err := validateUserID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	filter, err := parseLogQuery(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	userLog, err := h.logService.GetUserLog(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := LogResponse{
		ID:       userLog.User.ID.Hex(),
		Username: userLog.User.Username,
		Count:    userLog.Count,
		Log:      userLog.Log,
	}
	if filter.From != nil {
		resp.From = domain.FormatDate(*filter.From)
	}
	if filter.To != nil {
		resp.To = domain.FormatDate(*filter.To)
	}
	c.JSON(http.StatusOK, resp)
}

// ExportLog godoc
// @Summary Export a user's exercise log to object storage
// @Tags Logs
// @Produce json
// @Param id path string true "User's ObjectID Hex"
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Maximum number of entries"
// @Success 201 {object} service.LogExport
// @Failure 400 {object} gin.H "Malformed request or user not found"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Failure 501 {object} gin.H "Export not configured"
// @Router /users/{id}/logs/export [post]
func (h *LogHandler) ExportLog(c *gin.Context) {
	userID, err := validateUserID(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	filter, err := parseLogQuery(c)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	export, err := h.exportService.ExportLog(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, export)
}
