package api

import (
	"alcyxob/exercise-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// respondError maps service errors onto the HTTP error contract. Store and
// unexpected failures are logged with their cause; the client only gets a
// generic message.
func respondError(c *gin.Context, logger logrus.FieldLogger, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedRequest):
		logger.WithField("request_id", requestID(c)).WithError(err).Debug("rejected malformed request")
		abortWithError(c, http.StatusBadRequest, "Malformed request")
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusBadRequest, "User not found")
	case errors.Is(err, service.ErrExportDisabled):
		abortWithError(c, http.StatusNotImplemented, "Log export is not enabled")
	case errors.Is(err, service.ErrStoreUnavailable):
		logger.WithField("request_id", requestID(c)).WithError(err).Error("store operation failed")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	default:
		logger.WithField("request_id", requestID(c)).WithError(err).Error("unexpected error")
		abortWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
