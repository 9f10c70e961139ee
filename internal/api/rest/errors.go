package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-economy/internal/api/shared/errors"
	"github.com/feral-file/ff-economy/internal/logger"
)

func respond(c *gin.Context, status int, err *apierrors.APIError) {
	c.JSON(status, apierrors.Response{Error: err})
}

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respond(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, details string) {
	respond(c, http.StatusUnprocessableEntity, apierrors.NewValidationError(details))
}

// respondForbidden responds with a forbidden error
func respondForbidden(c *gin.Context, message string) {
	respond(c, http.StatusForbidden, apierrors.NewForbiddenError(message))
}

// respondError maps an engine error to its status. Server side failures are logged.
func respondError(c *gin.Context, err error, message string) {
	status, apiErr := apierrors.FromError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("message", message),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		)
		if apiErr.Code == apierrors.ErrCodeInternalError {
			apiErr.Message = message
		}
	}
	respond(c, status, apiErr)
}
