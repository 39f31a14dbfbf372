package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kamilaomar/moodtracker/backend/internal/analysis"
	"github.com/kamilaomar/moodtracker/backend/internal/apierror"
	"github.com/kamilaomar/moodtracker/backend/internal/logger"
	"github.com/kamilaomar/moodtracker/backend/internal/service"
)

// writeServiceError maps service and analysis errors onto problem responses.
// Anything unrecognised is logged and reported as a generic 500.
func writeServiceError(c *gin.Context, err error, taskID string) {
	requestID := apierror.GetRequestID(c)

	var timeErr *service.InvalidTimeError
	var lengthErr *service.FieldTooLongError
	var parseErr *analysis.TimeParseError

	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, "Task", taskID))
	case errors.As(err, &timeErr):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: timeErr.Field, Message: "must be a 24-hour HH:MM time", Code: "hhmm"},
		}))
	case errors.As(err, &lengthErr):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: lengthErr.Field, Message: fmt.Sprintf("must be at most %d characters", lengthErr.Max), Code: "max"},
		}))
	case errors.As(err, &parseErr):
		apierror.WriteProblem(c, apierror.NewMalformedTimeError(requestID, parseErr.TaskID, parseErr.Field, parseErr.Value))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed", logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}
