package apierr

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/debug-create/new-money-pal/internal/engine"
	"github.com/debug-create/new-money-pal/internal/logging"
	"github.com/debug-create/new-money-pal/internal/service"
	"github.com/debug-create/new-money-pal/internal/session"
)

// From converts a service error into the Huma status error the client sees.
// The original error is recorded on the request's log line.
func From(ctx context.Context, message string, err error) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
	}

	var (
		validationErr *engine.ValidationError
		goalErr       *engine.InvalidGoalError
		notFoundErr   *engine.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		return huma.Error400BadRequest(message, &huma.ErrorDetail{
			Message:  validationErr.Reason,
			Location: "body." + validationErr.Field,
		})
	case errors.As(err, &goalErr):
		return huma.Error400BadRequest(message, &huma.ErrorDetail{
			Message:  "target amount must be greater than zero",
			Location: "body.targetAmount",
			Value:    goalErr.Target.String(),
		})
	case errors.As(err, &notFoundErr):
		return huma.Error404NotFound(notFoundErr.Error())
	case errors.Is(err, service.ErrAssistantUnavailable):
		return huma.Error503ServiceUnavailable("assistant is not configured")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusServiceUnavailable, message, err)
	}
	return huma.NewError(http.StatusInternalServerError, message, err)
}

// UserID returns the session user or a 401.
func UserID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := session.UserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, huma.Error401Unauthorized("unauthorized")
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", userID.String())
	}
	return userID, nil
}

// Timing starts a named timer on the request's log line. The returned func
// is safe to call when there is no log data.
func Timing(ctx context.Context, name string) func() {
	if logData := logging.GetLogData(ctx); logData != nil {
		return logData.AddTiming(name)
	}
	return func() {}
}
