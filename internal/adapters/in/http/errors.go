package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// HandleError is the echo error handler. It maps domain errors to status
// codes and writes an ErrorResponse; unexpected errors are logged and
// answered with a generic message.
func (s *Server) HandleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code, message := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	var writeErr error
	if ctx.Request().Method == http.MethodHead {
		writeErr = ctx.NoContent(code)
	} else {
		writeErr = ctx.JSON(code, ErrorResponse{Code: code, Message: message})
	}
	if writeErr != nil {
		s.logger.Error("failed to write error response", "error", writeErr)
	}
}

func statusOf(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
