package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes carried in ErrorResponse.Status.
const (
	CodeNotFound              = "NOT_FOUND"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
	CodeInvalidData           = "INVALID_DATA"
	CodeDataIntegrity         = "DATA_INTEGRITY_VIOLATION"
	CodeValidationFailed      = "VALIDATION_FAILED"
	CodeInternal              = "INTERNAL_ERROR"
)

// NewErrorHandler renders every error returned by a route as ErrorResponse,
// or ValidationErrorResponse for request validation failures.
func NewErrorHandler(logger *slog.Logger, clock ports.Clock) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		req := c.Request()
		status, code, msg := classify(err)
		body := ErrorResponse{
			Timestamp: clock.Now(),
			Status:    code,
			Message:   msg,
			Path:      req.URL.Path,
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(req.Context(), "request failed",
				"method", req.Method, "path", req.URL.Path, "error", err)
		}

		var payload any = body
		var ve *ValidationError
		if errors.As(err, &ve) {
			payload = ValidationErrorResponse{Error: body, ValidationErrors: ve.Fields}
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, payload)
		}
		if err != nil {
			logger.ErrorContext(req.Context(), "write error response", "error", err)
		}
	}
}

func classify(err error) (int, string, string) {
	var (
		validationErr *ValidationError
		notFoundErr   *errs.ObjectNotFoundError
		ruleErr       *errs.BusinessRuleViolationError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, CodeValidationFailed, "Validation failed for request inputs"
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, CodeNotFound,
			fmt.Sprintf("%s not found with id: %v", capitalize(notFoundErr.ParamName), notFoundErr.ID)
	case errors.As(err, &ruleErr):
		return http.StatusConflict, CodeBusinessRuleViolation, ruleErr.Rule
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, CodeDataIntegrity, "Concurrent modification: " + err.Error()
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, CodeDataIntegrity, "Database constraint violation: " + err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, CodeInvalidData, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, httpCode(httpErr.Code), fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, CodeInternal, "An unexpected error occurred: " + err.Error()
	}
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return CodeInvalidData
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusInternalServerError:
		return CodeInternal
	}
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}

func capitalize(s string) string {
	if s == "" {
		return "Object"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
