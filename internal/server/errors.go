package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware renders the last error pushed onto the gin context
// as a single JSON payload, unless a handler already wrote a response.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

// bindingError converts gin binding failures into the structured field-error
// list, so the boundary rejects malformed input before any service call.
func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalidRequestError()
	}

	out := &ValidationErrors{Errors: make([]ValidationError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		out.Errors = append(out.Errors, ValidationError{
			Field:   field,
			Code:    fe.Tag(),
			Message: "invalid " + field,
		})
	}
	return out
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   strings.TrimPrefix(code, "invalid_"),
					Code:    code,
					Message: "invalid value",
				},
			},
		}
	}

	switch {
	case errors.Is(err, productdomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "product not found",
		}
	case errors.Is(err, categorydomain.ErrNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "category does not exist",
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, productdomain.ErrCodeInUse):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "code already in use",
		}
	case errors.Is(err, categorydomain.ErrNameInUse):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: "category name already in use",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, productdomain.ErrInvalidCode),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidDescription),
		errors.Is(err, productdomain.ErrInvalidPrice),
		errors.Is(err, categorydomain.ErrInvalidName):
		return true
	default:
		return false
	}
}

// classifyErrorForLog labels errors for the request log without rendering.
func classifyErrorForLog(err error) (string, string) {
	status, payload := mapError(err)
	switch {
	case status == http.StatusBadRequest:
		return "validation_error", payload.Type
	case status == http.StatusNotFound:
		return "not_found", err.Error()
	case status == http.StatusConflict:
		return "conflict", err.Error()
	default:
		return "internal_error", ""
	}
}
