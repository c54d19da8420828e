package errors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound             = "NOT_FOUND"
	CodeBadRequest           = "BAD_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeForbidden            = "FORBIDDEN"
	CodeConflict             = "CONFLICT"
	CodeInternal             = "INTERNAL_ERROR"
	CodeValidation           = "VALIDATION_ERROR"
	CodeIndexRequired        = "INDEX_REQUIRED"
	CodeUnavailable          = "SERVICE_UNAVAILABLE"
	CodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	CodeCheckoutIncomplete   = "CHECKOUT_INCOMPLETE"
	CodeTooManyRequests      = "TOO_MANY_REQUESTS"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
	// Details is rendered next to the message, e.g. field errors or a redirect hint.
	Details map[string]interface{}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail returns the error with key set in its details.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound, err)
}

func BadRequest(message string, err error) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest, err)
}

func Unauthorized(message string, err error) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized, err)
}

func Forbidden(message string, err error) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden, err)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict, nil)
}

func Internal(message string, err error) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError, err)
}

// Validation reports per-field failures. Field keys are the JSON names.
func Validation(fields map[string]string) *AppError {
	appErr := New(CodeValidation, "Invalid input data", http.StatusBadRequest, nil)
	appErr.Details = map[string]interface{}{"fields": fields}
	return appErr
}

// IndexRequired marks a query the database refused because a composite
// index is missing.
func IndexRequired(message string, err error) *AppError {
	return New(CodeIndexRequired, message, http.StatusServiceUnavailable, err)
}

// Unavailable is the tagged failure for external service errors the
// caller may retry by hand.
func Unavailable(message string, err error) *AppError {
	return New(CodeUnavailable, message, http.StatusServiceUnavailable, err).WithDetail("retryable", true)
}

func ConfirmationRequired(message string) *AppError {
	return New(CodeConfirmationRequired, message, http.StatusPreconditionRequired, nil)
}

func CheckoutIncomplete(orderID, step string, err error) *AppError {
	return New(
		CodeCheckoutIncomplete,
		fmt.Sprintf("Order %s was placed but the %s step failed", orderID, step),
		http.StatusInternalServerError,
		err,
	).WithDetail("order_id", orderID).WithDetail("step", step)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequests, message, http.StatusTooManyRequests, nil)
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
