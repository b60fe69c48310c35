package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrInvalidID        = errors.New("invalid id format")

	// Authentication errors
	ErrTokenNotFound = errors.New("token not found")
	ErrTokenExpired  = errors.New("token expired")
	ErrTokenInvalid  = errors.New("invalid token")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized access")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upstream errors
	ErrGatewayFailure = errors.New("payment gateway failure")

	// Store errors
	ErrDatabase = errors.New("database error")
)

// User errors
var (
	ErrUserNotFound = errors.New("user not found")
)

// Course errors
var (
	ErrCourseNotFound = errors.New("course not found")
)

// Cart errors
var (
	ErrAlreadyInCart     = errors.New("course is already in the cart")
	ErrAlreadyBookmarked = errors.New("course is already in the bookmarks")
	ErrCartItemNotFound  = errors.New("course not found in cart")
	ErrBookmarkNotFound  = errors.New("course not found in bookmarks")
	ErrCartOwnerMismatch = errors.New("cart items do not belong to requester")
)

// Assignment errors
var (
	ErrAssignmentNotFound = errors.New("assignment not found or no changes made")
)

// Order errors
var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrInvalidSignature = errors.New("invalid gateway signature")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewNotFoundError creates a resource-not-found error with a message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewBadRequestError creates a bad-request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}

// NewUnauthorizedError creates an unauthorized error with a message
func NewUnauthorizedError(message string) error {
	return &CustomError{Err: ErrUnauthorized, Message: message}
}
