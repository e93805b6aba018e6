package errors

import (
	"net/http"

	"fitclub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User and role errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRoleMismatch = NewBaseError(
		http.StatusNotFound,
		"ROLE_MISMATCH",
		"User with the required role not found",
		"",
	)

	ErrManagerOnly = NewBaseError(
		http.StatusForbidden,
		"MANAGER_ONLY",
		"Only a manager can perform this action",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrMissingClientFields = NewBaseError(
		http.StatusBadRequest,
		"MISSING_CLIENT_FIELDS",
		"Provide client_id or the full set of new-client fields",
		"",
	)

	// Scheduling errors
	ErrClassNotFound = NewBaseError(
		http.StatusNotFound,
		"CLASS_NOT_FOUND",
		"Class not found",
		"",
	)

	ErrInvalidInterval = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INTERVAL",
		"Class must start and end on the same day, with end after start",
		"",
	)

	ErrRoomOccupied = NewBaseError(
		http.StatusConflict,
		"ROOM_OCCUPIED",
		"Room is occupied during this time",
		"",
	)

	ErrTrainerOverbooked = NewBaseError(
		http.StatusConflict,
		"TRAINER_OVERBOOKED",
		"Trainer reached the limit of overlapping individual classes",
		"",
	)

	ErrInstructorBusy = NewBaseError(
		http.StatusConflict,
		"INSTRUCTOR_BUSY",
		"Instructor already runs a group class during this time",
		"",
	)

	ErrInvalidCapacity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CAPACITY",
		"Group class capacity is out of range",
		"",
	)

	// Booking errors
	ErrClassFull = NewBaseError(
		http.StatusConflict,
		"CLASS_FULL",
		"Class is full (capacity limit reached)",
		"",
	)

	ErrAlreadyBooked = NewBaseError(
		http.StatusConflict,
		"ALREADY_BOOKED",
		"Client is already booked for this class",
		"",
	)

	// Membership errors
	ErrMembershipNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBERSHIP_NOT_FOUND",
		"Membership not found",
		"",
	)

	ErrInvalidMembership = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MEMBERSHIP",
		"Membership does not belong to this client",
		"",
	)

	ErrMembershipNotValid = NewBaseError(
		http.StatusBadRequest,
		"MEMBERSHIP_NOT_VALID",
		"Membership is not valid on the class date",
		"",
	)

	ErrInvalidPurchaseInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PURCHASE_INPUT",
		"Unknown membership type or payment method",
		"",
	)

	ErrPurchaseChannelForbidden = NewBaseError(
		http.StatusBadRequest,
		"PURCHASE_CHANNEL_FORBIDDEN",
		"This membership type can be purchased only at reception",
		"",
	)

	ErrNegativePriceOverride = NewBaseError(
		http.StatusBadRequest,
		"NEGATIVE_PRICE_OVERRIDE",
		"Price override must be non-negative",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected storage failure. The transaction
// has been rolled back; the caller sees no partial effect.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Unexpected storage failure",
		details,
	)
	if err != nil {
		base.details = base.details + ": " + err.Error()
	}

	return base
}
