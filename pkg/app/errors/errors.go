// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError is the zero value, no error occurred.
	CategoryNoError Category = iota
	// CategoryValidation The client sent malformed or missing data in the
	// request payload or parameters. User-correctable.
	CategoryValidation
	// CategoryUnauthorized The client is not authenticated
	CategoryUnauthorized
	// CategoryForbidden The client is authenticated but not allowed to access the resource
	CategoryForbidden
	// CategoryNotFound The client is addressing a resource that does not exist
	CategoryNotFound
	// CategoryConflict The request conflicts with existing data
	// (duplicate submission, already-processed request)
	CategoryConflict
	// CategoryPersistence The backing store failed on a read or write.
	// Retryable by the caller; the cause is logged, never exposed.
	CategoryPersistence
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
)

func (c Category) String() string {
	switch c {
	case CategoryValidation:
		return "CategoryValidation"
	case CategoryUnauthorized:
		return "CategoryUnauthorized"
	case CategoryForbidden:
		return "CategoryForbidden"
	case CategoryNotFound:
		return "CategoryNotFound"
	case CategoryConflict:
		return "CategoryConflict"
	case CategoryPersistence:
		return "CategoryPersistence"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError represents service specific type that
// is used all over the services.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is implements the custom condition to check an error is equal to a service error
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError reports whether the error should be treated as an internal
// failure (logged with its cause, surfaced generically).
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryPersistence {
		return false
	}
	return true
}

// ValidationError returns an error with category Validation.
// The message names the malformed or missing field and is returned to the user.
func ValidationError(err error, message string) error {
	if err == nil {
		err = errors.New("validation failed: " + message)
	}
	return &ServiceError{
		Category: CategoryValidation,
		Message:  message,
		Err:      err,
	}
}

// UnauthorizedError returns an error with category Unauthorized
func UnauthorizedError(err error, message string) error {
	if err == nil {
		err = errors.New("unauthorized")
	}
	return &ServiceError{
		Category: CategoryUnauthorized,
		Message:  message,
		Err:      err,
	}
}

// ForbiddenError returns an error with category Forbidden
func ForbiddenError(err error, message string) error {
	if err == nil {
		err = errors.New("request forbidden")
	}
	return &ServiceError{
		Category: CategoryForbidden,
		Message:  message,
		Err:      err,
	}
}

// NotFoundError returns an error with category NotFound
func NotFoundError(err error, message string) error {
	if err == nil {
		err = errors.New("not found: " + message)
	}
	return &ServiceError{
		Category: CategoryNotFound,
		Message:  message,
		Err:      err,
	}
}

// ConflictError returns an error with category Conflict
func ConflictError(err error, message string) error {
	if err == nil {
		err = errors.New("conflict")
	}
	return &ServiceError{
		Category: CategoryConflict,
		Message:  message,
		Err:      err,
	}
}

// PersistenceError returns an error with category Persistence.
// The user sees a generic retry message; the wrapped cause goes to the logs.
func PersistenceError(err error) error {
	if err == nil {
		err = errors.New("storage failure")
	}
	return &ServiceError{
		Category: CategoryPersistence,
		Message:  "temporary service error, please try again",
		Err:      err,
	}
}

// GeneralError returns a general service error
// this error message sent to the user is "Internal Server Error"
// the error passed is logged in the logger
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("internal server error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Internal Server Error",
		Err:      err,
	}
}

// StatusCode returns the HTTP status code for the error category
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryValidation:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryConflict:
		return http.StatusConflict
	case CategoryPersistence:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
