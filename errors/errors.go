package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic  = fmt.Errorf("worker panic")
	ErrEmptyWords   = fmt.Errorf("no words have been found")
	ErrLoopStopped  = fmt.Errorf("dispatcher loop stopped")
	ErrSinkClosed   = fmt.Errorf("session sink closed")
	ErrSinkOverflow = fmt.Errorf("session sink buffer full")

	ErrSessionClosed            = fmt.Errorf("session is closed")
	ErrSessionAlreadyIdentified = fmt.Errorf("session already identified as another user")
	ErrIdentityMismatch         = fmt.Errorf("announced identity does not match authenticated user")
	ErrSenderMismatch           = fmt.Errorf("message sender does not match session user")

	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrStatusNotFound       = fmt.Errorf("status not found")
	ErrForbidden            = fmt.Errorf("forbidden")
	ErrUnauthorized         = fmt.Errorf("unauthorized")

	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrInvalidOTP         = fmt.Errorf("invalid otp")
	ErrOTPExpired         = fmt.Errorf("otp expired")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrEmptyMessage       = fmt.Errorf("message has neither content nor media")
	ErrUnsupportedMedia   = fmt.Errorf("unsupported media type")
	ErrInvalidContentType = fmt.Errorf("invalid content type")
)

// Is and As are re-exported so callers importing this package under the
// name "errors" keep the standard helpers.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

// HTTPStatus maps a sentinel error to the REST status code returned to clients.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrMessageNotFound),
		errors.Is(err, ErrConversationNotFound),
		errors.Is(err, ErrStatusNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidOTP), errors.Is(err, ErrOTPExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrEmptyMessage),
		errors.Is(err, ErrUnsupportedMedia),
		errors.Is(err, ErrInvalidContentType):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
