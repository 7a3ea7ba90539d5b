package response

import (
	"errors"
	"net/http"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, leave.ErrIncorrectPasscode):
		Unauthorized(w, "Incorrect passcode")
	case errors.Is(err, leave.ErrNotAuthenticated):
		Unauthorized(w, "Session not authenticated")
	case errors.Is(err, leave.ErrConnectionFailed):
		ServiceUnavailable(w, "Connection failed")
	case errors.Is(err, leave.ErrMutationFailed):
		BadGateway(w, "Mutation request failed")
	case errors.Is(err, leave.ErrDeleteNotConfirmed):
		BadRequest(w, "Delete requires confirmation", nil)
	case errors.Is(err, leave.ErrUnknownLeaveType):
		ValidationError(w, map[string]string{"type": "type must be one of the known leave types"})
	case errors.Is(err, leave.ErrUnknownStatus):
		ValidationError(w, map[string]string{"status": "status must be Pending, Approved or Rejected"})
	case errors.Is(err, leave.ErrRecordNotFound):
		NotFound(w, "Leave record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
