package response

import (
	"errors"
	"net/http"

	"github.com/shiftline/shiftline-backend-go/internal/domain/attendance"
	"github.com/shiftline/shiftline-backend-go/internal/domain/availability"
	"github.com/shiftline/shiftline-backend-go/internal/domain/callout"
	"github.com/shiftline/shiftline-backend-go/internal/domain/notification"
	"github.com/shiftline/shiftline-backend-go/internal/domain/onboarding"
	"github.com/shiftline/shiftline-backend-go/internal/domain/settings"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/domain/swap"
	"github.com/shiftline/shiftline-backend-go/internal/domain/timeoff"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/domain/workrole"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User domain errors
	case errors.Is(err, user.ErrMissingSubject):
		Unauthorized(w, "Token is missing a subject claim")
	case errors.Is(err, user.ErrForbidden):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrNotResourceOwner):
		Forbidden(w, "Not the resource owner")
	case errors.Is(err, user.ErrInvalidSyncToken):
		Forbidden(w, "Invalid sync token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Work role domain errors
	case errors.Is(err, workrole.ErrWorkRoleNotFound):
		NotFound(w, "Work role not found")
	case errors.Is(err, workrole.ErrWorkRoleNameExists):
		Conflict(w, "Work role name already exists")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrInvalidTimeRange):
		BadRequest(w, "Shift end time must be after start time", nil)
	case errors.Is(err, shift.ErrShiftStateChanged):
		Conflict(w, "Shift state changed, reload and retry")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotClockedIn):
		Conflict(w, "Cannot clock out without clocking in first")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Callout domain errors
	case errors.Is(err, callout.ErrCalloutNotFound):
		NotFound(w, "Callout not found")

	// Swap domain errors
	case errors.Is(err, swap.ErrSwapNotFound):
		NotFound(w, "Shift swap not found")
	case errors.Is(err, swap.ErrCannotClaimOwn):
		BadRequest(w, "Cannot claim your own swap request", nil)
	case errors.Is(err, swap.ErrSwapNotClaimed):
		Conflict(w, "Shift swap has no claimant to approve")
	case errors.Is(err, swap.ErrSwapStateChanged):
		Conflict(w, "Shift swap was already claimed or resolved")
	case errors.Is(err, swap.ErrSwapNotCancelable):
		Conflict(w, "Shift swap can no longer be cancelled")

	// Time off domain errors
	case errors.Is(err, timeoff.ErrTimeOffNotFound):
		NotFound(w, "Time off request not found")
	case errors.Is(err, timeoff.ErrTimeOffAlreadyReviewed):
		Conflict(w, "Time off request was already reviewed")
	case errors.Is(err, timeoff.ErrInvalidDateRange):
		BadRequest(w, "End date must be on or after start date", nil)

	// Availability domain errors
	case errors.Is(err, availability.ErrChangeRequestNotFound):
		NotFound(w, "Availability change request not found")
	case errors.Is(err, availability.ErrChangeRequestAlreadyReviewed):
		Conflict(w, "Availability change request was already reviewed")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrProgressNotFound):
		NotFound(w, "Onboarding progress not found")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Business settings not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
