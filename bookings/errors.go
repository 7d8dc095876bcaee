package bookings

import (
	"net/http"

	"github.com/coachledger/marketplace/policy"
)

// Rejection kinds for the booking manager. Codes are part of the public
// contract and stay stable across releases.
var (
	ErrNotAuthorized    = &policy.Error{Code: 100, Status: http.StatusForbidden, Message: "caller is not authorized"}
	ErrInvalidListing   = &policy.Error{Code: 101, Status: http.StatusConflict, Message: "listing terms do not match the booking"}
	ErrInvalidTimestamp = &policy.Error{Code: 102, Status: http.StatusBadRequest, Message: "session time must be in the future"}
	ErrBookingNotFound  = &policy.Error{Code: 104, Status: http.StatusNotFound, Message: "booking not found"}
	ErrInvalidStatus    = &policy.Error{Code: 105, Status: http.StatusConflict, Message: "booking status does not allow this transition"}
	ErrPaused           = &policy.Error{Code: 106, Status: http.StatusServiceUnavailable, Message: "booking manager is paused"}
	ErrTransferFailed   = &policy.Error{Code: 111, Status: http.StatusBadGateway, Message: "booking fee transfer failed"}
	ErrAlreadyBooked    = &policy.Error{Code: 112, Status: http.StatusConflict, Message: "session id is already booked"}
	ErrInvalidDuration  = &policy.Error{Code: 113, Status: http.StatusBadRequest, Message: "duration must be 15-180 minutes"}
	ErrInvalidAmount    = &policy.Error{Code: 114, Status: http.StatusBadRequest, Message: "amount must be greater than zero"}
	ErrListingInactive  = &policy.Error{Code: 115, Status: http.StatusConflict, Message: "listing does not exist or is inactive"}
	ErrMaxBookings      = &policy.Error{Code: 116, Status: http.StatusConflict, Message: "booking limit reached for this listing"}
	ErrInvalidTimezone  = &policy.Error{Code: 117, Status: http.StatusBadRequest, Message: "timezone must be at most 50 characters"}
)
