package listings

import (
	"net/http"

	"github.com/coachledger/marketplace/policy"
)

// Rejection kinds for the listing service. Codes are part of the public
// contract and stay stable across releases; 120 covers a rejected fee
// transfer.
var (
	ErrNotAuthorized       = &policy.Error{Code: 100, Status: http.StatusForbidden, Message: "caller is not authorized"}
	ErrInvalidTitle        = &policy.Error{Code: 101, Status: http.StatusBadRequest, Message: "title must be 1-100 characters"}
	ErrInvalidDescription  = &policy.Error{Code: 102, Status: http.StatusBadRequest, Message: "description must be at most 500 characters"}
	ErrInvalidPrice        = &policy.Error{Code: 103, Status: http.StatusBadRequest, Message: "price must be greater than zero"}
	ErrInvalidDuration     = &policy.Error{Code: 104, Status: http.StatusBadRequest, Message: "duration must be 15-180 minutes"}
	ErrInvalidCategory     = &policy.Error{Code: 105, Status: http.StatusBadRequest, Message: "category must be 1-50 characters"}
	ErrNotVerifiedCoach    = &policy.Error{Code: 107, Status: http.StatusForbidden, Message: "coach is not verified"}
	ErrListingNotFound     = &policy.Error{Code: 108, Status: http.StatusNotFound, Message: "listing not found"}
	ErrMaxListings         = &policy.Error{Code: 110, Status: http.StatusConflict, Message: "listing limit reached for this coach"}
	ErrInvalidAvailability = &policy.Error{Code: 111, Status: http.StatusBadRequest, Message: "availability may hold at most 10 slots"}
	ErrPaused              = &policy.Error{Code: 112, Status: http.StatusServiceUnavailable, Message: "listing service is paused"}
	ErrInvalidVerifier     = &policy.Error{Code: 113, Status: http.StatusBadRequest, Message: "verifier query must not be nil"}
	ErrInvalidCurrency     = &policy.Error{Code: 114, Status: http.StatusBadRequest, Message: "currency is not supported"}
	ErrInvalidMaxSessions  = &policy.Error{Code: 117, Status: http.StatusBadRequest, Message: "max sessions must be 1-100"}
	ErrInvalidLocation     = &policy.Error{Code: 118, Status: http.StatusBadRequest, Message: "location must be at most 100 characters"}
	ErrInvalidTimezone     = &policy.Error{Code: 119, Status: http.StatusBadRequest, Message: "timezone must be at most 50 characters"}
	ErrTransferFailed      = &policy.Error{Code: 120, Status: http.StatusBadGateway, Message: "listing fee transfer failed"}
)
