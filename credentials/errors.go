package credentials

import (
	"net/http"

	"github.com/coachledger/marketplace/policy"
)

// Rejection kinds for the credential verifier. Codes are part of the public
// contract: clients match on them, so they stay stable across releases.
var (
	ErrNotAuthorized      = &policy.Error{Code: 100, Status: http.StatusForbidden, Message: "caller is not authorized"}
	ErrAlreadySubmitted   = &policy.Error{Code: 101, Status: http.StatusConflict, Message: "credential already submitted or verified"}
	ErrInvalidHash        = &policy.Error{Code: 102, Status: http.StatusBadRequest, Message: "credential hash must be exactly 32 bytes"}
	ErrInvalidTitle       = &policy.Error{Code: 104, Status: http.StatusBadRequest, Message: "title must be 1-100 characters"}
	ErrInvalidDescription = &policy.Error{Code: 105, Status: http.StatusBadRequest, Message: "description must be at most 500 characters"}
	ErrInvalidIssuer      = &policy.Error{Code: 106, Status: http.StatusBadRequest, Message: "issuer must be 1-100 characters"}
	ErrInvalidExpiry      = &policy.Error{Code: 107, Status: http.StatusBadRequest, Message: "expiry must be in the future"}
	ErrCredentialExpired  = &policy.Error{Code: 108, Status: http.StatusConflict, Message: "credential has expired"}
	ErrAttesterNotTrusted = &policy.Error{Code: 109, Status: http.StatusForbidden, Message: "attester is not trusted"}
	ErrInvalidSignature   = &policy.Error{Code: 110, Status: http.StatusBadRequest, Message: "signature must be exactly 65 bytes"}
	ErrCredentialNotFound = &policy.Error{Code: 111, Status: http.StatusNotFound, Message: "credential not found"}
	ErrMaxAttesters       = &policy.Error{Code: 113, Status: http.StatusConflict, Message: "trusted attester limit reached"}
	ErrUnknownAttester    = &policy.Error{Code: 114, Status: http.StatusNotFound, Message: "attester is not in the trusted set"}
	ErrAttesterExists     = &policy.Error{Code: 115, Status: http.StatusConflict, Message: "attester already trusted"}
	ErrInvalidMetadata    = &policy.Error{Code: 116, Status: http.StatusBadRequest, Message: "metadata must be at most 256 bytes"}
	ErrPaused             = &policy.Error{Code: 118, Status: http.StatusServiceUnavailable, Message: "credential verifier is paused"}
	ErrInvalidCategory    = &policy.Error{Code: 119, Status: http.StatusBadRequest, Message: "category must be 1-50 characters"}
	ErrInvalidLevel       = &policy.Error{Code: 120, Status: http.StatusBadRequest, Message: "level must be between 1 and 10"}
	ErrInvalidScore       = &policy.Error{Code: 121, Status: http.StatusBadRequest, Message: "score must be at most 100"}
	ErrMaxCredentials     = &policy.Error{Code: 122, Status: http.StatusConflict, Message: "credential limit reached for this coach"}
	ErrTransferFailed     = &policy.Error{Code: 124, Status: http.StatusBadGateway, Message: "verification fee transfer failed"}
)
