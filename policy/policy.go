package policy

import (
	"fmt"

	"github.com/coachledger/marketplace/models"
)

// Error is the tagged failure every store operation returns. Code comes from
// the component's fixed enumeration; Status is the HTTP status the API layer
// responds with when the rejection crosses the wire.
type Error struct {
	Code    int    `json:"code"`
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Gate holds the owner/fee/pause administration shared by the three stores.
// It is not self-locking: the owning store serializes access under its own
// mutex, so every gate read inside an operation observes one consistent
// configuration.
type Gate struct {
	owner  models.Principal
	fee    uint64
	paused bool

	errNotAuthorized *Error
	errPaused        *Error
}

// NewGate builds the admin gate for one store. The error values are the
// store's own not-authorized and paused rejection kinds.
func NewGate(owner models.Principal, fee uint64, notAuthorized, paused *Error) *Gate {
	return &Gate{
		owner:            owner,
		fee:              fee,
		errNotAuthorized: notAuthorized,
		errPaused:        paused,
	}
}

func (g *Gate) Owner() models.Principal { return g.owner }

func (g *Gate) Fee() uint64 { return g.fee }

func (g *Gate) Paused() bool { return g.paused }

// RequireOwner rejects any caller other than the configured owner.
func (g *Gate) RequireOwner(caller models.Principal) error {
	if caller != g.owner {
		return g.errNotAuthorized
	}
	return nil
}

// RequireActive rejects the call while the store is paused.
func (g *Gate) RequireActive() error {
	if g.paused {
		return g.errPaused
	}
	return nil
}

func (g *Gate) SetFee(caller models.Principal, fee uint64) error {
	if err := g.RequireOwner(caller); err != nil {
		return err
	}
	g.fee = fee
	return nil
}

func (g *Gate) Pause(caller models.Principal) error {
	if err := g.RequireOwner(caller); err != nil {
		return err
	}
	g.paused = true
	return nil
}

func (g *Gate) Unpause(caller models.Principal) error {
	if err := g.RequireOwner(caller); err != nil {
		return err
	}
	g.paused = false
	return nil
}
