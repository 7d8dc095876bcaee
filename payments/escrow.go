package payments

import (
	"sync"
	"time"

	"github.com/coachledger/marketplace/models"
	"github.com/google/uuid"
)

// EscrowPayee is recorded on every transfer intent. The stores never hold
// value themselves; they only log that a fee is owed to the platform escrow.
const EscrowPayee = "escrow"

// Transfer is one fee-transfer intent emitted atomically with a successful
// fee-incurring operation.
type Transfer struct {
	ID     uuid.UUID        `json:"id"`
	Amount uint64           `json:"amount"`
	Payer  models.Principal `json:"payer"`
	Payee  string           `json:"payee"`
	At     time.Time        `json:"at"`
}

// TransferSink receives exactly one transfer intent per successful
// fee-incurring call. A sink error aborts the whole call before any state
// write, so a rejected transfer leaves every store unchanged.
type TransferSink interface {
	Record(amount uint64, payer models.Principal) error
}

// EscrowLedger is the in-memory TransferSink the API server runs with.
type EscrowLedger struct {
	mu      sync.Mutex
	entries []Transfer
}

func NewEscrowLedger() *EscrowLedger {
	return &EscrowLedger{}
}

func (l *EscrowLedger) Record(amount uint64, payer models.Principal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Transfer{
		ID:     uuid.New(),
		Amount: amount,
		Payer:  payer,
		Payee:  EscrowPayee,
		At:     time.Now(),
	})
	return nil
}

// Entries returns a copy of the recorded transfer intents, oldest first.
func (l *EscrowLedger) Entries() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Transfer(nil), l.entries...)
}

func (l *EscrowLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
