package bookings

import (
	"sync"
	"unicode/utf8"

	"github.com/coachledger/marketplace/chain"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/payments"
	"github.com/coachledger/marketplace/policy"
)

const (
	DefaultBookingFee    = 25
	DefaultMaxPerListing = 100
)

// ListingFunc is the injected capability query against the listing service.
// It is read-only and re-read fresh inside every booking call.
type ListingFunc func(coach models.Principal, id uint) (models.Listing, bool)

type Config struct {
	Owner         models.Principal
	BookingFee    uint64
	MaxPerListing uint
}

// Manager tracks learner bookings against listings. Session ids are
// allocated sequentially per (coach, listing) and never reused.
type Manager struct {
	mu         sync.Mutex
	gate       *policy.Gate
	clock      chain.Clock
	escrow     payments.TransferSink
	getListing ListingFunc

	bookings      map[models.BookingKey]models.Booking
	nextSession   map[models.ListingKey]uint
	maxPerListing uint
}

func New(cfg Config, clock chain.Clock, escrow payments.TransferSink, getListing ListingFunc) *Manager {
	if cfg.BookingFee == 0 {
		cfg.BookingFee = DefaultBookingFee
	}
	if cfg.MaxPerListing == 0 {
		cfg.MaxPerListing = DefaultMaxPerListing
	}
	return &Manager{
		gate:          policy.NewGate(cfg.Owner, cfg.BookingFee, ErrNotAuthorized, ErrPaused),
		clock:         clock,
		escrow:        escrow,
		getListing:    getListing,
		bookings:      make(map[models.BookingKey]models.Booking),
		nextSession:   make(map[models.ListingKey]uint),
		maxPerListing: cfg.MaxPerListing,
	}
}

// BookSession books the caller (the learner) into the next session slot of an
// active listing. The supplied duration and amount must equal the listing's
// current terms exactly, which guards against stale client state. The learner
// pays the booking fee.
func (m *Manager) BookSession(caller, coach models.Principal, listingID uint, sessionTime uint64, duration uint, amount uint64, timezone string) (uint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.RequireActive(); err != nil {
		return 0, err
	}
	listing, ok := m.getListing(coach, listingID)
	if !ok || !listing.Active {
		return 0, ErrListingInactive
	}
	if listing.Duration != duration || listing.Price != amount {
		return 0, ErrInvalidListing
	}
	listingKey := models.ListingKey{Coach: coach, ID: listingID}
	sessionID := m.nextSession[listingKey]
	if sessionID >= m.maxPerListing {
		return 0, ErrMaxBookings
	}
	if sessionTime <= m.clock.Height() {
		return 0, ErrInvalidTimestamp
	}
	if duration < models.MinSessionDuration || duration > models.MaxSessionDuration {
		return 0, ErrInvalidDuration
	}
	if amount == 0 {
		return 0, ErrInvalidAmount
	}
	if utf8.RuneCountInString(timezone) > models.MaxTimezoneLength {
		return 0, ErrInvalidTimezone
	}
	key := models.BookingKey{Coach: coach, ListingID: listingID, SessionID: sessionID}
	// Ids are sequential, so the slot cannot be occupied; checked anyway so a
	// counter bug can never silently overwrite a booking.
	if _, exists := m.bookings[key]; exists {
		return 0, ErrAlreadyBooked
	}
	if err := m.escrow.Record(m.gate.Fee(), caller); err != nil {
		return 0, ErrTransferFailed
	}

	m.bookings[key] = models.Booking{
		Learner:   caller,
		Timestamp: sessionTime,
		Status:    models.BookingPending,
		Duration:  duration,
		Amount:    amount,
		Timezone:  timezone,
	}
	m.nextSession[listingKey] = sessionID + 1
	return sessionID, nil
}

// ConfirmSession moves a pending booking to confirmed. Coach only.
func (m *Manager) ConfirmSession(caller, coach models.Principal, listingID, sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.RequireActive(); err != nil {
		return err
	}
	if caller != coach {
		return ErrNotAuthorized
	}
	key := models.BookingKey{Coach: coach, ListingID: listingID, SessionID: sessionID}
	booking, ok := m.bookings[key]
	if !ok {
		return ErrBookingNotFound
	}
	if booking.Status != models.BookingPending {
		return ErrInvalidStatus
	}

	booking.Status = models.BookingConfirmed
	m.bookings[key] = booking
	return nil
}

// CancelSession cancels a pending or confirmed booking. The coach or the
// booking's learner may cancel; cancelled is terminal.
func (m *Manager) CancelSession(caller, coach models.Principal, listingID, sessionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.RequireActive(); err != nil {
		return err
	}
	key := models.BookingKey{Coach: coach, ListingID: listingID, SessionID: sessionID}
	booking, ok := m.bookings[key]
	if !ok {
		return ErrBookingNotFound
	}
	if caller != coach && caller != booking.Learner {
		return ErrNotAuthorized
	}
	if booking.Status == models.BookingCancelled {
		return ErrInvalidStatus
	}

	booking.Status = models.BookingCancelled
	m.bookings[key] = booking
	return nil
}

func (m *Manager) SetBookingFee(caller models.Principal, fee uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gate.SetFee(caller, fee)
}

// SetListingService rewires the injected listing query.
func (m *Manager) SetListingService(caller models.Principal, getListing ListingFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.RequireOwner(caller); err != nil {
		return err
	}
	if getListing == nil {
		return ErrInvalidListing
	}
	m.getListing = getListing
	return nil
}

// SetMaxBookings adjusts the per-listing session cap.
func (m *Manager) SetMaxBookings(caller models.Principal, max uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.gate.RequireOwner(caller); err != nil {
		return err
	}
	m.maxPerListing = max
	return nil
}

func (m *Manager) Pause(caller models.Principal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gate.Pause(caller)
}

func (m *Manager) Unpause(caller models.Principal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gate.Unpause(caller)
}

func (m *Manager) GetBooking(coach models.Principal, listingID, sessionID uint) (models.Booking, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[models.BookingKey{Coach: coach, ListingID: listingID, SessionID: sessionID}]
	return booking, ok
}

func (m *Manager) NextSessionID(coach models.Principal, listingID uint) uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextSession[models.ListingKey{Coach: coach, ID: listingID}]
}

func (m *Manager) BookingFee() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gate.Fee()
}
