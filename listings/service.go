package listings

import (
	"sync"
	"unicode/utf8"

	"github.com/coachledger/marketplace/chain"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/payments"
	"github.com/coachledger/marketplace/policy"
)

const (
	DefaultListingFee  = 50
	DefaultMaxPerCoach = 10
)

// VerifiedFunc is the injected capability query against the credential
// verifier: is this coach currently verified? It is read-only and re-read
// fresh inside every call that depends on it.
type VerifiedFunc func(coach models.Principal) bool

type Config struct {
	Owner       models.Principal
	ListingFee  uint64
	MaxPerCoach uint
}

// Draft is the caller-supplied portion of a new listing.
type Draft struct {
	Title        string
	Description  string
	Price        uint64
	Duration     uint
	Category     string
	Availability []uint
	Currency     string
	MaxSessions  uint
	Location     string
	Timezone     string
}

// Update is the coach-editable portion of an existing listing. Currency,
// max sessions, location and timezone are fixed at creation.
type Update struct {
	Title        string
	Description  string
	Price        uint64
	Duration     uint
	Category     string
	Availability []uint
	Active       bool
}

// Service tracks coach-authored service offerings. Creation is gated on the
// injected coach-verification query.
type Service struct {
	mu         sync.Mutex
	gate       *policy.Gate
	clock      chain.Clock
	escrow     payments.TransferSink
	isVerified VerifiedFunc

	listings    map[models.ListingKey]models.Listing
	nextID      map[models.Principal]uint
	maxPerCoach uint
}

func New(cfg Config, clock chain.Clock, escrow payments.TransferSink, isVerified VerifiedFunc) *Service {
	if cfg.ListingFee == 0 {
		cfg.ListingFee = DefaultListingFee
	}
	if cfg.MaxPerCoach == 0 {
		cfg.MaxPerCoach = DefaultMaxPerCoach
	}
	return &Service{
		gate:        policy.NewGate(cfg.Owner, cfg.ListingFee, ErrNotAuthorized, ErrPaused),
		clock:       clock,
		escrow:      escrow,
		isVerified:  isVerified,
		listings:    make(map[models.ListingKey]models.Listing),
		nextID:      make(map[models.Principal]uint),
		maxPerCoach: cfg.MaxPerCoach,
	}
}

// CreateListing stores a new active listing for the caller and returns the
// allocated sequential id. The caller must be a currently verified coach and
// pays the listing fee.
func (s *Service) CreateListing(caller models.Principal, draft Draft) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate.RequireActive(); err != nil {
		return 0, err
	}
	if !s.isVerified(caller) {
		return 0, ErrNotVerifiedCoach
	}
	nextID := s.nextID[caller]
	if nextID >= s.maxPerCoach {
		return 0, ErrMaxListings
	}
	if err := validateCore(draft.Title, draft.Description, draft.Price, draft.Duration, draft.Category, draft.Availability); err != nil {
		return 0, err
	}
	if !models.AllowedCurrency(draft.Currency) {
		return 0, ErrInvalidCurrency
	}
	if draft.MaxSessions < 1 || draft.MaxSessions > models.MaxConcurrentSessions {
		return 0, ErrInvalidMaxSessions
	}
	if utf8.RuneCountInString(draft.Location) > models.MaxLocationLength {
		return 0, ErrInvalidLocation
	}
	if utf8.RuneCountInString(draft.Timezone) > models.MaxTimezoneLength {
		return 0, ErrInvalidTimezone
	}
	if err := s.escrow.Record(s.gate.Fee(), caller); err != nil {
		return 0, ErrTransferFailed
	}

	s.listings[models.ListingKey{Coach: caller, ID: nextID}] = models.Listing{
		Title:        draft.Title,
		Description:  draft.Description,
		Price:        draft.Price,
		Duration:     draft.Duration,
		Category:     draft.Category,
		Timestamp:    s.clock.Height(),
		Active:       true,
		Availability: append([]uint(nil), draft.Availability...),
		Currency:     draft.Currency,
		MaxSessions:  draft.MaxSessions,
		Location:     draft.Location,
		Timezone:     draft.Timezone,
	}
	s.nextID[caller] = nextID + 1
	return nextID, nil
}

// UpdateListing replaces the editable fields of the caller's listing in
// place. Fee state is untouched.
func (s *Service) UpdateListing(caller models.Principal, id uint, update Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate.RequireActive(); err != nil {
		return err
	}
	key := models.ListingKey{Coach: caller, ID: id}
	listing, ok := s.listings[key]
	if !ok {
		return ErrListingNotFound
	}
	if err := validateCore(update.Title, update.Description, update.Price, update.Duration, update.Category, update.Availability); err != nil {
		return err
	}

	listing.Title = update.Title
	listing.Description = update.Description
	listing.Price = update.Price
	listing.Duration = update.Duration
	listing.Category = update.Category
	listing.Timestamp = s.clock.Height()
	listing.Active = update.Active
	listing.Availability = append([]uint(nil), update.Availability...)
	s.listings[key] = listing
	return nil
}

// DeleteListing removes the caller's listing entirely. Bookings already made
// against it are left untouched: they are self-contained once created, so a
// deleted listing may still be referenced by live bookings.
func (s *Service) DeleteListing(caller models.Principal, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate.RequireActive(); err != nil {
		return err
	}
	key := models.ListingKey{Coach: caller, ID: id}
	if _, ok := s.listings[key]; !ok {
		return ErrListingNotFound
	}
	delete(s.listings, key)
	return nil
}

func (s *Service) SetListingFee(caller models.Principal, fee uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.SetFee(caller, fee)
}

// SetCredentialVerifier rewires the injected coach-verification query.
func (s *Service) SetCredentialVerifier(caller models.Principal, isVerified VerifiedFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gate.RequireOwner(caller); err != nil {
		return err
	}
	if isVerified == nil {
		return ErrInvalidVerifier
	}
	s.isVerified = isVerified
	return nil
}

func (s *Service) Pause(caller models.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Pause(caller)
}

func (s *Service) Unpause(caller models.Principal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Unpause(caller)
}

// GetListing returns a copy of the listing, if present. It doubles as the
// capability query the booking manager depends on.
func (s *Service) GetListing(coach models.Principal, id uint) (models.Listing, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[models.ListingKey{Coach: coach, ID: id}]
	if !ok {
		return models.Listing{}, false
	}
	return listing.Clone(), true
}

func (s *Service) NextListingID(coach models.Principal) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID[coach]
}

func (s *Service) ListingFee() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate.Fee()
}

// validateCore checks the field bounds shared by creation and update, in the
// contract's order.
func validateCore(title, description string, price uint64, duration uint, category string, availability []uint) error {
	if n := utf8.RuneCountInString(title); n == 0 || n > models.MaxTitleLength {
		return ErrInvalidTitle
	}
	if utf8.RuneCountInString(description) > models.MaxDescriptionLength {
		return ErrInvalidDescription
	}
	if price == 0 {
		return ErrInvalidPrice
	}
	if duration < models.MinSessionDuration || duration > models.MaxSessionDuration {
		return ErrInvalidDuration
	}
	if n := utf8.RuneCountInString(category); n == 0 || n > models.MaxCategoryLength {
		return ErrInvalidCategory
	}
	if len(availability) > models.MaxAvailabilitySlots {
		return ErrInvalidAvailability
	}
	return nil
}
