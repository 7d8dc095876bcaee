package bookings

import (
	"errors"
	"strings"
	"testing"

	"github.com/coachledger/marketplace/chain"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner   = models.Principal("owner")
	coach   = models.Principal("coach-1")
	learner = models.Principal("learner-1")
)

// listingTable is a stand-in for the listing service capability.
type listingTable map[models.ListingKey]models.Listing

func (t listingTable) get(coach models.Principal, id uint) (models.Listing, bool) {
	listing, ok := t[models.ListingKey{Coach: coach, ID: id}]
	return listing, ok
}

func newTestManager() (*Manager, listingTable, *chain.Counter, *payments.EscrowLedger) {
	table := listingTable{
		{Coach: coach, ID: 0}: {
			Title:    "Chess Coaching",
			Price:    100,
			Duration: 60,
			Active:   true,
			Currency: "USD",
		},
	}
	clock := chain.NewCounter(10)
	escrow := payments.NewEscrowLedger()
	return New(Config{Owner: owner}, clock, escrow, table.get), table, clock, escrow
}

func TestBookSession(t *testing.T) {
	m, _, _, escrow := newTestManager()

	id, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)

	booking, ok := m.GetBooking(coach, 0, 0)
	require.True(t, ok)
	assert.Equal(t, learner, booking.Learner)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, uint64(11), booking.Timestamp)
	assert.Equal(t, uint64(100), booking.Amount)

	entries := escrow.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(DefaultBookingFee), entries[0].Amount)
	assert.Equal(t, learner, entries[0].Payer, "the learner pays the booking fee")
}

func TestBookSessionListingGone(t *testing.T) {
	m, table, _, _ := newTestManager()

	_, err := m.BookSession(learner, coach, 7, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrListingInactive)

	key := models.ListingKey{Coach: coach, ID: 0}
	inactive := table[key]
	inactive.Active = false
	table[key] = inactive

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrListingInactive)
}

func TestBookSessionTermsMismatch(t *testing.T) {
	m, _, _, escrow := newTestManager()

	_, err := m.BookSession(learner, coach, 0, 11, 60, 90, "UTC")
	assert.ErrorIs(t, err, ErrInvalidListing)

	_, err = m.BookSession(learner, coach, 0, 11, 45, 100, "UTC")
	assert.ErrorIs(t, err, ErrInvalidListing)

	assert.Equal(t, uint(0), m.NextSessionID(coach, 0))
	assert.Equal(t, 0, escrow.Len())
}

func TestBookSessionTimeMustBeFuture(t *testing.T) {
	m, _, clock, _ := newTestManager()
	require.Equal(t, uint64(10), clock.Height())

	_, err := m.BookSession(learner, coach, 0, 10, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrInvalidTimestamp, "a session at the current height is already past")

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.NoError(t, err)
}

func TestBookSessionFieldBounds(t *testing.T) {
	m, table, _, _ := newTestManager()

	// Out-of-range terms can only reach their own checks through a listing
	// that carries them, since the terms must match first.
	table[models.ListingKey{Coach: coach, ID: 1}] = models.Listing{Price: 100, Duration: 5, Active: true}
	table[models.ListingKey{Coach: coach, ID: 2}] = models.Listing{Price: 0, Duration: 60, Active: true}

	_, err := m.BookSession(learner, coach, 1, 11, 5, 100, "UTC")
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = m.BookSession(learner, coach, 2, 11, 60, 0, "UTC")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, strings.Repeat("a", 51))
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestBookSessionCap(t *testing.T) {
	m := New(Config{Owner: owner, MaxPerListing: 2}, chain.NewCounter(10), payments.NewEscrowLedger(),
		func(models.Principal, uint) (models.Listing, bool) {
			return models.Listing{Price: 100, Duration: 60, Active: true}, true
		})

	id, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)
	assert.Equal(t, uint(0), id)

	id, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err, "booking the last free slot must succeed")
	assert.Equal(t, uint(1), id)

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrMaxBookings)
}

func TestConfirmSession(t *testing.T) {
	m, _, _, _ := newTestManager()
	_, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)

	err = m.ConfirmSession(learner, coach, 0, 0)
	assert.ErrorIs(t, err, ErrNotAuthorized, "only the coach confirms")

	err = m.ConfirmSession(coach, coach, 0, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, m.ConfirmSession(coach, coach, 0, 0))
	booking, _ := m.GetBooking(coach, 0, 0)
	assert.Equal(t, models.BookingConfirmed, booking.Status)

	err = m.ConfirmSession(coach, coach, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus, "confirmation applies to pending bookings only")
}

func TestCancelSession(t *testing.T) {
	m, _, _, _ := newTestManager()
	_, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)

	err = m.CancelSession("stranger", coach, 0, 0)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = m.CancelSession(learner, coach, 0, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	require.NoError(t, m.CancelSession(learner, coach, 0, 0))
	booking, _ := m.GetBooking(coach, 0, 0)
	assert.Equal(t, models.BookingCancelled, booking.Status)

	err = m.CancelSession(coach, coach, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidStatus, "cancelled is terminal")
}

func TestCancelConfirmedSessionByCoach(t *testing.T) {
	m, _, _, _ := newTestManager()
	_, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)
	require.NoError(t, m.ConfirmSession(coach, coach, 0, 0))

	require.NoError(t, m.CancelSession(coach, coach, 0, 0))
	booking, _ := m.GetBooking(coach, 0, 0)
	assert.Equal(t, models.BookingCancelled, booking.Status)
}

func TestSetBookingFee(t *testing.T) {
	m, _, _, escrow := newTestManager()

	err := m.SetBookingFee(learner, 40)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, m.SetBookingFee(owner, 40))
	assert.Equal(t, uint64(40), m.BookingFee())

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)
	entries := escrow.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, uint64(40), entries[0].Amount)
}

func TestSetListingService(t *testing.T) {
	m, _, _, _ := newTestManager()

	err := m.SetListingService(learner, func(models.Principal, uint) (models.Listing, bool) {
		return models.Listing{}, false
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	err = m.SetListingService(owner, nil)
	assert.ErrorIs(t, err, ErrInvalidListing)

	require.NoError(t, m.SetListingService(owner, func(models.Principal, uint) (models.Listing, bool) {
		return models.Listing{}, false
	}))
	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrListingInactive, "booking must consult the rewired query")
}

func TestSetMaxBookings(t *testing.T) {
	m, _, _, _ := newTestManager()

	err := m.SetMaxBookings(learner, 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, m.SetMaxBookings(owner, 1))
	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)
	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrMaxBookings)
}

func TestPauseBlocksMutations(t *testing.T) {
	m, _, _, _ := newTestManager()
	_, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	require.NoError(t, err)

	err = m.Pause(learner)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	require.NoError(t, m.Pause(owner))

	_, err = m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrPaused)
	assert.ErrorIs(t, m.ConfirmSession(coach, coach, 0, 0), ErrPaused)
	assert.ErrorIs(t, m.CancelSession(learner, coach, 0, 0), ErrPaused)

	_, ok := m.GetBooking(coach, 0, 0)
	assert.True(t, ok, "queries stay available while paused")

	require.NoError(t, m.Unpause(owner))
	require.NoError(t, m.ConfirmSession(coach, coach, 0, 0))
}

type failingSink struct{}

func (failingSink) Record(uint64, models.Principal) error {
	return errors.New("sink offline")
}

func TestBookSessionTransferFailure(t *testing.T) {
	m := New(Config{Owner: owner}, chain.NewCounter(10), failingSink{},
		func(models.Principal, uint) (models.Listing, bool) {
			return models.Listing{Price: 100, Duration: 60, Active: true}, true
		})

	_, err := m.BookSession(learner, coach, 0, 11, 60, 100, "UTC")
	assert.ErrorIs(t, err, ErrTransferFailed)
	_, ok := m.GetBooking(coach, 0, 0)
	assert.False(t, ok, "a rejected transfer must leave no partial writes")
	assert.Equal(t, uint(0), m.NextSessionID(coach, 0))
}
