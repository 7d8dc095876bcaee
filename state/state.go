package state

import (
	"log"

	"github.com/coachledger/marketplace/bookings"
	"github.com/coachledger/marketplace/chain"
	config "github.com/coachledger/marketplace/configs"
	"github.com/coachledger/marketplace/credentials"
	"github.com/coachledger/marketplace/listings"
	"github.com/coachledger/marketplace/models"
	"github.com/coachledger/marketplace/payments"
)

// Process-wide store handles, wired once at startup. Handlers and jobs reach
// the marketplace through these.
var (
	Escrow      *payments.EscrowLedger
	Chain       *chain.Counter
	Credentials *credentials.Verifier
	Listings    *listings.Service
	Bookings    *bookings.Manager
	Accounts    *AccountStore
)

// Init builds the three stores and wires the one-directional capability
// queries between them: credentials -> listings -> bookings.
func Init() {
	owner := models.Principal(config.ConfigOr("OWNER_PRINCIPAL", "owner"))

	Escrow = payments.NewEscrowLedger()
	Chain = chain.NewCounter(config.ConfigUint("CHAIN_START_HEIGHT", 0))

	Credentials = credentials.New(credentials.Config{
		Owner:           owner,
		VerificationFee: config.ConfigUint("VERIFICATION_FEE", credentials.DefaultVerificationFee),
	}, Chain, Escrow)

	Listings = listings.New(listings.Config{
		Owner:      owner,
		ListingFee: config.ConfigUint("LISTING_FEE", listings.DefaultListingFee),
	}, Chain, Escrow, Credentials.IsCoachVerified)

	Bookings = bookings.New(bookings.Config{
		Owner:      owner,
		BookingFee: config.ConfigUint("BOOKING_FEE", bookings.DefaultBookingFee),
	}, Chain, Escrow, Listings.GetListing)

	Accounts = NewAccountStore()

	log.Println("✅ Marketplace stores initialized, owner:", owner)
}
