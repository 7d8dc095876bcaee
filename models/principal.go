package models

// Principal is an opaque authenticated caller identity supplied by the
// environment. Stores compare principals for ownership and authorization
// checks but never interpret their contents.
type Principal string

// CredentialKey identifies one credential: the owning coach plus the
// sequential id allocated at submission.
type CredentialKey struct {
	Coach Principal
	ID    uint
}

// ListingKey identifies one service listing owned by a coach.
type ListingKey struct {
	Coach Principal
	ID    uint
}

// BookingKey identifies one booked session under a coach's listing.
type BookingKey struct {
	Coach     Principal
	ListingID uint
	SessionID uint
}

// ListingRef returns the listing this booking was made against.
func (k BookingKey) ListingRef() ListingKey {
	return ListingKey{Coach: k.Coach, ID: k.ListingID}
}
