package models

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is one learner session booked against a listing. Timestamp is the
// scheduled logical time, strictly in the future at booking time.
type Booking struct {
	Learner   Principal     `json:"learner"`
	Timestamp uint64        `json:"timestamp"`
	Status    BookingStatus `json:"status"`
	Duration  uint          `json:"duration"`
	Amount    uint64        `json:"amount"`
	Timezone  string        `json:"timezone"`
}
