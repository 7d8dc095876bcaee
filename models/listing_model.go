package models

const (
	MinSessionDuration = 15
	MaxSessionDuration = 180

	MaxAvailabilitySlots  = 10
	MaxConcurrentSessions = 100

	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxCategoryLength    = 50
	MaxLocationLength    = 100
	MaxTimezoneLength    = 50
)

var allowedCurrencies = map[string]bool{
	"USD": true,
	"KES": true,
	"EUR": true,
}

// AllowedCurrency reports whether a listing may be priced in the given
// currency code.
func AllowedCurrency(code string) bool {
	return allowedCurrencies[code]
}

type Listing struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Price        uint64 `json:"price"`
	Duration     uint   `json:"duration"`
	Category     string `json:"category"`
	Timestamp    uint64 `json:"timestamp"`
	Active       bool   `json:"active"`
	Availability []uint `json:"availability"`
	Currency     string `json:"currency"`
	MaxSessions  uint   `json:"max_sessions"`
	Location     string `json:"location"`
	Timezone     string `json:"timezone"`
}

func (l Listing) Clone() Listing {
	l.Availability = append([]uint(nil), l.Availability...)
	return l
}
