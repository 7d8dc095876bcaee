package jobs

import (
	"log"

	"github.com/coachledger/marketplace/state"
)

// AdvanceChainHeight moves logical time forward one unit. Scheduled from
// main; every expiry and future-scheduling check in the stores reads the
// advanced height on its next call.
func AdvanceChainHeight() {
	height := state.Chain.Advance()
	log.Printf("⛓️ Chain height advanced to %d", height)
}
