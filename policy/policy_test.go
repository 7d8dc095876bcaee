package policy

import (
	"testing"

	"github.com/coachledger/marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errDenied = &Error{Code: 100, Status: 403, Message: "Not authorized"}
	errHalted = &Error{Code: 118, Status: 503, Message: "Operations paused"}
)

func TestErrorString(t *testing.T) {
	assert.Equal(t, "Not authorized (code 100)", errDenied.Error())
}

func TestGateOwnership(t *testing.T) {
	g := NewGate("owner", 100, errDenied, errHalted)

	assert.NoError(t, g.RequireOwner("owner"))
	assert.ErrorIs(t, g.RequireOwner("someone"), errDenied)
	assert.Equal(t, models.Principal("owner"), g.Owner())
}

func TestGateFee(t *testing.T) {
	g := NewGate("owner", 100, errDenied, errHalted)

	assert.ErrorIs(t, g.SetFee("someone", 200), errDenied)
	assert.Equal(t, uint64(100), g.Fee())

	require.NoError(t, g.SetFee("owner", 200))
	assert.Equal(t, uint64(200), g.Fee())

	assert.NoError(t, g.SetFee("owner", 0), "a zero fee is a valid setting")
	assert.Equal(t, uint64(0), g.Fee())
}

func TestGatePause(t *testing.T) {
	g := NewGate("owner", 100, errDenied, errHalted)
	assert.NoError(t, g.RequireActive())

	assert.ErrorIs(t, g.Pause("someone"), errDenied)
	require.NoError(t, g.Pause("owner"))
	assert.True(t, g.Paused())
	assert.ErrorIs(t, g.RequireActive(), errHalted)

	require.NoError(t, g.Pause("owner"), "pausing twice is harmless")

	assert.ErrorIs(t, g.Unpause("someone"), errDenied)
	require.NoError(t, g.Unpause("owner"))
	assert.NoError(t, g.RequireActive())
}
