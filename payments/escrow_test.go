package payments

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscrowLedgerRecord(t *testing.T) {
	ledger := NewEscrowLedger()
	require.NoError(t, ledger.Record(100, "coach-1"))
	require.NoError(t, ledger.Record(25, "learner-1"))

	entries := ledger.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, uint64(100), entries[0].Amount)
	assert.Equal(t, "coach-1", string(entries[0].Payer))
	assert.Equal(t, EscrowPayee, entries[0].Payee)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].At.IsZero())
	assert.Equal(t, 2, ledger.Len())
}

func TestEscrowLedgerEntriesIsACopy(t *testing.T) {
	ledger := NewEscrowLedger()
	require.NoError(t, ledger.Record(100, "coach-1"))

	entries := ledger.Entries()
	entries[0].Amount = 0

	assert.Equal(t, uint64(100), ledger.Entries()[0].Amount)
}

func TestEscrowLedgerConcurrentRecord(t *testing.T) {
	ledger := NewEscrowLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ledger.Record(1, "payer")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, ledger.Len())
}
