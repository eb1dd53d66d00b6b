package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/ledgerhouse/bankledger/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestNewIsBlankPlaceholder(t *testing.T) {
	t.Parallel()
	a := account.New()
	assert.Equal(t, "20172019-00000000", a.Number)
	assert.Equal(t, "anonymous bank account", a.OwnerName)
	assert.Equal(t, "0000-00-00", a.BirthDate)
	assert.Zero(t, a.Balance)
	assert.Empty(t, a.History)
}

func TestChangeBalanceAppendsHistory(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	a := account.New()
	got := a.ChangeBalance(500, "ATM03223", "tx-1", "cash deposit")
	require.Same(a, got, "ChangeBalance should return the account for chaining")
	require.Len(a.History, 1)

	e := a.History[0]
	assert.EqualValues(t, 500, e.Amount)
	assert.EqualValues(t, 500, e.BalanceAfter)
	assert.Equal(t, "tx-1", e.TransactionID)
	assert.Equal(t, "ATM03223", e.Counterparty)
	assert.Equal(t, "cash deposit", e.Remark)
	assert.False(t, e.When.IsZero())
	assert.Equal(t, e.When.UnixMilli(), e.WhenUnixMilli)
}

func TestChangeBalanceChaining(t *testing.T) {
	t.Parallel()
	a := account.New().
		ChangeBalance(100, "seed", "tx-1", "").
		ChangeBalance(-40, "fees", "tx-2", "").
		ChangeBalance(0, "noop", "tx-3", "")

	assert.EqualValues(t, 60, a.Balance)
	assert.Len(t, a.History, 3)
	assert.EqualValues(t, 100, a.History[0].BalanceAfter)
	assert.EqualValues(t, 60, a.History[1].BalanceAfter)
	assert.EqualValues(t, 60, a.History[2].BalanceAfter)
}

func TestBalanceEqualsHistorySum(t *testing.T) {
	t.Parallel()
	a := account.New()
	for _, amount := range []int64{250, -100, 0, 13, -7, 1_000_000} {
		a.ChangeBalance(amount, "x", "tx", "")
	}
	var sum int64
	for _, e := range a.History {
		sum += e.Amount
	}
	assert.Equal(t, sum, a.Balance)
}

func TestNegativeChangeBypassesFundsCheck(t *testing.T) {
	t.Parallel()
	// The primitive has no sufficient-funds rule; only the transfer
	// protocol guards the sender side.
	a := account.New().ChangeBalance(-500, "penalty", "tx-1", "")
	assert.EqualValues(t, -500, a.Balance)
}

func TestTransferToUnregisteredAccount(t *testing.T) {
	t.Parallel()
	a := account.New()
	b := account.New()
	_, err := a.TransferTo(account.PartyOf(b), 10, "")
	assert.ErrorIs(t, err, domain.ErrPartyNotFound)
}

func TestCommonName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "john smith", account.CommonName("John SMITH"))
	assert.Equal(t, "andrás", account.CommonName("ANDRÁS"))
}

func TestDescriptor(t *testing.T) {
	t.Parallel()
	a := account.New()
	a.OwnerName = "Alice"
	a.Number = "20172019-00000042"
	assert.Equal(t, "Alice@20172019-00000042", a.Descriptor())
}

func TestPartyVariants(t *testing.T) {
	t.Parallel()
	a := account.New()

	byHandle := account.PartyOf(a)
	got, ok := byHandle.Account()
	assert.True(t, ok)
	assert.Same(t, a, got)

	byKey := account.PartyKey("20172019-00000001")
	_, ok = byKey.Account()
	assert.False(t, ok)
	assert.Equal(t, "20172019-00000001", byKey.Key())
}
