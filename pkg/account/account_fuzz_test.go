package account_test

import (
	"testing"

	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/stretchr/testify/assert"
)

// FuzzChangeBalance checks that the balance always equals the sum of all
// history amounts, whatever sequence of signed amounts is applied.
func FuzzChangeBalance(f *testing.F) {
	f.Add(int64(100), int64(-40), int64(0))
	f.Add(int64(-1), int64(-1), int64(2))
	f.Add(int64(1<<40), int64(-(1 << 39)), int64(7))

	f.Fuzz(func(t *testing.T, a, b, c int64) {
		acct := account.New().
			ChangeBalance(a, "fuzz", "tx-a", "").
			ChangeBalance(b, "fuzz", "tx-b", "").
			ChangeBalance(c, "fuzz", "tx-c", "")

		var sum int64
		for _, e := range acct.History {
			sum += e.Amount
		}
		assert.Equal(t, sum, acct.Balance)
		assert.Equal(t, acct.Balance, acct.History[len(acct.History)-1].BalanceAfter)
	})
}
