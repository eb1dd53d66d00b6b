package directory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/ledgerhouse/bankledger/pkg/domain"
)

// NewTransactionID returns an identifier correlating the two ledger entries
// of one transfer: a random 32-bit component followed by the current epoch
// milliseconds. It is practically collision-resistant, not cryptographic, and
// the timestamp suffix keeps ids informative when reading an audit trail.
func NewTransactionID() string {
	return fmt.Sprintf("%08x-%d", uuid.New().ID(), time.Now().UnixMilli())
}

// Transfer moves amount from sender to recipient as one atomic operation.
// Key-form parties are resolved through the number index first; a resolution
// miss fails with domain.ErrPartyNotFound. A sender balance that would go
// negative fails with domain.ErrInsufficientFunds. On success both legs are
// applied under one critical section and share one transaction id, which is
// returned: a debit on the sender naming the recipient as counterparty, and
// the matching credit on the recipient naming the sender.
//
// Zero and negative amounts are not rejected; the only guard is the sender's
// balance. Callers that need stricter rules enforce them before calling.
func (d *Directory) Transfer(sender, recipient account.Party, amount int64, remark string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	from, err := d.resolveLocked("sender", sender)
	if err != nil {
		return "", err
	}
	to, err := d.resolveLocked("recipient", recipient)
	if err != nil {
		return "", err
	}
	if from.Balance-amount < 0 {
		return "", domain.ErrInsufficientFunds
	}

	transactionID := NewTransactionID()
	from.ChangeBalance(-amount, to.Descriptor(), transactionID, remark)
	to.ChangeBalance(amount, from.Descriptor(), transactionID, remark)
	return transactionID, nil
}

// resolveLocked turns a transfer party into an account handle. Handles pass
// through untouched; keys go through the number index. Must be called with
// d.mu held.
func (d *Directory) resolveLocked(role string, p account.Party) (*account.Account, error) {
	if a, ok := p.Account(); ok {
		return a, nil
	}
	a, err := d.lookupByNumberLocked(p.Key())
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", role, p.Key(), domain.ErrPartyNotFound)
	}
	return a, nil
}
