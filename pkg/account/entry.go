package account

import "time"

// Entry is one immutable record in an account's transaction history. The
// history is append-only and its order is insertion order, which is also
// chronological order.
type Entry struct {
	// When is the wall-clock time of the mutation; WhenUnixMilli is the
	// same instant in epoch milliseconds, kept alongside for audit tooling
	// that wants a numeric timestamp.
	When          time.Time `json:"when"`
	WhenUnixMilli int64     `json:"when_uts"`
	// Amount is signed: negative is a debit, positive a credit.
	Amount int64 `json:"amount"`
	// BalanceAfter is the account balance right after the mutation.
	BalanceAfter  int64  `json:"balance_after"`
	TransactionID string `json:"transaction_id"`
	// Counterparty is free text identifying the other party, for transfer
	// legs in the form "owner name@account number".
	Counterparty string `json:"other_party"`
	Remark       string `json:"remark,omitempty"`
}
