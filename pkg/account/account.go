// Package account defines the Account entity: the balance and append-only
// transaction history for one bank account, plus the balance-change primitive
// every other operation is built on.
//
// Accounts that take part in transfers are created through a directory, which
// assigns the account number and indexes the account by number and owner
// name. A standalone New() account is a blank placeholder and is not
// registered anywhere.
package account

import (
	"fmt"
	"time"

	"github.com/ledgerhouse/bankledger/pkg/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultPrefix is the fixed account-number prefix. A full account number is
// the prefix, a dash, and an 8-digit zero-padded sequence number.
const DefaultPrefix = "20172019"

// CommonName returns the lowercase-normalized form of an owner name, the key
// under which accounts are indexed by name. Normalization is locale-aware so
// that names with non-ASCII letters fold the same way everywhere. A Caser is
// built per call because it is not safe for concurrent use.
func CommonName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// Account is the ledger state for a single bank account.
//
// Number, OwnerName and CommonName are immutable once the account has been
// registered in a directory. Balance is mutated only through ChangeBalance,
// which keeps the invariant that Balance equals the sum of all history entry
// amounts. Amounts are signed minor units.
type Account struct {
	Number           string  `json:"account_number"`
	OwnerName        string  `json:"owner_name"`
	CommonName       string  `json:"-"`
	BirthDate        string  `json:"owner_birthdate"`
	MotherMaidenName string  `json:"-"`
	Balance          int64   `json:"balance"`
	History          []Entry `json:"history"`

	ledger Ledger
}

// Ledger is the transfer protocol an account delegates TransferTo calls to.
// A directory binds itself here when it registers the account.
type Ledger interface {
	Transfer(sender, recipient Party, amount int64, remark string) (string, error)
}

// New returns a blank placeholder account: zero balance, empty history and
// placeholder identity fields. It is not registered in any directory; only a
// directory's CreateAccount produces directory-visible accounts.
func New() *Account {
	return &Account{
		Number:     DefaultPrefix + "-00000000",
		OwnerName:  "anonymous bank account",
		CommonName: "",
		BirthDate:  "0000-00-00",
	}
}

// Bind attaches the transfer protocol the account belongs to. It is called by
// the directory during registration.
func (a *Account) Bind(l Ledger) {
	a.ledger = l
}

// ChangeBalance adds amount (any sign, including zero) to the balance and
// appends a history entry recording the mutation, the resulting balance and
// the current wall-clock time. It returns the account for chaining.
//
// No sufficient-funds check happens here: the transfer protocol owns that
// rule, and this primitive is also used for unilateral deposits such as
// seeding initial capital, where no counterpart debit exists.
func (a *Account) ChangeBalance(amount int64, counterparty, transactionID, remark string) *Account {
	a.Balance += amount
	now := time.Now()
	a.History = append(a.History, Entry{
		When:          now,
		WhenUnixMilli: now.UnixMilli(),
		Amount:        amount,
		BalanceAfter:  a.Balance,
		TransactionID: transactionID,
		Counterparty:  counterparty,
		Remark:        remark,
	})
	return a
}

// TransferTo transfers amount from this account to recipient through the
// directory that registered this account. An account that was never
// registered has no directory to resolve the recipient with, so the call
// fails as party-not-found.
func (a *Account) TransferTo(recipient Party, amount int64, remark string) (string, error) {
	if a.ledger == nil {
		return "", fmt.Errorf("account %s is not registered: %w", a.Number, domain.ErrPartyNotFound)
	}
	return a.ledger.Transfer(PartyOf(a), recipient, amount, remark)
}

// Descriptor identifies the account as the other party of a transaction, in
// the form "owner name@account number".
func (a *Account) Descriptor() string {
	return a.OwnerName + "@" + a.Number
}
