// Package domain defines the error taxonomy shared by the account, directory
// and ledger packages. All errors here are recoverable by the caller; the
// core never retries and never panics on a miss.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound is returned when a lookup by number or a
	// name-resolved removal yields no account.
	ErrAccountNotFound = errors.New("account not found")

	// ErrPartyNotFound is returned when a transfer references a sender or
	// recipient that does not resolve to an account.
	ErrPartyNotFound = errors.New("sender or recipient not found")

	// ErrInsufficientFunds is returned when a transfer would drive the
	// sender's balance negative. No partial application occurs.
	ErrInsufficientFunds = errors.New("sender does not have enough funds")
)

// Candidate summarizes one account matched by an ambiguous name search.
type Candidate struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthday"`
	Number    string `json:"number"`
}

// AmbiguousNameError is returned when a name-based resolution that requires
// exactly one account matches several. Candidates carries the full match list
// so the caller can disambiguate, typically by retrying with an account
// number.
type AmbiguousNameError struct {
	Search     string
	Candidates []Candidate
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("%d accounts match %q, choose one by number", len(e.Candidates), e.Search)
}
