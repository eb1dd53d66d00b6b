// Package directory implements the account directory: the registry that
// assigns account numbers, indexes accounts by number and by normalized owner
// name, and owns the transfer protocol's critical section.
//
// The directory is an explicit object with an explicit lifecycle: the host
// constructs one and passes it to whoever needs it. There is no package-level
// directory state, so tests run against isolated instances.
package directory

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/ledgerhouse/bankledger/pkg/domain"
)

// Directory indexes accounts two ways: byNumber maps the unique account
// number to its account, and byName maps a normalized owner name to the
// ordered bucket of accounts sharing that name. The two maps are kept in
// lockstep: every account in byNumber appears exactly once in its byName
// bucket and vice versa, and empty buckets are pruned on removal.
//
// One RWMutex guards the sequence counter, both indexes and the two legs of a
// transfer, so a concurrent host never observes duplicate account numbers or
// a half-applied transfer.
type Directory struct {
	mu     sync.RWMutex
	prefix string
	seq    uint64

	byNumber map[string]*account.Account
	byName   map[string][]*account.Account
}

// Option configures a Directory.
type Option func(*Directory)

// WithPrefix overrides the account-number prefix. The default is
// account.DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(d *Directory) { d.prefix = prefix }
}

// New creates an empty directory.
func New(opts ...Option) *Directory {
	d := &Directory{
		prefix:   account.DefaultPrefix,
		byNumber: make(map[string]*account.Account),
		byName:   make(map[string][]*account.Account),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Prefix returns the account-number prefix this directory issues.
func (d *Directory) Prefix() string {
	return d.prefix
}

// CreateAccount reserves the next sequence number, builds an account with the
// formatted number and normalized common name, and inserts it into both
// indexes. Incrementing the sequence and inserting the account are one
// critical section, so concurrent calls never receive duplicate or skipped
// numbers.
func (d *Directory) CreateAccount(ownerName, birthDate, motherMaidenName string) *account.Account {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	a := account.New()
	a.Number = fmt.Sprintf("%s-%08d", d.prefix, d.seq)
	a.OwnerName = ownerName
	a.CommonName = account.CommonName(ownerName)
	a.BirthDate = birthDate
	a.MotherMaidenName = motherMaidenName
	a.Bind(d)

	d.byNumber[a.Number] = a
	d.byName[a.CommonName] = append(d.byName[a.CommonName], a)
	return a
}

// LookupByNumber finds an account by its number. A key without the fixed
// prefix is also tried with the prefix prepended, so a bare 8-digit suffix
// resolves the same account as the full number. A miss returns
// domain.ErrAccountNotFound, never a panic.
func (d *Directory) LookupByNumber(key string) (*account.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookupByNumberLocked(key)
}

func (d *Directory) lookupByNumberLocked(key string) (*account.Account, error) {
	if a, ok := d.byNumber[key]; ok {
		return a, nil
	}
	if a, ok := d.byNumber[d.prefix+"-"+key]; ok {
		return a, nil
	}
	return nil, fmt.Errorf("number %q: %w", key, domain.ErrAccountNotFound)
}

// LookupByName finds accounts by owner name. The search is normalized the
// same way owner names are at creation; an exact bucket match returns that
// bucket, otherwise every bucket whose key contains the search string
// contributes its accounts, in sorted key order. The result is always a fresh
// slice, so callers cannot corrupt the index through it. No match is an empty
// result, not an error.
func (d *Directory) LookupByName(searchName string) []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookupByNameLocked(searchName)
}

func (d *Directory) lookupByNameLocked(searchName string) []*account.Account {
	search := account.CommonName(searchName)
	if bucket, ok := d.byName[search]; ok {
		out := make([]*account.Account, len(bucket))
		copy(out, bucket)
		return out
	}
	keys := make([]string, 0, len(d.byName))
	for key := range d.byName {
		if strings.Contains(key, search) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	out := []*account.Account{}
	for _, key := range keys {
		out = append(out, d.byName[key]...)
	}
	return out
}

// RemoveAccount deletes one account from both indexes and returns it. An
// input shaped like an account number (carrying the fixed prefix) resolves
// through the number index; anything else resolves as a name search, which
// must match exactly one account. Several name matches fail with
// *domain.AmbiguousNameError carrying the candidate list; zero matches fail
// with domain.ErrAccountNotFound. A failed removal changes nothing.
func (d *Directory) RemoveAccount(nameOrNumber string) (*account.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var acct *account.Account
	if strings.HasPrefix(nameOrNumber, d.prefix) {
		a, err := d.lookupByNumberLocked(nameOrNumber)
		if err != nil {
			return nil, err
		}
		acct = a
	} else {
		matches := d.lookupByNameLocked(nameOrNumber)
		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("name %q: %w", nameOrNumber, domain.ErrAccountNotFound)
		case 1:
			acct = matches[0]
		default:
			candidates := make([]domain.Candidate, 0, len(matches))
			for _, m := range matches {
				candidates = append(candidates, domain.Candidate{
					Name:      m.OwnerName,
					BirthDate: m.BirthDate,
					Number:    m.Number,
				})
			}
			return nil, &domain.AmbiguousNameError{Search: nameOrNumber, Candidates: candidates}
		}
	}

	delete(d.byNumber, acct.Number)
	bucket := d.byName[acct.CommonName]
	kept := bucket[:0]
	for _, a := range bucket {
		if a != acct {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		delete(d.byName, acct.CommonName)
	} else {
		d.byName[acct.CommonName] = kept
	}
	return acct, nil
}

// ListAccounts returns every registered account, one handle per account,
// ordered by account number. The slice is freshly allocated on each call.
func (d *Directory) ListAccounts() []*account.Account {
	d.mu.RLock()
	defer d.mu.RUnlock()

	numbers := make([]string, 0, len(d.byNumber))
	for number := range d.byNumber {
		numbers = append(numbers, number)
	}
	sort.Strings(numbers)
	out := make([]*account.Account, 0, len(numbers))
	for _, number := range numbers {
		out = append(out, d.byNumber[number])
	}
	return out
}

// Len returns the number of registered accounts.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byNumber)
}
