// Package ledger provides the host-facing service over an account directory:
// account creation, unilateral deposits, transfers, removal, lookups and the
// read-only reporting queries. Every operation is logged through the injected
// slog.Logger.
package ledger

import (
	"log/slog"

	"github.com/ledgerhouse/bankledger/pkg/account"
	"github.com/ledgerhouse/bankledger/pkg/directory"
)

// Service wraps a Directory with structured logging. It holds no state of its
// own beyond the directory handle, so any number of services can share one
// directory.
type Service struct {
	dir    *directory.Directory
	logger *slog.Logger
}

// New creates a Service backed by dir. A nil logger falls back to
// slog.Default.
func New(dir *directory.Directory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{dir: dir, logger: logger}
}

// Directory exposes the underlying directory for hosts that need the
// lower-level surface.
func (s *Service) Directory() *directory.Directory {
	return s.dir
}

// CreateAccount registers a new account and returns its handle.
func (s *Service) CreateAccount(ownerName, birthDate, motherMaidenName string) *account.Account {
	a := s.dir.CreateAccount(ownerName, birthDate, motherMaidenName)
	s.logger.Info("account created", "number", a.Number, "owner", a.OwnerName)
	return a
}

// Deposit applies a unilateral balance change to the account resolved by key:
// no counterpart account is debited, so this is the seeding/cash-deposit
// path. Amount may be any sign; the insufficient-funds rule only guards
// transfers. Returns the generated transaction id.
func (s *Service) Deposit(key string, amount int64, source, remark string) (string, error) {
	a, err := s.dir.LookupByNumber(key)
	if err != nil {
		s.logger.Warn("deposit failed", "key", key, "error", err)
		return "", err
	}
	transactionID := directory.NewTransactionID()
	a.ChangeBalance(amount, source, transactionID, remark)
	s.logger.Info("deposit applied",
		"number", a.Number, "amount", amount, "balance", a.Balance, "tx", transactionID)
	return transactionID, nil
}

// Transfer moves amount from sender to recipient and returns the shared
// transaction id.
func (s *Service) Transfer(sender, recipient account.Party, amount int64, remark string) (string, error) {
	transactionID, err := s.dir.Transfer(sender, recipient, amount, remark)
	if err != nil {
		s.logger.Warn("transfer failed", "amount", amount, "error", err)
		return "", err
	}
	s.logger.Info("transfer applied", "amount", amount, "tx", transactionID)
	return transactionID, nil
}

// Remove deletes one account by name or number and returns it.
func (s *Service) Remove(nameOrNumber string) (*account.Account, error) {
	a, err := s.dir.RemoveAccount(nameOrNumber)
	if err != nil {
		s.logger.Warn("removal failed", "key", nameOrNumber, "error", err)
		return nil, err
	}
	s.logger.Info("account removed", "number", a.Number, "owner", a.OwnerName)
	return a, nil
}

// FindByNumber looks an account up by full number or bare suffix.
func (s *Service) FindByNumber(key string) (*account.Account, error) {
	return s.dir.LookupByNumber(key)
}

// FindByName returns all accounts matching the name search, possibly none.
func (s *Service) FindByName(searchName string) []*account.Account {
	return s.dir.LookupByName(searchName)
}
