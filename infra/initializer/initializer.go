package initializer

import (
	"log/slog"

	"github.com/ledgerhouse/bankledger/pkg/config"
	"github.com/ledgerhouse/bankledger/pkg/directory"
	"github.com/ledgerhouse/bankledger/pkg/ledger"
)

// Deps holds everything a host needs to drive the ledger.
type Deps struct {
	Logger    *slog.Logger
	Directory *directory.Directory
	Ledger    *ledger.Service
}

// InitializeDependencies builds the logger, an empty account directory with
// the configured number prefix, and the ledger service on top of it.
func InitializeDependencies(cfg *config.App) *Deps {
	logger := SetupLogger(cfg.Log)
	dir := directory.New(directory.WithPrefix(cfg.Bank.Prefix))
	return &Deps{
		Logger:    logger,
		Directory: dir,
		Ledger:    ledger.New(dir, logger),
	}
}
