package config_test

import (
	"testing"

	"github.com/ledgerhouse/bankledger/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "20172019", cfg.Bank.Prefix)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "[bankledger]", cfg.Log.Prefix)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BANK_PREFIX", "990011")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "990011", cfg.Bank.Prefix)
	assert.Equal(t, "json", cfg.Log.Format)
}
