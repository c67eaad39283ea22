package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPricingDefaults(t *testing.T) {
	p, err := LoadPricing("")
	require.NoError(t, err)
	assert.Equal(t, 49.99, p.PromotionFee)

	price, ok := p.PlanPrice("basic")
	assert.True(t, ok)
	assert.Equal(t, 19.99, price)
}

func TestLoadPricingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	content := "promotion_fee: 10\nplans:\n  enterprise: 199.5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := LoadPricing(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.PromotionFee)

	price, ok := p.PlanPrice("enterprise")
	assert.True(t, ok)
	assert.Equal(t, 199.5, price)

	_, ok = p.PlanPrice("basic")
	assert.True(t, ok, "defaults survive a partial file")
}

func TestLoadPricingNormalizesPlanNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plans:\n  \" Premium \": 99\n"), 0o644))

	p, err := LoadPricing(path)
	require.NoError(t, err)

	price, ok := p.PlanPrice("premium")
	assert.True(t, ok)
	assert.Equal(t, 99.0, price)

	_, ok = p.PlanPrice("Premium")
	assert.False(t, ok)
}

func TestLoadPricingRejectsNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pricing.yaml")
	require.NoError(t, os.WriteFile(path, []byte("plans:\n  free: -1\n"), 0o644))

	_, err := LoadPricing(path)
	assert.Error(t, err)
}

func TestLoadPricingMissingFile(t *testing.T) {
	_, err := LoadPricing(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("REMODERATE_ON_EDIT", "true")
	t.Setenv("JWT_ACCESS_EXPIRY", "2h")

	cfg := Load()
	assert.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	assert.True(t, cfg.RemoderateOnEdit)
	assert.Equal(t, "2h0m0s", cfg.JWTAccessExpiry.String())
}
