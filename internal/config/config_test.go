package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CART_STORAGE", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "memory", cfg.Cart.Storage)
	require.Equal(t, 3, cfg.Order.Decimals)
	require.Equal(t, "BHD", cfg.Order.Currency)
	require.Equal(t, "ar", cfg.Order.DefaultLanguage)
	require.Equal(t, 99, cfg.Cart.MaxQuantity)
	require.Equal(t, 30*24*time.Hour, cfg.Cart.TTL)

	riffa, ok := cfg.Branch("riffa")
	require.True(t, ok)
	require.Equal(t, "97317131413", riffa.WhatsApp)

	_, ok = cfg.Branch("manama")
	require.False(t, ok)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CART_STORAGE", "postgres")
	t.Setenv("ORDER_DECIMALS", "2")
	t.Setenv("CART_CLEAR_AFTER_CHECKOUT", "15m")
	t.Setenv("BRANCH_QALALI_WHATSAPP", "97300000000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Order.Decimals)
	require.Equal(t, 15*time.Minute, cfg.Cart.ClearAfterCheckout)

	qalali, ok := cfg.Branch("qalali")
	require.True(t, ok)
	require.Equal(t, "97300000000", qalali.WhatsApp)
}

func TestLoadRejectsMemoryStorageOutsideOneProcess(t *testing.T) {
	t.Run("clear after checkout", func(t *testing.T) {
		t.Setenv("CART_STORAGE", "memory")
		t.Setenv("CART_CLEAR_AFTER_CHECKOUT", "10m")
		_, err := Load()
		require.ErrorContains(t, err, "CART_CLEAR_AFTER_CHECKOUT")
	})

	t.Run("production", func(t *testing.T) {
		t.Setenv("CART_STORAGE", "memory")
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADMIN_API_KEY", "secret")
		_, err := Load()
		require.ErrorContains(t, err, "production")
	})

	t.Run("redis clears after checkout", func(t *testing.T) {
		t.Setenv("CART_STORAGE", "redis")
		t.Setenv("CART_CLEAR_AFTER_CHECKOUT", "10m")
		_, err := Load()
		require.NoError(t, err)
	})
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"unknown storage":  {"CART_STORAGE", "sqlite"},
		"unknown source":   {"MENU_SOURCE", "s3"},
		"decimals":         {"ORDER_DECIMALS", "9"},
		"default language": {"ORDER_DEFAULT_LANGUAGE", "fr"},
		"max quantity":     {"CART_MAX_QUANTITY", "0"},
		"concurrency":      {"WORKER_CONCURRENCY", "0"},
		"production key":   {"APP_ENV", "production"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}
