package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allsafeASM/lookup/internal/config"
)

func staticConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			LogLevel:            "info",
			PollInterval:        2,
			TaskTimeout:         45,
			LockRenewalInterval: 20,
			MaxLockRenewalTime:  300,
		},
		Lookup: config.LookupConfig{
			DefaultCountryCode: "+44",
			ProviderMode:       config.ProviderModeStatic,
		},
	}
}

func TestProcessorOptions(t *testing.T) {
	opts := processorOptions(staticConfig().App)

	assert.Equal(t, 20*time.Second, opts.LockRenewalInterval)
	assert.Equal(t, 300*time.Second, opts.MaxLockRenewalTime)
	assert.Equal(t, 45*time.Second, opts.TaskTimeout)
	assert.Equal(t, 3, opts.MaxRetries)
}

func TestNewComponentsStaticMode(t *testing.T) {
	c, err := NewComponents(context.Background(), staticConfig())
	require.NoError(t, err)
	defer c.Close()

	assert.Nil(t, c.Cache)
	require.NotNil(t, c.Engine)

	rec := c.Engine.Phone(context.Background(), "7911123456")
	assert.Equal(t, "+44", rec.CountryCode)
	assert.Equal(t, "United Kingdom", rec.Country)

	families, err := c.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestNewComponentsRejectsUnknownMode(t *testing.T) {
	cfg := staticConfig()
	cfg.Lookup.ProviderMode = "mystery"

	_, err := NewComponents(context.Background(), cfg)
	assert.ErrorContains(t, err, "unknown provider mode")
}

func TestNewApplicationRequiresAzure(t *testing.T) {
	_, err := NewApplication(staticConfig())

	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "SERVICEBUS_CONNECTION_STRING", cfgErr.Field)
}
