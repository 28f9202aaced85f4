package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudkeeper/azureingest/pkg/config/env"
	"github.com/cloudkeeper/azureingest/pkg/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AZURE_TENANT_ID", "tenant")
	t.Setenv("AZURE_CLIENT_ID", "client")
	t.Setenv("AZURE_CLIENT_SECRET", "secret")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub")
	t.Setenv("DIODE_CLIENT_ID", "id")
	t.Setenv("DIODE_CLIENT_SECRET", "secret")
	// Clear anything leaking in from the host environment.
	t.Setenv("DEBUG", "")
	t.Setenv("INGEST_SUBMIT_MODE", "")
	t.Setenv("INGEST_DISK_UNIT", "")
	t.Setenv("NETBOX_SITE", "")
	t.Setenv("AZURE_RESOURCE_GROUP", "")
}

func TestSetupConfigurationsDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := env.SetupConfigurations()
	require.NoError(t, err)

	assert.Equal(t, env.PerInstance, cfg.SubmitMode)
	assert.Equal(t, env.DiskUnitMB, cfg.DiskUnit)
	assert.Empty(t, cfg.SiteName)
	assert.False(t, cfg.DebugMode)
	require.NotNil(t, cfg.CloudConfig)
	require.NotNil(t, cfg.NetboxConfig)
	assert.Equal(t, "sub", cfg.CloudConfig.GetSubscription())
}

func TestSetupConfigurationsKnobs(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEBUG", "true")
	t.Setenv("INGEST_SUBMIT_MODE", "batch")
	t.Setenv("INGEST_DISK_UNIT", "gb")
	t.Setenv("NETBOX_SITE", "azure-primary")

	cfg, err := env.SetupConfigurations()
	require.NoError(t, err)

	assert.True(t, cfg.DebugMode)
	assert.Equal(t, env.Batched, cfg.SubmitMode)
	assert.Equal(t, env.DiskUnitGB, cfg.DiskUnit)
	assert.Equal(t, "azure-primary", cfg.SiteName)
}

func TestSetupConfigurationsInvalidDebug(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEBUG", "maybe")

	_, err := env.SetupConfigurations()
	require.Error(t, err)
	var parseErr errors.ErrDebugParse
	assert.ErrorAs(t, err, &parseErr)
}

func TestSetupConfigurationsInvalidSubmitMode(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INGEST_SUBMIT_MODE", "bulk")

	_, err := env.SetupConfigurations()
	require.Error(t, err)
	var modeErr errors.ErrInvalidSubmitMode
	assert.ErrorAs(t, err, &modeErr)
}

func TestSetupConfigurationsInvalidDiskUnit(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("INGEST_DISK_UNIT", "tb")

	_, err := env.SetupConfigurations()
	require.Error(t, err)
	var unitErr errors.ErrInvalidDiskUnit
	assert.ErrorAs(t, err, &unitErr)
}

func TestSetupConfigurationsMissingAzureCredentials(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AZURE_CLIENT_SECRET", "")

	_, err := env.SetupConfigurations()
	require.Error(t, err)
	var missingErr errors.ErrMissingCredentials
	assert.ErrorAs(t, err, &missingErr)
}

func TestSetupConfigurationsMissingDiodeAuth(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DIODE_CLIENT_SECRET", "")

	_, err := env.SetupConfigurations()
	require.Error(t, err)
	var authErr errors.ErrNetboxConfigValidation
	assert.ErrorAs(t, err, &authErr)
}
