package azure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudkeeper/azureingest/pkg/config/cloud/azure"
	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/logger"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("AZURE_TENANT_ID", "tenant")
	t.Setenv("AZURE_CLIENT_ID", "client")
	t.Setenv("AZURE_CLIENT_SECRET", "secret")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub")
	t.Setenv("AZURE_RESOURCE_GROUP", "rg-prod")

	cfg := azure.LoadConfig()
	assert.Equal(t, "tenant", cfg.TenantID)
	assert.Equal(t, "client", cfg.ClientID)
	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "sub", cfg.GetSubscription())
	assert.Equal(t, "rg-prod", cfg.GetResourceGroup())
}

func TestValidate(t *testing.T) {
	logger.SetLogger(zap.NewNop())

	testCases := []struct {
		name    string
		cfg     *azure.Config
		missing []string
	}{
		{
			name: "valid config",
			cfg: &azure.Config{
				TenantID:       "tenant",
				ClientID:       "client",
				ClientSecret:   "secret",
				SubscriptionID: "sub",
			},
		},
		{
			name: "resource group is optional",
			cfg: &azure.Config{
				TenantID:       "tenant",
				ClientID:       "client",
				ClientSecret:   "secret",
				SubscriptionID: "sub",
				ResourceGroup:  "",
			},
		},
		{
			name:    "everything missing",
			cfg:     &azure.Config{},
			missing: []string{"AZURE_TENANT_ID", "AZURE_CLIENT_ID", "AZURE_CLIENT_SECRET", "AZURE_SUBSCRIPTION_ID"},
		},
		{
			name: "secret missing",
			cfg: &azure.Config{
				TenantID:       "tenant",
				ClientID:       "client",
				SubscriptionID: "sub",
			},
			missing: []string{"AZURE_CLIENT_SECRET"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if len(tc.missing) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var missingErr errors.ErrMissingCredentials
			require.ErrorAs(t, err, &missingErr)
			assert.Equal(t, tc.missing, missingErr.Missing)
		})
	}
}
