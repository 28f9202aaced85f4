package azure

import (
	"os"

	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"go.uber.org/zap"
)

type Config struct {
	TenantID       string
	ClientID       string
	ClientSecret   string
	SubscriptionID string
	// ResourceGroup restricts enumeration to a single resource group when
	// set; empty means the whole subscription.
	ResourceGroup string
}

func LoadConfig() *Config {
	return &Config{
		TenantID:       os.Getenv("AZURE_TENANT_ID"),
		ClientID:       os.Getenv("AZURE_CLIENT_ID"),
		ClientSecret:   os.Getenv("AZURE_CLIENT_SECRET"),
		SubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
		ResourceGroup:  os.Getenv("AZURE_RESOURCE_GROUP"),
	}
}

func (c *Config) Validate() error {
	var missing []string
	if c.TenantID == "" {
		missing = append(missing, "AZURE_TENANT_ID")
	}
	if c.ClientID == "" {
		missing = append(missing, "AZURE_CLIENT_ID")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "AZURE_CLIENT_SECRET")
	}
	if c.SubscriptionID == "" {
		missing = append(missing, "AZURE_SUBSCRIPTION_ID")
	}

	if len(missing) > 0 {
		logger.Log.Error("Azure config validation failed", zap.Strings("missing", missing))
		return errors.NewErrMissingCredentials(missing)
	}
	return nil
}

func (c *Config) GetSubscription() string {
	return c.SubscriptionID
}

func (c *Config) GetResourceGroup() string {
	return c.ResourceGroup
}
