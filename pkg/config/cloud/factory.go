package cloud

import (
	"github.com/cloudkeeper/azureingest/pkg/config/cloud/azure"
	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"go.uber.org/zap"
)

type ProviderConfig interface {
	Validate() error
	GetSubscription() string
	GetResourceGroup() string
}

type ProviderType string

const (
	Azure ProviderType = "azure"
)

func NewProviderConfig(provider ProviderType) (ProviderConfig, error) {
	switch provider {
	case Azure:
		cfg := azure.LoadConfig()

		if err := cfg.Validate(); err != nil {
			logger.Log.Error("Azure configuration validation failed",
				zap.Error(err))
			return nil, err
		}

		logger.Log.Debug("Loaded Azure configuration",
			zap.String("subscription_id", cfg.SubscriptionID),
			zap.String("resource_group", cfg.ResourceGroup))

		return cfg, nil
	default:
		return nil, errors.NewUnsupportedProvider(string(provider))
	}
}
