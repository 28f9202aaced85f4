package env

import (
	"os"
	"strconv"

	"github.com/cloudkeeper/azureingest/pkg/config/cloud"
	netboxcfg "github.com/cloudkeeper/azureingest/pkg/config/netbox"
	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"go.uber.org/zap"
)

// SubmitMode selects whether the publisher ingests one entity set per
// instance or a single batched call for the whole run.
type SubmitMode string

const (
	PerInstance SubmitMode = "instance"
	Batched     SubmitMode = "batch"
)

// DiskUnit selects the unit virtual disk sizes are submitted in. The
// documented convention is megabytes (provider gigabytes multiplied by 1024).
type DiskUnit string

const (
	DiskUnitMB DiskUnit = "mb"
	DiskUnitGB DiskUnit = "gb"
)

type Configurations struct {
	DebugMode         bool
	SubmitMode        SubmitMode
	DiskUnit          DiskUnit
	SiteName          string
	CloudProviderType cloud.ProviderType
	CloudConfig       cloud.ProviderConfig
	NetboxConfig      *netboxcfg.Config
	CloudProvider     CloudConfigProvider
}

type CloudConfigProvider interface {
	NewProviderConfig(cloud.ProviderType) (cloud.ProviderConfig, error)
}

type DefaultCloudProvider struct{}

func (d *DefaultCloudProvider) NewProviderConfig(p cloud.ProviderType) (cloud.ProviderConfig, error) {
	return cloud.NewProviderConfig(p)
}

func NewConfiguration() *Configurations {
	return &Configurations{
		SubmitMode:        PerInstance,
		DiskUnit:          DiskUnitMB,
		CloudProviderType: cloud.Azure,
		CloudProvider:     &DefaultCloudProvider{},
	}
}

func (c *Configurations) LoadGeneralConfig() error {
	if rawDebug := os.Getenv("DEBUG"); rawDebug != "" {
		mode, err := strconv.ParseBool(rawDebug)
		if err != nil {
			logger.GetLogger().Error("failed to set up configuration", zap.Error(err))
			logger.GetLogger().Info("Ensure that DEBUG is set to true or false")
			return errors.NewErrDebugParse(rawDebug, err)
		}
		c.DebugMode = mode
	}

	if rawMode := os.Getenv("INGEST_SUBMIT_MODE"); rawMode != "" {
		switch SubmitMode(rawMode) {
		case PerInstance, Batched:
			c.SubmitMode = SubmitMode(rawMode)
		default:
			return errors.NewErrInvalidSubmitMode(rawMode)
		}
	}

	if rawUnit := os.Getenv("INGEST_DISK_UNIT"); rawUnit != "" {
		switch DiskUnit(rawUnit) {
		case DiskUnitMB, DiskUnitGB:
			c.DiskUnit = DiskUnit(rawUnit)
		default:
			return errors.NewErrInvalidDiskUnit(rawUnit)
		}
	}

	// Optional: when set, a Site entity is created and attached to clusters.
	c.SiteName = os.Getenv("NETBOX_SITE")

	return nil
}

func (c *Configurations) LoadCloudConfig() error {
	cloudCfg, err := c.CloudProvider.NewProviderConfig(c.CloudProviderType)
	if err != nil {
		return err
	}
	c.CloudConfig = cloudCfg
	return nil
}

func (c *Configurations) LoadNetboxConfig() error {
	cfg := netboxcfg.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Log.Error("Diode config validation failed", zap.Error(err))
		return errors.NewNetboxConfigValidation(err)
	}
	c.NetboxConfig = cfg
	return nil
}

func (c *Configurations) ValidateGeneralConfig() error {
	if c.CloudConfig == nil {
		return errors.NewErrCloudConfigNotInit()
	}
	return c.CloudConfig.Validate()
}

func (c *Configurations) InitiateLogger() {
	logger.Init(c.DebugMode, false)
}

func SetupConfigurations() (*Configurations, error) {
	configurations := NewConfiguration()

	if err := configurations.LoadGeneralConfig(); err != nil {
		return nil, err
	}

	configurations.InitiateLogger()

	if err := configurations.LoadCloudConfig(); err != nil {
		return nil, err
	}

	if err := configurations.LoadNetboxConfig(); err != nil {
		return nil, err
	}

	if err := configurations.ValidateGeneralConfig(); err != nil {
		return nil, err
	}

	return configurations, nil
}
