package app

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cloudkeeper/azureingest/pkg/cloud"
	"github.com/cloudkeeper/azureingest/pkg/cloud/azure"
	"github.com/cloudkeeper/azureingest/pkg/config/env"
	netboxcfg "github.com/cloudkeeper/azureingest/pkg/config/netbox"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"github.com/cloudkeeper/azureingest/pkg/netbox"
	"github.com/cloudkeeper/azureingest/pkg/output"
	"github.com/cloudkeeper/azureingest/pkg/publish"
)

// Runner defines the contract for running the collect-then-publish pipeline.
type Runner interface {
	Run(ctx context.Context, debug, quiet bool) error
}

type App struct {
	Logger         *zap.Logger
	configurations *env.Configurations

	// Injectable for tests.
	Provider    cloud.InventoryProvider
	NewIngester func(*netboxcfg.Config) (netbox.Ingester, error)
	Out         io.Writer
}

// NewApp initializes and returns a new App instance wired to the Azure
// collector and the Diode client constructor.
func NewApp(configurations *env.Configurations) *App {
	return &App{
		Logger:         logger.GetLogger(),
		configurations: configurations,
		Provider:       azure.NewAzureProvider(),
		NewIngester:    netbox.NewClient,
		Out:            os.Stdout,
	}
}

// Configurations returns the application's configuration settings.
func (a *App) Configurations() *env.Configurations {
	return a.configurations
}

// Run orchestrates the full pipeline:
// 1. Collect the VM inventory from Azure
// 2. Optionally dump the collected record tree (--debug)
// 3. Publish entities to the Diode endpoint
// 4. Print the run summary
func (a *App) Run(ctx context.Context, debug, quiet bool) error {
	logger.Init(debug || a.configurations.DebugMode, quiet)
	a.Logger = logger.Log

	vms, err := a.Provider.FetchVMs(ctx, a.configurations.CloudConfig)
	if err != nil {
		a.Logger.Error("inventory collection failed", zap.Error(err))
		return err
	}
	a.Logger.Info("collected inventory", zap.Int("vms", len(vms)))

	if debug {
		output.DumpVMs(a.Out, vms)
	}

	client, err := a.NewIngester(a.configurations.NetboxConfig)
	if err != nil {
		a.Logger.Error("Diode client construction failed", zap.Error(err))
		return err
	}
	// The client is released exactly once, whether publishing succeeds
	// or not.
	defer func() {
		if cerr := client.Close(); cerr != nil {
			a.Logger.Warn("failed to close Diode client", zap.Error(cerr))
		}
	}()

	publisher := publish.New(client, publish.Options{
		SubmitMode: a.configurations.SubmitMode,
		DiskUnit:   a.configurations.DiskUnit,
		SiteName:   a.configurations.SiteName,
	})
	report := publisher.Publish(ctx, vms)

	if !quiet || report.FailedBatches > 0 {
		output.PrintSummary(a.Out, report)
	}
	return nil
}
