package netbox

import (
	"context"

	"github.com/netboxlabs/diode-sdk-go/diode"
	"github.com/netboxlabs/diode-sdk-go/diode/v1/diodepb"

	netboxcfg "github.com/cloudkeeper/azureingest/pkg/config/netbox"
	"github.com/cloudkeeper/azureingest/pkg/errors"
)

const (
	appName    = "azure-vm-ingest"
	appVersion = "1.0.0"
)

// Ingester is the slice of the Diode SDK client the publisher needs. The
// SDK client satisfies it; tests substitute a mock.
type Ingester interface {
	Ingest(ctx context.Context, entities []diode.Entity, opts ...diode.IngestOption) (*diodepb.IngestResponse, error)
	Close() error
}

// NewClient constructs the Diode ingestion client from configuration. A
// failure here is fatal: nothing is submitted without a client.
func NewClient(cfg *netboxcfg.Config) (Ingester, error) {
	client, err := diode.NewClient(cfg.Target, appName, appVersion,
		diode.WithClientID(cfg.ClientID),
		diode.WithClientSecret(cfg.ClientSecret),
	)
	if err != nil {
		return nil, errors.NewNetboxClientInit(err)
	}
	return client, nil
}
