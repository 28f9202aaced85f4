package netbox

import (
	"os"

	"github.com/cloudkeeper/azureingest/pkg/errors"
)

const defaultTarget = "grpc://localhost:8080/diode"

// Config carries the Diode ingestion endpoint and the OAuth2
// client-credentials pair the SDK authenticates with.
type Config struct {
	Target       string
	ClientID     string
	ClientSecret string
}

func LoadConfig() *Config {
	target := os.Getenv("DIODE_TARGET")
	if target == "" {
		target = defaultTarget
	}
	return &Config{
		Target:       target,
		ClientID:     os.Getenv("DIODE_CLIENT_ID"),
		ClientSecret: os.Getenv("DIODE_CLIENT_SECRET"),
	}
}

func (c *Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return errors.NewErrMissingNetboxAuth()
	}
	return nil
}
