package errors

import (
	"fmt"
)

// ErrUnsupportedProvider is returned when the provider string is unknown.
type ErrUnsupportedProvider struct {
	ProviderType string
}

func (e ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.ProviderType)
}

func NewUnsupportedProvider(pt string) error {
	return ErrUnsupportedProvider{ProviderType: pt}
}

// ErrMissingCredentials is returned when one or more required Azure
// environment variables are not set.
type ErrMissingCredentials struct {
	Missing []string
}

func (e ErrMissingCredentials) Error() string {
	return fmt.Sprintf("missing Azure credentials: %s", e.Missing)
}

// NewErrMissingCredentials constructs an ErrMissingCredentials listing which
// environment variables were empty.
func NewErrMissingCredentials(missing []string) error {
	return ErrMissingCredentials{Missing: missing}
}

// ErrAzureConfigValidation is returned when the Azure provider config fails Validate().
type ErrAzureConfigValidation struct {
	Err error
}

func (e ErrAzureConfigValidation) Error() string {
	return fmt.Sprintf("azure config validation failed: %v", e.Err)
}

func (e ErrAzureConfigValidation) Unwrap() error {
	return e.Err
}

func NewAzureConfigValidation(err error) error {
	return ErrAzureConfigValidation{Err: err}
}

// ErrCloudConfigNotInit indicates LoadCloudConfig wasn't called or failed.
type ErrCloudConfigNotInit struct{}

func (e ErrCloudConfigNotInit) Error() string {
	return "cloud configuration not initialized"
}

func NewErrCloudConfigNotInit() error {
	return ErrCloudConfigNotInit{}
}

// ErrLoadCloudConfig wraps LoadCloudConfig failures.
type ErrLoadCloudConfig struct {
	Err error
}

func (e ErrLoadCloudConfig) Error() string {
	return fmt.Sprintf("failed to load cloud configuration: %v", e.Err)
}

func (e ErrLoadCloudConfig) Unwrap() error {
	return e.Err
}

func NewErrLoadCloudConfig(err error) error {
	return ErrLoadCloudConfig{Err: err}
}

// ErrInvalidSubmitMode is returned when INGEST_SUBMIT_MODE is neither
// "instance" nor "batch".
type ErrInvalidSubmitMode struct {
	RawValue string
}

func (e ErrInvalidSubmitMode) Error() string {
	return fmt.Sprintf("invalid INGEST_SUBMIT_MODE=%q: must be \"instance\" or \"batch\"", e.RawValue)
}

func NewErrInvalidSubmitMode(raw string) error {
	return ErrInvalidSubmitMode{RawValue: raw}
}

// ErrInvalidDiskUnit is returned when INGEST_DISK_UNIT is neither "mb" nor "gb".
type ErrInvalidDiskUnit struct {
	RawValue string
}

func (e ErrInvalidDiskUnit) Error() string {
	return fmt.Sprintf("invalid INGEST_DISK_UNIT=%q: must be \"mb\" or \"gb\"", e.RawValue)
}

func NewErrInvalidDiskUnit(raw string) error {
	return ErrInvalidDiskUnit{RawValue: raw}
}

// ErrDebugParse wraps failures parsing the DEBUG env var.
type ErrDebugParse struct {
	RawValue string
	Err      error
}

func (e ErrDebugParse) Error() string {
	return fmt.Sprintf("failed to parse DEBUG=%q: %v", e.RawValue, e.Err)
}

func (e ErrDebugParse) Unwrap() error {
	return e.Err
}

func NewErrDebugParse(raw string, err error) error {
	return ErrDebugParse{RawValue: raw, Err: err}
}
