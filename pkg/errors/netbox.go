package errors

import (
	"fmt"
)

// ErrNetboxClientInit wraps failures constructing the Diode ingestion client.
// This is the one fatal condition in the publishing stage.
type ErrNetboxClientInit struct {
	Err error
}

func (e ErrNetboxClientInit) Error() string {
	return fmt.Sprintf("unable to initialize Diode client: %v", e.Err)
}

func (e ErrNetboxClientInit) Unwrap() error {
	return e.Err
}

func NewNetboxClientInit(err error) error {
	return ErrNetboxClientInit{Err: err}
}

// ErrMissingNetboxAuth is returned when the DIODE_CLIENT_ID/DIODE_CLIENT_SECRET
// pair is incomplete.
type ErrMissingNetboxAuth struct{}

func (e ErrMissingNetboxAuth) Error() string {
	return "missing Diode credentials: set DIODE_CLIENT_ID and DIODE_CLIENT_SECRET"
}

func NewErrMissingNetboxAuth() error {
	return ErrMissingNetboxAuth{}
}

// ErrNetboxConfigValidation wraps Diode config validation failures.
type ErrNetboxConfigValidation struct {
	Err error
}

func (e ErrNetboxConfigValidation) Error() string {
	return fmt.Sprintf("diode config validation failed: %v", e.Err)
}

func (e ErrNetboxConfigValidation) Unwrap() error {
	return e.Err
}

func NewNetboxConfigValidation(err error) error {
	return ErrNetboxConfigValidation{Err: err}
}
