package errors

import (
	"fmt"
)

// ErrWrongConfigType indicates the passed-in ProviderConfig wasn't *azure.Config.
type ErrWrongConfigType struct {
	Got interface{}
}

func (e ErrWrongConfigType) Error() string {
	return fmt.Sprintf("unexpected provider config type %T, want *azure.Config", e.Got)
}

func NewWrongConfigType(got interface{}) error {
	return ErrWrongConfigType{Got: got}
}

// ErrAzureClientInit wraps failures constructing the Azure credential or
// management clients. This is fatal: no collection happens without clients.
type ErrAzureClientInit struct {
	Err error
}

func (e ErrAzureClientInit) Error() string {
	return fmt.Sprintf("unable to initialize Azure clients: %v", e.Err)
}

func (e ErrAzureClientInit) Unwrap() error {
	return e.Err
}

func NewAzureClientInit(err error) error {
	return ErrAzureClientInit{Err: err}
}

// ErrListVirtualMachines wraps failures enumerating virtual machines.
type ErrListVirtualMachines struct {
	Err error
}

func (e ErrListVirtualMachines) Error() string {
	return fmt.Sprintf("failed to list virtual machines, make sure your Azure credentials have not expired: %v", e.Err)
}

func (e ErrListVirtualMachines) Unwrap() error {
	return e.Err
}

func NewListVirtualMachines(err error) error {
	return ErrListVirtualMachines{Err: err}
}

// ErrResourceIDParse indicates an Azure resource ID did not have the
// expected positional segments.
type ErrResourceIDParse struct {
	ID     string
	Reason string
}

func (e ErrResourceIDParse) Error() string {
	return fmt.Sprintf("failed to parse resource ID %q: %s", e.ID, e.Reason)
}

func NewResourceIDParse(id, reason string) error {
	return ErrResourceIDParse{ID: id, Reason: reason}
}
