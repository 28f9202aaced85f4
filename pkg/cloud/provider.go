package cloud

import (
	"context"

	"github.com/cloudkeeper/azureingest/pkg/config/cloud"
)

// VM is the provider-neutral record assembled by the collector. Nullable
// fields stay nil when the corresponding lookup failed; nothing else is
// mutated after construction.
type VM struct {
	Name          string            `json:"name"`
	ID            string            `json:"id"`
	Location      string            `json:"location"`
	Size          string            `json:"vm_size"`
	OSType        string            `json:"os_type"`
	ResourceGroup string            `json:"resource_group"`
	Status        string            `json:"status"`
	VCPUs         *int32            `json:"vcpus"`
	MemoryMB      *int32            `json:"memory_mb"`
	Tags          map[string]string `json:"tags"`
	Disks         []Disk            `json:"disks"`
	Interfaces    []NetworkInterface `json:"network_interfaces"`
}

type Disk struct {
	Name   string `json:"name"`
	SizeGB *int32 `json:"size_gb"`
	OSDisk bool   `json:"is_os_disk"`
}

// NetworkInterface is degraded to Enabled=false with no IP configurations
// when the interface detail fetch fails.
type NetworkInterface struct {
	Name             string            `json:"name"`
	ID               string            `json:"id"`
	Primary          bool              `json:"primary"`
	Enabled          bool              `json:"enabled"`
	IPConfigurations []IPConfiguration `json:"ip_configurations"`
}

type IPConfiguration struct {
	Name             string  `json:"name"`
	PrivateIP        string  `json:"private_ip"`
	AllocationMethod string  `json:"private_ip_allocation"`
	SubnetName       string  `json:"subnet"`
	SubnetPrefix     *string `json:"subnet_prefix"`
	PublicIP         string  `json:"public_ip"`
}

type InventoryProvider interface {
	FetchVMs(ctx context.Context, cfg cloud.ProviderConfig) ([]VM, error)
}
