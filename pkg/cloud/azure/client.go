package azure

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/cloudkeeper/azureingest/pkg/cloud"
	config "github.com/cloudkeeper/azureingest/pkg/config/cloud"
	azureConfig "github.com/cloudkeeper/azureingest/pkg/config/cloud/azure"
	"github.com/cloudkeeper/azureingest/pkg/errors"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"go.uber.org/zap"
)

const unknownStatus = "Unknown"

// AzureProvider collects VM inventory through the Azure management APIs.
// Every per-item lookup failure degrades the affected record and moves on;
// only credential/client construction and the initial enumeration are fatal.
type AzureProvider struct {
	VMs       VirtualMachinesAPI
	Disks     DisksAPI
	Sizes     VirtualMachineSizesAPI
	NICs      InterfacesAPI
	Subnets   SubnetsAPI
	PublicIPs PublicIPAddressesAPI

	// Subnet prefixes are memoized per run by subnet ID. Failed lookups
	// are not cached, so a later instance on the same subnet retries.
	subnetPrefixes map[string]string
}

func NewAzureProvider() *AzureProvider {
	return &AzureProvider{}
}

func (p *AzureProvider) FetchVMs(ctx context.Context, providerCfg config.ProviderConfig) ([]cloud.VM, error) {
	azCfg, ok := providerCfg.(*azureConfig.Config)
	if !ok {
		return nil, errors.NewWrongConfigType(providerCfg)
	}

	if p.VMs == nil {
		if err := p.initClients(azCfg); err != nil {
			return nil, errors.NewAzureClientInit(err)
		}
	}
	if p.subnetPrefixes == nil {
		p.subnetPrefixes = make(map[string]string)
	}

	vms, err := p.VMs.List(ctx, azCfg.ResourceGroup)
	if err != nil {
		return nil, errors.NewListVirtualMachines(err)
	}

	records := make([]cloud.VM, 0, len(vms))
	for _, vm := range vms {
		if vm == nil || vm.ID == nil || vm.Name == nil {
			continue
		}
		records = append(records, p.collectVM(ctx, vm))
	}

	return records, nil
}

func (p *AzureProvider) initClients(cfg *azureConfig.Config) error {
	cred, err := azidentity.NewClientSecretCredential(cfg.TenantID, cfg.ClientID, cfg.ClientSecret, nil)
	if err != nil {
		return err
	}

	vmClient, err := armcompute.NewVirtualMachinesClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}
	diskClient, err := armcompute.NewDisksClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}
	sizeClient, err := armcompute.NewVirtualMachineSizesClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}
	nicClient, err := armnetwork.NewInterfacesClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}
	subnetClient, err := armnetwork.NewSubnetsClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}
	publicIPClient, err := armnetwork.NewPublicIPAddressesClient(cfg.SubscriptionID, cred, nil)
	if err != nil {
		return err
	}

	p.VMs = &virtualMachinesClient{client: vmClient}
	p.Disks = &disksClient{client: diskClient}
	p.Sizes = &virtualMachineSizesClient{client: sizeClient}
	p.NICs = &interfacesClient{client: nicClient}
	p.Subnets = &subnetsClient{client: subnetClient}
	p.PublicIPs = &publicIPAddressesClient{client: publicIPClient}
	return nil
}

func (p *AzureProvider) collectVM(ctx context.Context, vm *armcompute.VirtualMachine) cloud.VM {
	id := *vm.ID
	name := *vm.Name

	resourceGroup, err := ResourceGroupFromID(id)
	if err != nil {
		logger.Log.Warn("could not derive resource group from VM ID",
			zap.String("vm", name), zap.Error(err))
	}

	record := cloud.VM{
		Name:          name,
		ID:            id,
		ResourceGroup: resourceGroup,
		Status:        unknownStatus,
		Tags:          derefTags(vm.Tags),
	}
	if vm.Location != nil {
		record.Location = *vm.Location
	}

	if vm.Properties != nil && vm.Properties.HardwareProfile != nil && vm.Properties.HardwareProfile.VMSize != nil {
		record.Size = string(*vm.Properties.HardwareProfile.VMSize)
	}

	detail, err := p.VMs.Get(ctx, resourceGroup, name)
	if err != nil {
		logger.Log.Warn("could not fetch VM instance view",
			zap.String("vm", name),
			zap.String("cause", classifyLookupFailure(err)),
			zap.Error(err))
	} else if detail.Properties != nil {
		record.Status = powerState(detail.Properties.InstanceView)
	}

	if vm.Properties != nil && vm.Properties.StorageProfile != nil {
		profile := vm.Properties.StorageProfile
		if profile.OSDisk != nil && profile.OSDisk.OSType != nil {
			record.OSType = string(*profile.OSDisk.OSType)
		}
		record.Disks = p.collectDisks(ctx, profile, resourceGroup, name)
	}

	record.Interfaces = p.collectInterfaces(ctx, vm, name)
	record.VCPUs, record.MemoryMB = p.resolveSize(ctx, record.Location, record.Size, name)

	return record
}

// collectDisks assembles the OS disk (size resolved via a disk lookup) plus
// the inline data disks.
func (p *AzureProvider) collectDisks(ctx context.Context, profile *armcompute.StorageProfile, resourceGroup, vmName string) []cloud.Disk {
	var disks []cloud.Disk

	if profile.OSDisk != nil && profile.OSDisk.Name != nil {
		osDisk := cloud.Disk{Name: *profile.OSDisk.Name, OSDisk: true}
		resource, err := p.Disks.Get(ctx, resourceGroup, osDisk.Name)
		if err != nil {
			logger.Log.Warn("could not resolve OS disk size",
				zap.String("vm", vmName),
				zap.String("disk", osDisk.Name),
				zap.String("cause", classifyLookupFailure(err)),
				zap.Error(err))
		} else if resource.Properties != nil {
			osDisk.SizeGB = resource.Properties.DiskSizeGB
		}
		disks = append(disks, osDisk)
	}

	for _, dataDisk := range profile.DataDisks {
		if dataDisk == nil || dataDisk.Name == nil {
			continue
		}
		disks = append(disks, cloud.Disk{
			Name:   *dataDisk.Name,
			SizeGB: dataDisk.DiskSizeGB,
		})
	}

	return disks
}

func (p *AzureProvider) collectInterfaces(ctx context.Context, vm *armcompute.VirtualMachine, vmName string) []cloud.NetworkInterface {
	var interfaces []cloud.NetworkInterface
	if vm.Properties == nil || vm.Properties.NetworkProfile == nil {
		return interfaces
	}

	for _, ref := range vm.Properties.NetworkProfile.NetworkInterfaces {
		if ref == nil || ref.ID == nil {
			continue
		}
		nicID := *ref.ID
		nicName := NameFromID(nicID)
		primary := ref.Properties != nil && ref.Properties.Primary != nil && *ref.Properties.Primary

		nicResourceGroup, err := ResourceGroupFromID(nicID)
		if err == nil {
			nic, getErr := p.NICs.Get(ctx, nicResourceGroup, nicName)
			if getErr == nil {
				interfaces = append(interfaces, cloud.NetworkInterface{
					Name:             nicName,
					ID:               nicID,
					Primary:          primary,
					Enabled:          true,
					IPConfigurations: p.collectIPConfigurations(ctx, nic, vmName, nicName),
				})
				continue
			}
			err = getErr
		}

		logger.Log.Warn("could not get network interface details",
			zap.String("vm", vmName),
			zap.String("nic", nicName),
			zap.String("cause", classifyLookupFailure(err)),
			zap.Error(err))
		interfaces = append(interfaces, cloud.NetworkInterface{
			Name:             nicName,
			ID:               nicID,
			Primary:          false,
			Enabled:          false,
			IPConfigurations: []cloud.IPConfiguration{},
		})
	}

	return interfaces
}

func (p *AzureProvider) collectIPConfigurations(ctx context.Context, nic armnetwork.Interface, vmName, nicName string) []cloud.IPConfiguration {
	configs := make([]cloud.IPConfiguration, 0)
	if nic.Properties == nil {
		return configs
	}

	for _, ipConfig := range nic.Properties.IPConfigurations {
		if ipConfig == nil {
			continue
		}
		data := cloud.IPConfiguration{Name: deref(ipConfig.Name)}

		props := ipConfig.Properties
		if props == nil {
			configs = append(configs, data)
			continue
		}

		data.PrivateIP = deref(props.PrivateIPAddress)
		if props.PrivateIPAllocationMethod != nil {
			data.AllocationMethod = string(*props.PrivateIPAllocationMethod)
		}

		if props.Subnet != nil && props.Subnet.ID != nil {
			subnetID := *props.Subnet.ID
			data.SubnetName = NameFromID(subnetID)
			data.SubnetPrefix = p.subnetPrefix(ctx, subnetID)
		}

		if props.PublicIPAddress != nil && props.PublicIPAddress.ID != nil {
			data.PublicIP = p.publicIP(ctx, *props.PublicIPAddress.ID, vmName, nicName)
		}

		configs = append(configs, data)
	}

	return configs
}

func (p *AzureProvider) subnetPrefix(ctx context.Context, subnetID string) *string {
	if prefix, ok := p.subnetPrefixes[subnetID]; ok {
		return &prefix
	}

	resourceGroup, vnet, subnet, err := SubnetPartsFromID(subnetID)
	if err != nil {
		logger.Log.Warn("could not parse subnet ID",
			zap.String("subnet_id", subnetID), zap.Error(err))
		return nil
	}

	resource, err := p.Subnets.Get(ctx, resourceGroup, vnet, subnet)
	if err != nil {
		logger.Log.Warn("could not get subnet details",
			zap.String("subnet_id", subnetID),
			zap.String("cause", classifyLookupFailure(err)),
			zap.Error(err))
		return nil
	}
	if resource.Properties == nil || resource.Properties.AddressPrefix == nil {
		return nil
	}

	prefix := *resource.Properties.AddressPrefix
	p.subnetPrefixes[subnetID] = prefix
	return &prefix
}

func (p *AzureProvider) publicIP(ctx context.Context, publicIPID, vmName, nicName string) string {
	name := NameFromID(publicIPID)
	resourceGroup, err := ResourceGroupFromID(publicIPID)
	if err == nil {
		resource, getErr := p.PublicIPs.Get(ctx, resourceGroup, name)
		if getErr == nil {
			if resource.Properties == nil {
				return ""
			}
			return deref(resource.Properties.IPAddress)
		}
		err = getErr
	}

	logger.Log.Warn("could not get public IP",
		zap.String("vm", vmName),
		zap.String("nic", nicName),
		zap.String("public_ip", name),
		zap.String("cause", classifyLookupFailure(err)),
		zap.Error(err))
	return ""
}

// resolveSize walks the region's size catalog for an exact name match; the
// first match wins. Any failure leaves both fields nil.
func (p *AzureProvider) resolveSize(ctx context.Context, location, sizeName, vmName string) (*int32, *int32) {
	if sizeName == "" {
		return nil, nil
	}

	sizes, err := p.Sizes.List(ctx, location)
	if err != nil {
		logger.Log.Warn("could not fetch VM size details",
			zap.String("vm", vmName),
			zap.String("size", sizeName),
			zap.String("cause", classifyLookupFailure(err)),
			zap.Error(err))
		return nil, nil
	}

	for _, size := range sizes {
		if size == nil || size.Name == nil {
			continue
		}
		if *size.Name == sizeName {
			return size.NumberOfCores, size.MemoryInMB
		}
	}
	return nil, nil
}

func powerState(view *armcompute.VirtualMachineInstanceView) string {
	if view == nil {
		return unknownStatus
	}
	for _, status := range view.Statuses {
		if status == nil || status.Code == nil {
			continue
		}
		if strings.HasPrefix(*status.Code, "PowerState/") {
			return strings.TrimPrefix(*status.Code, "PowerState/")
		}
	}
	return unknownStatus
}

// classifyLookupFailure mirrors the three failure classes callers care
// about: a 404, some other HTTP response, or a transport-level failure.
func classifyLookupFailure(err error) string {
	var respErr *azcore.ResponseError
	if stderrors.As(err, &respErr) {
		if respErr.StatusCode == http.StatusNotFound {
			return "not found"
		}
		return "http error"
	}
	return "network error"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTags(tags map[string]*string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = deref(v)
	}
	return out
}
