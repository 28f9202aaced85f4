package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// Narrow views over the Azure SDK clients so the collector can be exercised
// against mocks. The adapters below drain the SDK pagers; everything else is
// a single blocking call.

type VirtualMachinesAPI interface {
	// List enumerates the subscription when resourceGroup is empty,
	// otherwise only the given resource group.
	List(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error)
	// Get fetches a single VM expanded with its instance view.
	Get(ctx context.Context, resourceGroup, name string) (armcompute.VirtualMachine, error)
}

type DisksAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armcompute.Disk, error)
}

type VirtualMachineSizesAPI interface {
	List(ctx context.Context, location string) ([]*armcompute.VirtualMachineSize, error)
}

type InterfacesAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.Interface, error)
}

type SubnetsAPI interface {
	Get(ctx context.Context, resourceGroup, vnet, subnet string) (armnetwork.Subnet, error)
}

type PublicIPAddressesAPI interface {
	Get(ctx context.Context, resourceGroup, name string) (armnetwork.PublicIPAddress, error)
}

type virtualMachinesClient struct {
	client *armcompute.VirtualMachinesClient
}

func (c *virtualMachinesClient) List(ctx context.Context, resourceGroup string) ([]*armcompute.VirtualMachine, error) {
	var vms []*armcompute.VirtualMachine
	if resourceGroup == "" {
		pager := c.client.NewListAllPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, err
			}
			vms = append(vms, page.Value...)
		}
		return vms, nil
	}

	pager := c.client.NewListPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		vms = append(vms, page.Value...)
	}
	return vms, nil
}

func (c *virtualMachinesClient) Get(ctx context.Context, resourceGroup, name string) (armcompute.VirtualMachine, error) {
	resp, err := c.client.Get(ctx, resourceGroup, name, &armcompute.VirtualMachinesClientGetOptions{
		Expand: to.Ptr(armcompute.InstanceViewTypesInstanceView),
	})
	if err != nil {
		return armcompute.VirtualMachine{}, err
	}
	return resp.VirtualMachine, nil
}

type disksClient struct {
	client *armcompute.DisksClient
}

func (c *disksClient) Get(ctx context.Context, resourceGroup, name string) (armcompute.Disk, error) {
	resp, err := c.client.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return armcompute.Disk{}, err
	}
	return resp.Disk, nil
}

type virtualMachineSizesClient struct {
	client *armcompute.VirtualMachineSizesClient
}

func (c *virtualMachineSizesClient) List(ctx context.Context, location string) ([]*armcompute.VirtualMachineSize, error) {
	var sizes []*armcompute.VirtualMachineSize
	pager := c.client.NewListPager(location, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, page.Value...)
	}
	return sizes, nil
}

type interfacesClient struct {
	client *armnetwork.InterfacesClient
}

func (c *interfacesClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.Interface, error) {
	resp, err := c.client.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return armnetwork.Interface{}, err
	}
	return resp.Interface, nil
}

type subnetsClient struct {
	client *armnetwork.SubnetsClient
}

func (c *subnetsClient) Get(ctx context.Context, resourceGroup, vnet, subnet string) (armnetwork.Subnet, error) {
	resp, err := c.client.Get(ctx, resourceGroup, vnet, subnet, nil)
	if err != nil {
		return armnetwork.Subnet{}, err
	}
	return resp.Subnet, nil
}

type publicIPAddressesClient struct {
	client *armnetwork.PublicIPAddressesClient
}

func (c *publicIPAddressesClient) Get(ctx context.Context, resourceGroup, name string) (armnetwork.PublicIPAddress, error) {
	resp, err := c.client.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return armnetwork.PublicIPAddress{}, err
	}
	return resp.PublicIPAddress, nil
}
