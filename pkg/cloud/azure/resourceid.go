package azure

import (
	"strings"

	"github.com/cloudkeeper/azureingest/pkg/errors"
)

// Azure resource IDs follow a fixed positional layout:
//
//	/subscriptions/<sub>/resourceGroups/<rg>/providers/<ns>/<type>/<name>[/<child type>/<child name>]
//
// Splitting on "/" puts the resource group at index 4 and, for subnet IDs,
// the virtual network at index 8 and the subnet at index 10.
const (
	resourceGroupIndex = 4
	vnetIndex          = 8
	subnetIndex        = 10
)

// ResourceGroupFromID extracts the owning resource group from a resource ID.
func ResourceGroupFromID(id string) (string, error) {
	parts := strings.Split(id, "/")
	if len(parts) <= resourceGroupIndex || parts[resourceGroupIndex] == "" {
		return "", errors.NewResourceIDParse(id, "missing resource group segment")
	}
	return parts[resourceGroupIndex], nil
}

// NameFromID returns the trailing segment of a resource ID.
func NameFromID(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}

// SubnetPartsFromID extracts the resource group, virtual network name, and
// subnet name from a subnet resource ID.
func SubnetPartsFromID(id string) (resourceGroup, vnet, subnet string, err error) {
	parts := strings.Split(id, "/")
	if len(parts) <= subnetIndex {
		return "", "", "", errors.NewResourceIDParse(id, "missing subnet segments")
	}
	return parts[resourceGroupIndex], parts[vnetIndex], parts[subnetIndex], nil
}
