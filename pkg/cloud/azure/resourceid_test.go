package azure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudkeeper/azureingest/pkg/cloud/azure"
)

func TestResourceGroupFromID(t *testing.T) {
	rg, err := azure.ResourceGroupFromID(vmID)
	require.NoError(t, err)
	assert.Equal(t, "rg-prod", rg)

	_, err = azure.ResourceGroupFromID("/subscriptions/sub")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing resource group segment")

	_, err = azure.ResourceGroupFromID("")
	require.Error(t, err)
}

func TestNameFromID(t *testing.T) {
	assert.Equal(t, "vm-a", azure.NameFromID(vmID))
	assert.Equal(t, "default", azure.NameFromID(subnetID))
	assert.Equal(t, "plain-name", azure.NameFromID("plain-name"))
}

func TestSubnetPartsFromID(t *testing.T) {
	rg, vnet, subnet, err := azure.SubnetPartsFromID(subnetID)
	require.NoError(t, err)
	assert.Equal(t, "rg-net", rg)
	assert.Equal(t, "vnet-prod", vnet)
	assert.Equal(t, "default", subnet)

	_, _, _, err = azure.SubnetPartsFromID(nicID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing subnet segments")
}
