package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/cloudkeeper/azureingest/pkg/cloud"
	"github.com/cloudkeeper/azureingest/pkg/output"
	"github.com/cloudkeeper/azureingest/pkg/publish"
)

func TestDumpVMs(t *testing.T) {
	vms := []cloud.VM{
		{
			Name:          "vm-a",
			Location:      "westeurope",
			ResourceGroup: "rg-prod",
			Size:          "Standard_B2s",
			OSType:        "Linux",
			Status:        "running",
			VCPUs:         to.Ptr(int32(2)),
			Disks: []cloud.Disk{
				{Name: "vm-a-os", SizeGB: to.Ptr(int32(30)), OSDisk: true},
				{Name: "vm-a-data", OSDisk: false},
			},
			Interfaces: []cloud.NetworkInterface{
				{
					Name:    "nic-a",
					Primary: true,
					Enabled: true,
					IPConfigurations: []cloud.IPConfiguration{
						{Name: "ipconfig1", PrivateIP: "10.0.0.5", SubnetName: "default", SubnetPrefix: to.Ptr("10.0.0.0/24")},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	output.DumpVMs(&buf, vms)
	got := buf.String()

	assert.Contains(t, got, "vm-a")
	assert.Contains(t, got, "westeurope")
	assert.Contains(t, got, "disk vm-a-os (OS, 30 GB)")
	assert.Contains(t, got, "disk vm-a-data (Data, unresolved)")
	assert.Contains(t, got, "nic nic-a (primary=true enabled=true)")
	assert.Contains(t, got, "private=10.0.0.5 subnet=default (10.0.0.0/24)")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	output.PrintSummary(&buf, publish.Report{Instances: 3, Entities: 12, Clusters: 2, Submissions: 5})
	assert.Contains(t, buf.String(), "Ingested 3 instances (12 entities, 2 clusters) in 5 submissions")
	assert.NotContains(t, buf.String(), "returned errors")

	buf.Reset()
	output.PrintSummary(&buf, publish.Report{Instances: 3, Submissions: 5, FailedBatches: 2})
	assert.Contains(t, buf.String(), "2 submissions returned errors")
}
