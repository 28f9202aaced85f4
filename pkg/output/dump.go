package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/cloudkeeper/azureingest/pkg/cloud"
	"github.com/cloudkeeper/azureingest/pkg/publish"
)

// DumpVMs renders the full collected record tree before submission
// (the --debug surface).
func DumpVMs(w io.Writer, vms []cloud.VM) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Region", "Resource Group", "Size", "OS", "Status", "vCPUs", "Memory (MB)"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, vm := range vms {
		table.Append([]string{
			vm.Name,
			vm.Location,
			vm.ResourceGroup,
			vm.Size,
			vm.OSType,
			vm.Status,
			formatNullable(vm.VCPUs),
			formatNullable(vm.MemoryMB),
		})
	}
	table.Render()

	for _, vm := range vms {
		fmt.Fprintf(w, "\n%s\n", vm.Name)
		for _, disk := range vm.Disks {
			kind := "Data"
			if disk.OSDisk {
				kind = "OS"
			}
			size := "unresolved"
			if disk.SizeGB != nil {
				size = strconv.Itoa(int(*disk.SizeGB)) + " GB"
			}
			fmt.Fprintf(w, "  disk %s (%s, %s)\n", disk.Name, kind, size)
		}
		for _, nic := range vm.Interfaces {
			fmt.Fprintf(w, "  nic %s (primary=%t enabled=%t)\n", nic.Name, nic.Primary, nic.Enabled)
			for _, ipConfig := range nic.IPConfigurations {
				prefix := "-"
				if ipConfig.SubnetPrefix != nil {
					prefix = *ipConfig.SubnetPrefix
				}
				fmt.Fprintf(w, "    %s: private=%s subnet=%s (%s) public=%s\n",
					ipConfig.Name, ipConfig.PrivateIP, ipConfig.SubnetName, prefix, ipConfig.PublicIP)
			}
		}
	}
}

// PrintSummary reports the publishing outcome.
func PrintSummary(w io.Writer, report publish.Report) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	line := fmt.Sprintf("Ingested %d instances (%d entities, %d clusters) in %d submissions",
		report.Instances, report.Entities, report.Clusters, report.Submissions)
	if report.FailedBatches == 0 {
		fmt.Fprintln(w, green(line))
		return
	}
	fmt.Fprintln(w, red(fmt.Sprintf("%s; %d submissions returned errors", line, report.FailedBatches)))
}

func formatNullable(v *int32) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(int(*v))
}
