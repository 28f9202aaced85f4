package publish

import (
	"fmt"
	"sort"
	"strings"

	"github.com/netboxlabs/diode-sdk-go/diode"

	"github.com/cloudkeeper/azureingest/pkg/cloud"
)

// markerTag is attached to every submitted entity.
const markerTag = "Azure"

const tagValueLimit = 50

var statusMap = map[string]string{
	"running":      "active",
	"starting":     "staging",
	"stopping":     "decommissioning",
	"stopped":      "offline",
	"deallocating": "decommissioning",
	"deallocated":  "offline",
}

// MapStatus translates an Azure power state into the NetBox status
// vocabulary. Unrecognized or case-varied unknown values map to offline.
func MapStatus(azureStatus string) string {
	if mapped, ok := statusMap[strings.ToLower(azureStatus)]; ok {
		return mapped
	}
	return "offline"
}

// IPWithPrefix composes CIDR notation from an address and a subnet prefix.
// Without a prefix, dotted-decimal addresses default to /32 and
// colon-delimited ones to /128. An empty address yields an empty result.
func IPWithPrefix(address string, subnetPrefix *string) string {
	if address == "" {
		return ""
	}
	if subnetPrefix != nil && *subnetPrefix != "" {
		parts := strings.Split(*subnetPrefix, "/")
		return address + "/" + parts[len(parts)-1]
	}
	if strings.Contains(address, ":") {
		return address + "/128"
	}
	return address + "/32"
}

// vmTags derives the marker tag plus context tags for a VM: the owning
// resource group, the size class, and every Azure tag on the instance with
// its value truncated to 50 characters. Azure tags are emitted in key order
// so submissions are deterministic.
func vmTags(vm cloud.VM) []*diode.Tag {
	tags := []*diode.Tag{
		{Name: diode.String(markerTag)},
		{Name: diode.String("rg-" + vm.ResourceGroup)},
		{Name: diode.String("size-" + vm.Size)},
	}

	keys := make([]string, 0, len(vm.Tags))
	for k := range vm.Tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		tags = append(tags, &diode.Tag{
			Name: diode.String(fmt.Sprintf("%s=%s", k, truncate(vm.Tags[k], tagValueLimit))),
		})
	}

	return tags
}

func markerTags(extra ...string) []*diode.Tag {
	tags := []*diode.Tag{{Name: diode.String(markerTag)}}
	for _, name := range extra {
		tags = append(tags, &diode.Tag{Name: diode.String(name)})
	}
	return tags
}

// truncate shortens s to at most limit characters, never splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
