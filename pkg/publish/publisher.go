package publish

import (
	"context"
	"fmt"
	"sort"

	"github.com/netboxlabs/diode-sdk-go/diode"
	"go.uber.org/zap"

	"github.com/cloudkeeper/azureingest/pkg/cloud"
	"github.com/cloudkeeper/azureingest/pkg/config/env"
	"github.com/cloudkeeper/azureingest/pkg/logger"
	"github.com/cloudkeeper/azureingest/pkg/netbox"
)

type Options struct {
	SubmitMode env.SubmitMode
	DiskUnit   env.DiskUnit
	// SiteName, when set, creates a Site entity and attaches it to every
	// cluster and VM. Empty means the cluster-only entity shape.
	SiteName string
}

// Report summarizes a publishing run for the final user-visible summary.
type Report struct {
	Clusters      int
	Instances     int
	Entities      int
	Submissions   int
	FailedBatches int
}

// Publisher maps collected VM records onto Diode entities and submits them.
// Submission failures are logged per batch and never stop later batches.
type Publisher struct {
	client netbox.Ingester
	opts   Options
}

func New(client netbox.Ingester, opts Options) *Publisher {
	return &Publisher{client: client, opts: opts}
}

func (p *Publisher) Publish(ctx context.Context, vms []cloud.VM) Report {
	var report Report

	clusters := p.publishClusters(ctx, regions(vms), &report)

	var batch []diode.Entity
	for _, vm := range vms {
		entities := p.buildVMEntities(vm, clusters[vm.Location])
		report.Instances++

		if p.opts.SubmitMode == env.Batched {
			batch = append(batch, entities...)
			continue
		}
		p.submit(ctx, "VM "+vm.Name, entities, &report)
	}

	if p.opts.SubmitMode == env.Batched && len(batch) > 0 {
		p.submit(ctx, "batched run", batch, &report)
	}

	return report
}

// publishClusters creates the cluster type, cluster group, optional site,
// and one cluster per region, submitting them before any instance entities
// so downstream references resolve.
func (p *Publisher) publishClusters(ctx context.Context, regionNames []string, report *Report) map[string]*diode.Cluster {
	clusterType := &diode.ClusterType{
		Name:        diode.String(markerTag),
		Description: diode.String("Azure Virtual Machine Clusters"),
	}
	p.submit(ctx, "cluster type", []diode.Entity{clusterType}, report)

	clusterGroup := &diode.ClusterGroup{
		Name:        diode.String(markerTag),
		Description: diode.String("Azure Virtual Machines"),
	}
	p.submit(ctx, "cluster group", []diode.Entity{clusterGroup}, report)

	var site *diode.Site
	if p.opts.SiteName != "" {
		site = &diode.Site{Name: diode.String(p.opts.SiteName)}
		p.submit(ctx, "site "+p.opts.SiteName, []diode.Entity{site}, report)
	}

	clusters := make(map[string]*diode.Cluster, len(regionNames))
	for _, region := range regionNames {
		cluster := &diode.Cluster{
			Name:        diode.String("Azure-" + region),
			Type:        clusterType,
			Group:       clusterGroup,
			Description: diode.String(fmt.Sprintf("Azure VMs in %s region", region)),
			Tags:        markerTags(),
		}
		if site != nil {
			cluster.Scope = site
		}
		clusters[region] = cluster
		report.Clusters++
		p.submit(ctx, "cluster for region "+region, []diode.Entity{cluster}, report)
	}

	return clusters
}

// buildVMEntities assembles the full entity set for one instance: the VM,
// its resolvable disks, its interfaces, and their IP addresses.
func (p *Publisher) buildVMEntities(vm cloud.VM, cluster *diode.Cluster) []diode.Entity {
	vmEntity := &diode.VirtualMachine{
		Name:     diode.String(vm.Name),
		Status:   diode.String(MapStatus(vm.Status)),
		Cluster:  cluster,
		Comments: diode.String("Azure VM ID: " + vm.ID),
		Tags:     vmTags(vm),
	}
	if p.opts.SiteName != "" {
		vmEntity.Site = &diode.Site{Name: diode.String(p.opts.SiteName)}
	}
	if vm.OSType != "" {
		vmEntity.Platform = &diode.Platform{Name: diode.String(vm.OSType)}
	}
	// Unresolved size catalog entries stay unset; the VM is submitted anyway.
	if vm.VCPUs != nil {
		vmEntity.Vcpus = diode.Float64(float64(*vm.VCPUs))
	}
	if vm.MemoryMB != nil {
		vmEntity.Memory = diode.Int64(int64(*vm.MemoryMB))
	}

	entities := []diode.Entity{vmEntity}

	for _, disk := range vm.Disks {
		if disk.SizeGB == nil {
			logger.Log.Info("skipping disk with no size information",
				zap.String("vm", vm.Name), zap.String("disk", disk.Name))
			continue
		}
		size := int64(*disk.SizeGB)
		if p.opts.DiskUnit == env.DiskUnitMB {
			size *= 1024
		}
		entities = append(entities, &diode.VirtualDisk{
			Name:           diode.String(disk.Name),
			VirtualMachine: vmEntity,
			Size:           diode.Int64(size),
			Tags:           markerTags(),
		})
	}

	for i, nic := range vm.Interfaces {
		name := nic.Name
		if name == "" {
			name = fmt.Sprintf("eth%d", i+1)
		}

		ifaceEntity := &diode.VMInterface{
			Name:           diode.String(name),
			VirtualMachine: vmEntity,
			Enabled:        diode.Bool(nic.Enabled),
			Description:    diode.String("Azure NIC: " + nic.ID),
			Tags:           markerTags(),
		}
		entities = append(entities, ifaceEntity)

		for _, ipConfig := range nic.IPConfigurations {
			if ipConfig.PrivateIP != "" {
				entities = append(entities, &diode.IPAddress{
					Address:        diode.String(IPWithPrefix(ipConfig.PrivateIP, ipConfig.SubnetPrefix)),
					Status:         diode.String("active"),
					Description:    diode.String(fmt.Sprintf("Private IP for %s - %s", vm.Name, name)),
					AssignedObject: ifaceEntity,
					Tags:           markerTags("Private"),
				})
			}
			if ipConfig.PublicIP != "" {
				// Public addresses are always submitted as /32.
				entities = append(entities, &diode.IPAddress{
					Address:        diode.String(ipConfig.PublicIP + "/32"),
					Status:         diode.String("active"),
					Description:    diode.String(fmt.Sprintf("Public IP for %s - %s", vm.Name, name)),
					AssignedObject: ifaceEntity,
					Tags:           markerTags("Public"),
				})
			}
		}
	}

	return entities
}

func (p *Publisher) submit(ctx context.Context, label string, entities []diode.Entity, report *Report) {
	report.Submissions++
	report.Entities += len(entities)

	resp, err := p.client.Ingest(ctx, entities)
	if err != nil {
		report.FailedBatches++
		logger.Log.Error("ingestion failed",
			zap.String("submission", label), zap.Error(err))
		return
	}
	if resp != nil && len(resp.GetErrors()) > 0 {
		report.FailedBatches++
		logger.Log.Error("ingestion returned errors",
			zap.String("submission", label),
			zap.Strings("errors", resp.GetErrors()))
		return
	}

	logger.Log.Info("ingested",
		zap.String("submission", label), zap.Int("entities", len(entities)))
}

func regions(vms []cloud.VM) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, vm := range vms {
		if _, ok := seen[vm.Location]; ok {
			continue
		}
		seen[vm.Location] = struct{}{}
		out = append(out, vm.Location)
	}
	sort.Strings(out)
	return out
}
