// Package reconcile maps platform coarse groups ("moments") onto the photo
// set that is actually accessible under the current permission grant.
package reconcile

import (
	"context"
	"sort"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
)

// ForSource selects a reconciliation strategy from the source's capabilities.
// Sources without coarse groups get the disabled strategy; sources with
// direct range queries get the per-moment query strategy; everything else
// filters the working set.
func ForSource(source ports.AssetSource, opts domain.Options) ports.MomentReconciler {
	caps := source.Capabilities()
	switch {
	case !caps.CoarseGroups:
		return Disabled{}
	case caps.RangeQueries:
		return NewRangeQuery(source, opts)
	default:
		return NewWorkingSet(source, opts)
	}
}

// Disabled is the strategy for platforms without coarse groups. It emits no
// moment clusters.
type Disabled struct{}

// ReconcileMoments implements ports.MomentReconciler.
func (Disabled) ReconcileMoments(context.Context, []domain.Asset) ([]domain.Cluster, map[string][]domain.Asset, error) {
	return nil, nil, nil
}

// momentID derives the cluster id for a coarse group. Stable across reloads
// as long as the platform keeps its group ids stable.
func momentID(group domain.CoarseGroup) string {
	return "moment_" + group.ID
}

// placeName picks the title place for a group, if the platform supplied one.
func placeName(group domain.CoarseGroup) string {
	if len(group.LocationNames) > 0 {
		return group.LocationNames[0]
	}
	return ""
}

// sortNewestFirst orders moment clusters by start time descending. Ties keep
// their relative order so equal-start moments stay grouped.
func sortNewestFirst(clusters []domain.Cluster) {
	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].StartTimeMs > clusters[j].StartTimeMs
	})
}
