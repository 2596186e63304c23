package reconcile

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/lume/internal/engine/cluster"
)

// WorkingSet reconciles moments against the already-fetched working asset
// set instead of issuing a query per moment. No boundary padding is applied
// because both sides of the comparison come from the same normalized source.
// It only covers moments whose photos fall within the working set's time
// window; the photo lists it computes are handed back for cache seeding.
type WorkingSet struct {
	source ports.AssetSource
	loc    *time.Location
}

// NewWorkingSet creates the working-set filter strategy.
func NewWorkingSet(source ports.AssetSource, opts domain.Options) *WorkingSet {
	return &WorkingSet{source: source, loc: opts.DayLocation()}
}

// ReconcileMoments implements ports.MomentReconciler.
func (w *WorkingSet) ReconcileMoments(ctx context.Context, workingSet []domain.Asset) ([]domain.Cluster, map[string][]domain.Asset, error) {
	groups, err := w.source.ListCoarseGroups(ctx)
	if err != nil {
		return nil, nil, errors.Join(domain.ErrFetchFailed, err)
	}

	clusters := make([]domain.Cluster, 0, len(groups))
	prefetched := make(map[string][]domain.Asset, len(groups))

	for _, group := range groups {
		startMs := domain.ToMillisMaybeSeconds(group.StartTime)
		endMs := domain.ToMillisMaybeSeconds(group.EndTime)

		matches := filterByInterval(workingSet, startMs, endMs)
		if len(matches) == 0 {
			continue
		}

		dateTitle := cluster.DateRangeTitle(startMs, endMs, w.loc)
		title := dateTitle
		subtitle := ""
		if place := placeName(group); place != "" {
			title = place
			subtitle = dateTitle
		}

		id := momentID(group)
		clusters = append(clusters, domain.Cluster{
			ID:          id,
			Kind:        domain.KindMoment,
			Title:       title,
			Subtitle:    subtitle,
			CoverURI:    matches[0].URI,
			Count:       len(matches),
			StartTimeMs: startMs,
			EndTimeMs:   endMs,
			AlbumID:     group.ID,
		})
		prefetched[id] = matches
	}

	sortNewestFirst(clusters)
	return clusters, prefetched, nil
}

// filterByInterval returns the assets whose normalized creation time falls
// within [startMs, endMs], newest first.
func filterByInterval(assets []domain.Asset, startMs, endMs int64) []domain.Asset {
	var matches []domain.Asset
	for _, a := range assets {
		ms := a.CreationMillis()
		if ms >= startMs && ms <= endMs {
			matches = append(matches, a)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreationMillis() > matches[j].CreationMillis()
	})
	return matches
}
