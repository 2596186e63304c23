package reconcile

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/lume/internal/engine/cluster"
	"go.trai.ch/zerr"
)

// RangeQuery reconciles moments by issuing one scoped query per coarse group.
// The query interval is widened by the configured padding on both ends so
// that photos at moment boundaries are not silently dropped to clock or
// rounding skew. The accessible count and the cover come from the query, not
// from the platform's reported count.
type RangeQuery struct {
	source    ports.AssetSource
	paddingMs int64
	loc       *time.Location
}

// NewRangeQuery creates the per-moment query strategy.
func NewRangeQuery(source ports.AssetSource, opts domain.Options) *RangeQuery {
	return &RangeQuery{
		source:    source,
		paddingMs: opts.PaddingMillis(),
		loc:       opts.DayLocation(),
	}
}

// ReconcileMoments implements ports.MomentReconciler. The working set is
// ignored; every moment gets its own range query.
func (r *RangeQuery) ReconcileMoments(ctx context.Context, _ []domain.Asset) ([]domain.Cluster, map[string][]domain.Asset, error) {
	groups, err := r.source.ListCoarseGroups(ctx)
	if err != nil {
		return nil, nil, errors.Join(domain.ErrFetchFailed, err)
	}

	clusters := make([]domain.Cluster, 0, len(groups))
	for _, group := range groups {
		startMs := domain.ToMillisMaybeSeconds(group.StartTime)
		endMs := domain.ToMillisMaybeSeconds(group.EndTime)

		queryStart := startMs - r.paddingMs
		if queryStart < 0 {
			queryStart = 0
		}

		// One photo for the cover plus the total matched for the count.
		page, err := r.source.ListPhotosInRange(ctx, queryStart, endMs+r.paddingMs, 1, "")
		if err != nil {
			return nil, nil, zerr.With(
				errors.Join(domain.ErrFetchFailed, err),
				"moment", group.ID,
			)
		}

		// Moments with no accessible photos are not surfaced at all.
		if page.TotalMatched == 0 || len(page.Assets) == 0 {
			continue
		}

		dateTitle := cluster.DateRangeTitle(startMs, endMs, r.loc)
		title := dateTitle
		subtitle := ""
		if place := placeName(group); place != "" {
			title = place
			subtitle = dateTitle
		}

		clusters = append(clusters, domain.Cluster{
			ID:          momentID(group),
			Kind:        domain.KindMoment,
			Title:       title,
			Subtitle:    subtitle,
			CoverURI:    page.Assets[0].URI,
			Count:       page.TotalMatched,
			StartTimeMs: startMs,
			EndTimeMs:   endMs,
			AlbumID:     group.ID,
		})
	}

	sortNewestFirst(clusters)
	return clusters, nil, nil
}
