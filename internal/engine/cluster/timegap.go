// Package cluster implements time-gap clustering of photo assets.
package cluster

import (
	"fmt"
	"sort"
	"time"

	"go.trai.ch/lume/internal/core/domain"
)

// Config controls gap chunking and the small-chunk merge pass.
type Config struct {
	// TimeGapMinutes is the maximum gap between chronologically adjacent
	// photos within one cluster.
	TimeGapMinutes int
	// MinClusterSize is the size below which a chunk is merged into the
	// preceding output chunk when both share an anchor day.
	MinClusterSize int
	// Location is the timezone for anchor-day comparisons and formatting.
	// Nil means time.Local.
	Location *time.Location
}

func (c Config) withDefaults() Config {
	if c.TimeGapMinutes <= 0 {
		c.TimeGapMinutes = domain.DefaultTimeGapMinutes
	}
	if c.MinClusterSize <= 0 {
		c.MinClusterSize = domain.DefaultMinClusterSize
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	return c
}

// ByTime partitions assets into clusters separated by gaps larger than the
// configured threshold, then folds undersized clusters into their same-day
// predecessor to reduce clutter.
//
// The gap comparison is against the previous asset already placed in the
// current chunk, not the chunk's first element, so a cluster's overall span
// may exceed the threshold through chained adjacency. Undersized chunks that
// open a new calendar day (or start the sequence) survive below
// MinClusterSize; the merge pass reduces clutter, it is not a size filter.
func ByTime(assets []domain.Asset, cfg Config) []domain.Cluster {
	cfg = cfg.withDefaults()
	if len(assets) == 0 {
		return []domain.Cluster{}
	}

	sorted := make([]domain.Asset, len(assets))
	copy(sorted, assets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreationMillis() > sorted[j].CreationMillis()
	})

	chunks := chunkByGap(sorted, int64(cfg.TimeGapMinutes)*60_000)
	merged := mergeSmallChunks(chunks, cfg.MinClusterSize, cfg.Location)

	clusters := make([]domain.Cluster, 0, len(merged))
	for idx, chunk := range merged {
		clusters = append(clusters, materialize(idx, chunk, cfg.Location))
	}
	return clusters
}

// chunkByGap splits a newest-first asset list into contiguous runs where no
// two adjacent assets are farther apart than gapMs.
func chunkByGap(sorted []domain.Asset, gapMs int64) [][]domain.Asset {
	var chunks [][]domain.Asset
	var current []domain.Asset

	for _, asset := range sorted {
		if len(current) == 0 {
			current = append(current, asset)
			continue
		}

		prev := current[len(current)-1]
		if abs(prev.CreationMillis()-asset.CreationMillis()) <= gapMs {
			current = append(current, asset)
		} else {
			chunks = append(chunks, current)
			current = []domain.Asset{asset}
		}
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}

// mergeSmallChunks folds chunks below minSize into the immediately preceding
// output chunk when both anchor days match. The anchor day is the local
// calendar day of a chunk's chronologically oldest asset, which is the last
// element in the newest-first ordering.
func mergeSmallChunks(chunks [][]domain.Asset, minSize int, loc *time.Location) [][]domain.Asset {
	merged := make([][]domain.Asset, 0, len(chunks))

	for _, chunk := range chunks {
		if len(chunk) >= minSize {
			merged = append(merged, chunk)
			continue
		}

		if len(merged) > 0 {
			prev := merged[len(merged)-1]
			if sameDay(anchorDay(chunk, loc), anchorDay(prev, loc)) {
				merged[len(merged)-1] = append(prev, chunk...)
				continue
			}
		}

		merged = append(merged, chunk)
	}
	return merged
}

func anchorDay(chunk []domain.Asset, loc *time.Location) time.Time {
	oldest := chunk[len(chunk)-1]
	return time.UnixMilli(oldest.CreationMillis()).In(loc)
}

// materialize turns a surviving chunk into a Cluster. The id is derived from
// the chunk's position and its oldest asset's id, which keeps it stable
// within one reload.
func materialize(idx int, chunk []domain.Asset, loc *time.Location) domain.Cluster {
	oldest := chunk[len(chunk)-1]
	newest := chunk[0]

	startMs := oldest.CreationMillis()
	endMs := newest.CreationMillis()

	ids := make([]string, len(chunk))
	for i, a := range chunk {
		ids[i] = a.ID
	}

	return domain.Cluster{
		ID:          fmt.Sprintf("time_%d_%s", idx, oldest.ID),
		Kind:        domain.KindTime,
		Title:       DateRangeTitle(startMs, endMs, loc),
		Subtitle:    clockRange(startMs, endMs, loc),
		CoverURI:    newest.URI,
		Count:       len(chunk),
		StartTimeMs: startMs,
		EndTimeMs:   endMs,
		AssetIDs:    ids,
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
