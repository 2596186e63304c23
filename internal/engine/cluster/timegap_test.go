package cluster_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/engine/cluster"
)

func asset(id string, ms int64) domain.Asset {
	return domain.Asset{ID: id, URI: "file:///" + id + ".jpg", CreationTime: ms}
}

// assetsAt builds one asset per timestamp with ids a0, a1, ...
func assetsAt(ms ...int64) []domain.Asset {
	out := make([]domain.Asset, len(ms))
	for i, t := range ms {
		out[i] = asset(fmt.Sprintf("a%d", i), t)
	}
	return out
}

func utcConfig(gapMinutes, minSize int) cluster.Config {
	return cluster.Config{
		TimeGapMinutes: gapMinutes,
		MinClusterSize: minSize,
		Location:       time.UTC,
	}
}

func TestByTime_EmptyInput(t *testing.T) {
	got := cluster.ByTime(nil, utcConfig(60, 3))
	assert.Empty(t, got)
}

func TestByTime_SingleAsset(t *testing.T) {
	got := cluster.ByTime(assetsAt(1_700_000_000_000), utcConfig(60, 3))

	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, domain.KindTime, got[0].Kind)
	assert.Equal(t, []string{"a0"}, got[0].AssetIDs)
}

func TestByTime_GapSplitsChunks(t *testing.T) {
	// Raw values 0, 1000, 7200000 with a 60 minute gap. These are
	// second-scale, so after normalization the first two are ~17 minutes
	// apart and stick together; the third is far out and starts a new chunk.
	got := cluster.ByTime(assetsAt(0, 1000, 7_200_000), utcConfig(60, 1))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 2, got[1].Count)
	assert.Equal(t, []string{"a2"}, got[0].AssetIDs)
	assert.Equal(t, []string{"a1", "a0"}, got[1].AssetIDs)
}

func TestByTime_ChainedAdjacencyExceedsGapSpan(t *testing.T) {
	// Four photos 50 minutes apart with a 60 minute gap: every adjacent
	// pair is within the threshold, so they chain into one cluster whose
	// overall span (150 min) exceeds the gap.
	const min = int64(60_000)
	base := int64(1_700_000_000_000)
	got := cluster.ByTime(assetsAt(base, base+50*min, base+100*min, base+150*min), utcConfig(60, 1))

	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Count)
}

func TestByTime_NoAssetDroppedOrDuplicated(t *testing.T) {
	// Concatenating all output chunks reconstitutes the sorted input.
	const hour = int64(3_600_000)
	base := int64(1_700_000_000_000)
	input := assetsAt(
		base, base+1000, base+2000,
		base+10*hour, base+10*hour+500,
		base+48*hour,
		base+100*hour, base+100*hour+100, base+100*hour+200, base+100*hour+300,
	)

	got := cluster.ByTime(input, utcConfig(180, 3))

	var all []string
	for _, c := range got {
		all = append(all, c.AssetIDs...)
	}
	assert.Len(t, all, len(input))

	seen := make(map[string]bool)
	for _, id := range all {
		assert.False(t, seen[id], "asset %s appears twice", id)
		seen[id] = true
	}
	for _, a := range input {
		assert.True(t, seen[a.ID], "asset %s was dropped", a.ID)
	}
}

func TestByTime_AdjacentWithinChunkRespectGap(t *testing.T) {
	const gapMinutes = 60
	base := int64(1_700_000_000_000)
	input := assetsAt(
		base, base+30*60_000, base+55*60_000, base+200*60_000,
		base+210*60_000, base+500*60_000,
	)

	got := cluster.ByTime(input, utcConfig(gapMinutes, 1))

	byID := make(map[string]domain.Asset)
	for _, a := range input {
		byID[a.ID] = a
	}

	for _, c := range got {
		for i := 1; i < len(c.AssetIDs); i++ {
			prev := byID[c.AssetIDs[i-1]].CreationMillis()
			cur := byID[c.AssetIDs[i]].CreationMillis()
			assert.LessOrEqual(t, prev-cur, int64(gapMinutes)*60_000)
		}
	}
}

func TestByTime_MergesSmallChunkIntoSameDayPredecessor(t *testing.T) {
	// Two bursts on the same UTC day, far enough apart to chunk separately.
	// The older burst has 3 photos, the newer has 1; the small one merges
	// into the preceding (newer) output chunk because both anchor days match.
	day := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	morning := day.Add(9 * time.Hour).UnixMilli()
	evening := day.Add(20 * time.Hour).UnixMilli()

	input := assetsAt(morning, morning+1000, morning+2000, evening)

	got := cluster.ByTime(input, utcConfig(60, 3))

	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Count)
	// Newest-first: the evening photo leads, the morning burst follows.
	assert.Equal(t, []string{"a3", "a2", "a1", "a0"}, got[0].AssetIDs)
}

func TestByTime_SmallChunkOnNewDayStandsAlone(t *testing.T) {
	// A lone photo on a different day is emitted as its own cluster even
	// though it is below MinClusterSize.
	day1 := time.Date(2024, 3, 14, 21, 0, 0, 0, time.UTC).UnixMilli()
	day2 := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC).UnixMilli()

	input := assetsAt(day1, day1+1000, day1+2000, day2)

	got := cluster.ByTime(input, utcConfig(60, 3))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 3, got[1].Count)
}

func TestByTime_LeadingSmallChunkSurvives(t *testing.T) {
	// The newest chunk has no preceding output chunk to merge into.
	got := cluster.ByTime(assetsAt(0, 7_200_000), utcConfig(60, 3))

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 1, got[1].Count)
}

func TestByTime_AllWithinOneWindow(t *testing.T) {
	got := cluster.ByTime(assetsAt(0, 1000, 2000), utcConfig(60, 10))

	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Count)
}

func TestByTime_NormalizesSecondScaleTimestamps(t *testing.T) {
	// One asset in seconds, one in milliseconds, 1 second apart once
	// normalized. They must land in the same cluster.
	input := []domain.Asset{
		asset("sec", 1_700_000_000),
		asset("ms", 1_700_000_001_000),
	}

	got := cluster.ByTime(input, utcConfig(60, 1))

	require.Len(t, got, 1)
	assert.Equal(t, []string{"ms", "sec"}, got[0].AssetIDs)
}

func TestByTime_ClusterMetadata(t *testing.T) {
	start := time.Date(2024, 7, 1, 10, 15, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	input := assetsAt(start.UnixMilli(), start.Add(10*time.Minute).UnixMilli(), end.UnixMilli())

	got := cluster.ByTime(input, utcConfig(60, 3))

	require.Len(t, got, 1)
	c := got[0]
	assert.Equal(t, "time_0_a0", c.ID)
	assert.Equal(t, "Jul 1, 2024", c.Title)
	assert.Equal(t, "10:15 – 10:45", c.Subtitle)
	assert.Equal(t, "file:///a2.jpg", c.CoverURI, "cover is the newest asset")
	assert.Equal(t, start.UnixMilli(), c.StartTimeMs)
	assert.Equal(t, end.UnixMilli(), c.EndTimeMs)
	assert.LessOrEqual(t, c.StartTimeMs, c.EndTimeMs)
}

func TestByTime_MultiDayTitle(t *testing.T) {
	start := time.Date(2024, 7, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 7, 2, 1, 0, 0, 0, time.UTC)

	got := cluster.ByTime(assetsAt(start.UnixMilli(), end.UnixMilli()), utcConfig(180, 1))

	require.Len(t, got, 1)
	assert.Equal(t, "Jul 1, 2024 – Jul 2, 2024", got[0].Title)
}

func TestByTime_Deterministic(t *testing.T) {
	input := assetsAt(0, 1000, 7_200_000, 7_201_000)

	first := cluster.ByTime(input, utcConfig(60, 1))
	second := cluster.ByTime(input, utcConfig(60, 1))

	assert.Equal(t, first, second)
}
