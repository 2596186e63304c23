package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports/mocks"
	"go.trai.ch/lume/internal/engine/reconcile"
	"go.uber.org/mock/gomock"
)

func utcOptions() domain.Options {
	o := domain.DefaultOptions()
	o.Location = time.UTC
	return o
}

func TestRangeQuery_PadsQueryBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	group := domain.CoarseGroup{ID: "m1", StartTime: 1_700_000_000_000, EndTime: 1_700_000_600_000}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return([]domain.CoarseGroup{group}, nil)

	// Padding defaults to 2 minutes on each side.
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), int64(1_699_999_880_000), int64(1_700_000_720_000), 1, "").
		Return(domain.AssetPage{
			Assets:       []domain.Asset{{ID: "p1", URI: "file:///p1.jpg", CreationTime: 1_700_000_100_000}},
			TotalMatched: 7,
		}, nil)

	r := reconcile.NewRangeQuery(source, utcOptions())
	clusters, prefetched, err := r.ReconcileMoments(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, prefetched, "range strategy does not prefetch photo lists")
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Equal(t, "moment_m1", c.ID)
	assert.Equal(t, domain.KindMoment, c.Kind)
	assert.Equal(t, 7, c.Count, "count comes from the query, not the platform estimate")
	assert.Equal(t, "file:///p1.jpg", c.CoverURI)
	assert.Equal(t, "m1", c.AlbumID)
	assert.Equal(t, int64(1_700_000_000_000), c.StartTimeMs)
	assert.Equal(t, int64(1_700_000_600_000), c.EndTimeMs)
}

func TestRangeQuery_DropsMomentsWithNoAccessiblePhotos(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	groups := []domain.CoarseGroup{
		{ID: "empty", StartTime: 1_700_000_000_000, EndTime: 1_700_000_100_000, ReportedCount: 40},
		{ID: "full", StartTime: 1_700_100_000_000, EndTime: 1_700_100_100_000},
	}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return(groups, nil)

	// The platform claims 40 photos, but none are accessible under the
	// current grant: the moment must not be surfaced.
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(domain.AssetPage{TotalMatched: 0}, nil)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(domain.AssetPage{
			Assets:       []domain.Asset{{ID: "p", URI: "file:///p.jpg"}},
			TotalMatched: 2,
		}, nil)

	r := reconcile.NewRangeQuery(source, utcOptions())
	clusters, _, err := r.ReconcileMoments(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, "moment_full", clusters[0].ID)
}

func TestRangeQuery_PlaceNameTitling(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	start := time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC).UnixMilli()
	end := time.Date(2024, 5, 4, 14, 0, 0, 0, time.UTC).UnixMilli()
	groups := []domain.CoarseGroup{
		{ID: "named", StartTime: start, EndTime: end, LocationNames: []string{"Lisbon", "Alfama"}},
		{ID: "anon", StartTime: start, EndTime: end},
	}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return(groups, nil)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(domain.AssetPage{
			Assets:       []domain.Asset{{ID: "p", URI: "file:///p.jpg"}},
			TotalMatched: 1,
		}, nil).
		Times(2)

	r := reconcile.NewRangeQuery(source, utcOptions())
	clusters, _, err := r.ReconcileMoments(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, clusters, 2)

	byID := map[string]domain.Cluster{}
	for _, c := range clusters {
		byID[c.ID] = c
	}

	named := byID["moment_named"]
	assert.Equal(t, "Lisbon", named.Title, "first place name wins")
	assert.Equal(t, "May 4, 2024", named.Subtitle)

	anon := byID["moment_anon"]
	assert.Equal(t, "May 4, 2024", anon.Title)
	assert.Empty(t, anon.Subtitle)
}

func TestRangeQuery_SortsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	groups := []domain.CoarseGroup{
		{ID: "old", StartTime: 1_700_000_000_000, EndTime: 1_700_000_100_000},
		{ID: "new", StartTime: 1_700_900_000_000, EndTime: 1_700_900_100_000},
		{ID: "mid", StartTime: 1_700_500_000_000, EndTime: 1_700_500_100_000},
	}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return(groups, nil)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(domain.AssetPage{
			Assets:       []domain.Asset{{ID: "p", URI: "file:///p.jpg"}},
			TotalMatched: 1,
		}, nil).
		Times(3)

	r := reconcile.NewRangeQuery(source, utcOptions())
	clusters, _, err := r.ReconcileMoments(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, clusters, 3)
	assert.Equal(t, "moment_new", clusters[0].ID)
	assert.Equal(t, "moment_mid", clusters[1].ID)
	assert.Equal(t, "moment_old", clusters[2].ID)
}

func TestRangeQuery_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	group := domain.CoarseGroup{ID: "m", StartTime: 1_700_000_000_000, EndTime: 1_700_000_100_000}
	page := domain.AssetPage{
		Assets:       []domain.Asset{{ID: "p", URI: "file:///p.jpg"}},
		TotalMatched: 3,
	}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return([]domain.CoarseGroup{group}, nil).Times(2)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(page, nil).
		Times(2)

	r := reconcile.NewRangeQuery(source, utcOptions())
	first, _, err := r.ReconcileMoments(context.Background(), nil)
	require.NoError(t, err)
	second, _, err := r.ReconcileMoments(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRangeQuery_QueryErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	source.EXPECT().ListCoarseGroups(gomock.Any()).
		Return([]domain.CoarseGroup{{ID: "m", StartTime: 1, EndTime: 2}}, nil)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), gomock.Any(), gomock.Any(), 1, "").
		Return(domain.AssetPage{}, errors.New("platform unavailable"))

	r := reconcile.NewRangeQuery(source, utcOptions())
	_, _, err := r.ReconcileMoments(context.Background(), nil)

	require.Error(t, err)
}

func TestRangeQuery_ClampsQueryStartAtZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)

	// A moment right after the epoch: padding must not produce a negative
	// query bound. StartTime 60 is second-scale and normalizes to 60000ms,
	// which is less than the 2 minute padding.
	group := domain.CoarseGroup{ID: "m", StartTime: 60, EndTime: 120}
	source.EXPECT().ListCoarseGroups(gomock.Any()).Return([]domain.CoarseGroup{group}, nil)
	source.EXPECT().
		ListPhotosInRange(gomock.Any(), int64(0), int64(240_000), 1, "").
		Return(domain.AssetPage{TotalMatched: 0}, nil)

	r := reconcile.NewRangeQuery(source, utcOptions())
	_, _, err := r.ReconcileMoments(context.Background(), nil)
	require.NoError(t, err)
}
