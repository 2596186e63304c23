// Package catalog owns the per-session cluster catalog: reload
// orchestration, the cluster photo cache, and the loading/error status
// exposed to the presentation layer.
package catalog

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/lume/internal/engine/cluster"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Store holds the session state of the clustering engine. It is constructed
// explicitly and passed by handle; there is no ambient global. A reload
// rebuilds the whole catalog and photo cache atomically; nothing is mutated
// in place after construction.
//
// Overlapping reloads are last-write-wins: a stale reload finishing after a
// newer one overwrites it. Callers wanting stricter behavior serialize their
// reload triggers.
type Store struct {
	source     ports.AssetSource
	gate       ports.PermissionGate
	reconciler ports.MomentReconciler
	logger     ports.Logger
	opts       domain.Options

	mu       sync.RWMutex
	clusters []domain.Cluster
	photos   map[string][]domain.Asset
	loading  bool
	lastErr  error

	// flight collapses concurrent lazy loads for the same cluster into one
	// fetch. The cooperative check-then-fetch of the original design is not
	// safe under real parallelism, so the claim is made atomic per key.
	flight singleflight.Group
}

// NewStore creates a Store over the given collaborators.
func NewStore(
	source ports.AssetSource,
	gate ports.PermissionGate,
	reconciler ports.MomentReconciler,
	logger ports.Logger,
	opts domain.Options,
) *Store {
	return &Store{
		source:     source,
		gate:       gate,
		reconciler: reconciler,
		logger:     logger,
		opts:       opts,
		photos:     map[string][]domain.Asset{},
	}
}

// Reload rebuilds the catalog from scratch: permission check, paged working
// set fetch, time clustering, moment reconciliation, cache seeding. On
// failure the previous catalog is left untouched. A denied or undetermined
// grant yields an empty catalog and ErrPermissionDenied so the caller can
// show grant instructions; it is not a clustering failure.
func (s *Store) Reload(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	status, err := s.gate.Status(ctx)
	if err != nil {
		return s.fail(zerr.Wrap(err, "failed to read permission state"))
	}
	if !status.Granted() {
		s.replace(nil, map[string][]domain.Asset{})
		return zerr.With(domain.ErrPermissionDenied, "status", string(status))
	}

	workingSet, err := s.fetchWorkingSet(ctx)
	if err != nil {
		return s.fail(errors.Join(domain.ErrFetchFailed, err))
	}

	momentClusters, prefetched, err := s.reconciler.ReconcileMoments(ctx, workingSet)
	if err != nil {
		return s.fail(zerr.Wrap(err, "moment reconciliation failed"))
	}

	timeClusters := cluster.ByTime(workingSet, cluster.Config{
		TimeGapMinutes: s.opts.TimeGapMinutes,
		MinClusterSize: s.opts.MinClusterSize,
		Location:       s.opts.DayLocation(),
	})

	// Time clusters are always cacheable from the working set they were
	// built from; moment lists come along only when the strategy already
	// materialized them.
	photos := make(map[string][]domain.Asset, len(timeClusters)+len(prefetched))
	byID := make(map[string]domain.Asset, len(workingSet))
	for _, a := range workingSet {
		byID[a.ID] = a
	}
	for _, c := range timeClusters {
		list := make([]domain.Asset, 0, len(c.AssetIDs))
		for _, id := range c.AssetIDs {
			if a, ok := byID[id]; ok {
				list = append(list, a)
			}
		}
		photos[c.ID] = list
	}
	for id, list := range prefetched {
		photos[id] = list
	}

	// Moments first, then time clusters.
	combined := make([]domain.Cluster, 0, len(momentClusters)+len(timeClusters))
	combined = append(combined, momentClusters...)
	combined = append(combined, timeClusters...)

	s.replace(combined, photos)
	return nil
}

// Clusters returns the current catalog, moments first.
func (s *Store) Clusters() []domain.Cluster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Cluster, len(s.clusters))
	copy(out, s.clusters)
	return out
}

// Status reports whether a reload is in flight and the last reload error.
func (s *Store) Status() (loading bool, lastErr error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading, s.lastErr
}

// Photos returns the ordered photo list for a cluster, fetching and caching
// it on first access for moment clusters that were not prefetched. An
// unknown cluster id leaves the cache unchanged. A cached empty list is a
// valid value and is never re-fetched within the session.
func (s *Store) Photos(ctx context.Context, clusterID string) ([]domain.Asset, error) {
	s.mu.RLock()
	cached, ok := s.photos[clusterID]
	cl, known := s.findLocked(clusterID)
	s.mu.RUnlock()

	if ok {
		return cloneAssets(cached), nil
	}
	if !known {
		return nil, zerr.With(domain.ErrUnknownCluster, "cluster", clusterID)
	}
	if cl.Kind == domain.KindTime {
		// Time clusters are seeded at reload; a miss means the catalog and
		// cache are out of sync.
		return nil, zerr.With(domain.ErrClusterNotPopulated, "cluster", clusterID)
	}

	v, err, _ := s.flight.Do(clusterID, func() (any, error) {
		// A concurrent caller may have filled the entry already.
		s.mu.RLock()
		existing, filled := s.photos[clusterID]
		s.mu.RUnlock()
		if filled {
			return existing, nil
		}

		assets, err := s.fetchMomentPhotos(ctx, cl)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.photos[clusterID] = assets
		s.mu.Unlock()
		return assets, nil
	})
	if err != nil {
		return nil, err
	}
	assets, _ := v.([]domain.Asset)
	return cloneAssets(assets), nil
}

// fetchWorkingSet pages the source sequentially until the working-set cap or
// the end of the library, whichever comes first.
func (s *Store) fetchWorkingSet(ctx context.Context) ([]domain.Asset, error) {
	var all []domain.Asset
	cursor := ""
	for len(all) < s.opts.MaxWorkingSet {
		pageSize := min(s.opts.PageSize, s.opts.MaxWorkingSet-len(all))
		page, err := s.source.ListRecentPhotos(ctx, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Assets...)
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	return all, nil
}

// fetchMomentPhotos loads a moment's full photo list, preferring the padded
// time range over the album scope. Loading by time range keeps limited
// grants honest; the album fallback only applies when no bounds exist.
func (s *Store) fetchMomentPhotos(ctx context.Context, cl domain.Cluster) ([]domain.Asset, error) {
	if !cl.HasTimeBounds() {
		if cl.AlbumID == "" {
			return []domain.Asset{}, nil
		}
		return s.pageAll(ctx, func(ctx context.Context, pageSize int, cursor string) (domain.AssetPage, error) {
			return s.source.ListPhotosInAlbum(ctx, cl.AlbumID, pageSize, cursor)
		})
	}

	startMs := cl.StartTimeMs - s.opts.PaddingMillis()
	if startMs < 0 {
		startMs = 0
	}
	endMs := cl.EndTimeMs + s.opts.PaddingMillis()
	return s.pageAll(ctx, func(ctx context.Context, pageSize int, cursor string) (domain.AssetPage, error) {
		return s.source.ListPhotosInRange(ctx, startMs, endMs, pageSize, cursor)
	})
}

func (s *Store) pageAll(ctx context.Context, fetch func(ctx context.Context, pageSize int, cursor string) (domain.AssetPage, error)) ([]domain.Asset, error) {
	assets := []domain.Asset{}
	cursor := ""
	for len(assets) < s.opts.MaxWorkingSet {
		pageSize := min(s.opts.PageSize, s.opts.MaxWorkingSet-len(assets))
		page, err := fetch(ctx, pageSize, cursor)
		if err != nil {
			return nil, errors.Join(domain.ErrFetchFailed, err)
		}
		assets = append(assets, page.Assets...)
		if !page.HasMore {
			break
		}
		cursor = page.NextCursor
	}
	return assets, nil
}

func (s *Store) replace(clusters []domain.Cluster, photos map[string][]domain.Asset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clusters = clusters
	s.photos = photos
	s.lastErr = nil
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) findLocked(clusterID string) (domain.Cluster, bool) {
	for _, c := range s.clusters {
		if c.ID == clusterID {
			return c, true
		}
	}
	return domain.Cluster{}, false
}

func cloneAssets(assets []domain.Asset) []domain.Asset {
	out := make([]domain.Asset, len(assets))
	copy(out, assets)
	return out
}
