// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/lume/internal/core/domain"
)

// AssetSource is the host platform's media layer: paged enumeration of photo
// assets sorted newest-first by creation time, plus range- and album-scoped
// queries where supported.
//
// Cursors are opaque; an empty cursor starts from the first page. Pagination
// within one reload is strictly sequential, so implementations do not need to
// tolerate concurrent cursors over the same listing.
//
//go:generate mockgen -source=asset_source.go -destination=mocks/mock_asset_source.go -package=mocks
type AssetSource interface {
	// ListRecentPhotos returns one page of accessible photos, newest first.
	ListRecentPhotos(ctx context.Context, pageSize int, cursor string) (domain.AssetPage, error)

	// ListPhotosInRange returns one page of accessible photos whose
	// normalized creation time falls within [startMs, endMs], newest first.
	ListPhotosInRange(ctx context.Context, startMs, endMs int64, pageSize int, cursor string) (domain.AssetPage, error)

	// ListPhotosInAlbum returns one page of accessible photos scoped to the
	// given album, newest first.
	ListPhotosInAlbum(ctx context.Context, albumID string, pageSize int, cursor string) (domain.AssetPage, error)

	// ListCoarseGroups returns the platform's pre-computed time/place photo
	// groupings. Empty on platforms without the capability.
	ListCoarseGroups(ctx context.Context) ([]domain.CoarseGroup, error)

	// Capabilities reports which optional queries this source supports.
	Capabilities() domain.SourceCapabilities
}
