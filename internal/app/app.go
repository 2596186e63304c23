// Package app implements the application layer for lume.
package app

import (
	"context"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/zerr"
)

// Catalog is the cluster catalog consumed by the CLI layer.
type Catalog interface {
	Reload(ctx context.Context) error
	Clusters() []domain.Cluster
	Photos(ctx context.Context, clusterID string) ([]domain.Asset, error)
	Status() (loading bool, lastErr error)
}

// LibraryScanner imports photos from a directory tree.
type LibraryScanner interface {
	Scan(ctx context.Context, root string) (int, error)
}

// MomentImporter imports coarse groups from a manifest file.
type MomentImporter interface {
	ImportMoments(ctx context.Context, path string) (int, error)
}

// PermissionAdmin extends the permission gate with the explicit state
// transitions the CLI exposes.
type PermissionAdmin interface {
	ports.PermissionGate
	SetPermission(ctx context.Context, state domain.PermissionStatus) error
}

// GrantMode is a permission change requested through the CLI.
type GrantMode string

const (
	GrantFull    GrantMode = "full"
	GrantLimited GrantMode = "limited"
	GrantDeny    GrantMode = "deny"
)

// App represents the main application logic.
type App struct {
	catalog Catalog
	perms   PermissionAdmin
	scanner LibraryScanner
	moments MomentImporter
	logger  ports.Logger
}

// New creates a new App instance.
func New(
	catalog Catalog,
	perms PermissionAdmin,
	scanner LibraryScanner,
	moments MomentImporter,
	log ports.Logger,
) *App {
	return &App{
		catalog: catalog,
		perms:   perms,
		scanner: scanner,
		moments: moments,
		logger:  log,
	}
}

// Clusters rebuilds the catalog from the library and returns it, moments
// first. A reload failure keeps the previous catalog; the error is returned
// alongside whatever the store last held so callers can decide whether stale
// data is acceptable.
func (a *App) Clusters(ctx context.Context) ([]domain.Cluster, error) {
	if err := a.catalog.Reload(ctx); err != nil {
		return a.catalog.Clusters(), err
	}
	return a.catalog.Clusters(), nil
}

// Cluster returns a single cluster from the catalog by id, building the
// catalog first when necessary.
func (a *App) Cluster(ctx context.Context, clusterID string) (domain.Cluster, error) {
	if len(a.catalog.Clusters()) == 0 {
		if err := a.catalog.Reload(ctx); err != nil {
			return domain.Cluster{}, err
		}
	}
	for _, cl := range a.catalog.Clusters() {
		if cl.ID == clusterID {
			return cl, nil
		}
	}
	return domain.Cluster{}, zerr.With(domain.ErrUnknownCluster, "cluster", clusterID)
}

// Photos returns the members of a cluster, loading moment photos on demand.
// The catalog is built first when no reload has happened yet.
func (a *App) Photos(ctx context.Context, clusterID string) ([]domain.Asset, error) {
	if len(a.catalog.Clusters()) == 0 {
		if err := a.catalog.Reload(ctx); err != nil {
			return nil, err
		}
	}
	return a.catalog.Photos(ctx, clusterID)
}

// Index scans a directory tree into the library and returns the number of
// imported photos.
func (a *App) Index(ctx context.Context, root string) (int, error) {
	return a.scanner.Scan(ctx, root)
}

// ImportMoments loads a moment manifest into the library.
func (a *App) ImportMoments(ctx context.Context, path string) (int, error) {
	return a.moments.ImportMoments(ctx, path)
}

// Grant applies a permission change and returns the resulting status.
func (a *App) Grant(ctx context.Context, mode GrantMode, assetIDs []string) (domain.PermissionStatus, error) {
	switch mode {
	case GrantFull:
		// The command is the user's deliberate settings change, so it
		// overrides a previous denial, unlike a programmatic Request.
		if err := a.perms.SetPermission(ctx, domain.PermissionFull); err != nil {
			return "", err
		}
		return domain.PermissionFull, nil
	case GrantLimited:
		if err := a.perms.PresentPicker(ctx, assetIDs); err != nil {
			return "", err
		}
		return a.perms.Status(ctx)
	case GrantDeny:
		if err := a.perms.SetPermission(ctx, domain.PermissionDenied); err != nil {
			return "", err
		}
		return domain.PermissionDenied, nil
	default:
		return "", zerr.With(zerr.New("unknown grant mode"), "mode", string(mode))
	}
}

// PermissionStatus reports the current library grant.
func (a *App) PermissionStatus(ctx context.Context) (domain.PermissionStatus, error) {
	return a.perms.Status(ctx)
}
