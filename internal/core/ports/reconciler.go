package ports

import (
	"context"

	"go.trai.ch/lume/internal/core/domain"
)

// MomentReconciler maps platform coarse groups onto the actually accessible
// photo set, producing moment clusters sorted by start time descending.
//
// The second return value holds photo lists the strategy already materialized
// as a side effect (the working-set filter strategy produces them, the
// range-query strategy does not); the caller seeds the cluster photo cache
// with them. Reconciliation is idempotent: re-running it against an unchanged
// working set and moment list yields identical cluster metadata.
//
//go:generate mockgen -source=reconciler.go -destination=mocks/mock_reconciler.go -package=mocks
type MomentReconciler interface {
	ReconcileMoments(ctx context.Context, workingSet []domain.Asset) ([]domain.Cluster, map[string][]domain.Asset, error)
}
