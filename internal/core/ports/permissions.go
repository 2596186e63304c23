package ports

import (
	"context"

	"go.trai.ch/lume/internal/core/domain"
)

// PermissionGate is the photo library permission subsystem.
//
//go:generate mockgen -source=permissions.go -destination=mocks/mock_permissions.go -package=mocks
type PermissionGate interface {
	// Status returns the current grant state.
	Status(ctx context.Context) (domain.PermissionStatus, error)

	// Request asks the user for library access and returns the resulting
	// state.
	Request(ctx context.Context) (domain.PermissionStatus, error)

	// PresentPicker extends a limited grant with the given assets. It is a
	// no-op on platforms without a limited-access picker.
	PresentPicker(ctx context.Context, assetIDs []string) error
}
