package medialib

import (
	"context"
	"database/sql"
	"errors"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/zerr"
)

// The library doubles as the permission subsystem: the grant state lives in
// the database next to the assets it guards. There is no OS dialog here, so
// Request grants full access directly and the picker edits the grant table.

// Status implements ports.PermissionGate.
func (l *Library) Status(ctx context.Context) (domain.PermissionStatus, error) {
	return l.permissionState(ctx)
}

// Request implements ports.PermissionGate.
func (l *Library) Request(ctx context.Context) (domain.PermissionStatus, error) {
	state, err := l.permissionState(ctx)
	if err != nil {
		return "", err
	}
	if state == domain.PermissionDenied {
		// Once denied, the user has to change the state deliberately, the
		// same way a platform sends them to the settings screen.
		return state, nil
	}
	if err := l.SetPermission(ctx, domain.PermissionFull); err != nil {
		return "", err
	}
	return domain.PermissionFull, nil
}

// PresentPicker implements ports.PermissionGate. It switches the library to
// limited access and adds the given assets to the granted subset.
func (l *Library) PresentPicker(ctx context.Context, assetIDs []string) error {
	if err := l.SetPermission(ctx, domain.PermissionLimited); err != nil {
		return err
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO grants (asset_id) VALUES (?)")
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = stmt.Close() }()

	for _, id := range assetIDs {
		if _, err := stmt.ExecContext(ctx, id); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error()), "asset", id)
		}
	}
	return tx.Commit()
}

// SetPermission writes the grant state. Moving away from limited access
// clears the picked subset so a later picker session starts fresh.
func (l *Library) SetPermission(ctx context.Context, state domain.PermissionStatus) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO permission (id, state) VALUES (1, ?)", string(state)); err != nil {
		return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	if state != domain.PermissionLimited {
		if _, err := tx.ExecContext(ctx, "DELETE FROM grants"); err != nil {
			return zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
		}
	}
	return tx.Commit()
}

func (l *Library) permissionState(ctx context.Context) (domain.PermissionStatus, error) {
	var state string
	err := l.db.QueryRowContext(ctx, "SELECT state FROM permission WHERE id = 1").Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PermissionNotDetermined, nil
	}
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	return domain.PermissionStatus(state), nil
}
