package medialib

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/zerr"
)

// Capabilities implements ports.AssetSource. The library supports both
// coarse groups and direct range queries, so moment reconciliation uses the
// range-query strategy against it.
func (l *Library) Capabilities() domain.SourceCapabilities {
	return domain.SourceCapabilities{CoarseGroups: true, RangeQueries: true}
}

// ListRecentPhotos implements ports.AssetSource.
func (l *Library) ListRecentPhotos(ctx context.Context, pageSize int, cursor string) (domain.AssetPage, error) {
	return l.listPhotos(ctx, "1=1", nil, pageSize, cursor)
}

// ListPhotosInRange implements ports.AssetSource. Bounds are inclusive and
// compare against the normalized creation time.
func (l *Library) ListPhotosInRange(ctx context.Context, startMs, endMs int64, pageSize int, cursor string) (domain.AssetPage, error) {
	where := normalizedTime + " >= ? AND " + normalizedTime + " <= ?"
	return l.listPhotos(ctx, where, []any{startMs, endMs}, pageSize, cursor)
}

// ListPhotosInAlbum implements ports.AssetSource. Albums map to moments
// here, and a moment's members are the photos inside its time span.
func (l *Library) ListPhotosInAlbum(ctx context.Context, albumID string, pageSize int, cursor string) (domain.AssetPage, error) {
	var rawStart, rawEnd int64
	err := l.db.QueryRowContext(ctx,
		"SELECT start_time, end_time FROM moments WHERE id = ?", albumID).
		Scan(&rawStart, &rawEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AssetPage{Assets: []domain.Asset{}}, nil
	}
	if err != nil {
		return domain.AssetPage{}, zerr.With(zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error()), "album", albumID)
	}

	return l.ListPhotosInRange(ctx,
		domain.ToMillisMaybeSeconds(rawStart),
		domain.ToMillisMaybeSeconds(rawEnd),
		pageSize, cursor)
}

// ListCoarseGroups implements ports.AssetSource.
func (l *Library) ListCoarseGroups(ctx context.Context) ([]domain.CoarseGroup, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT id, start_time, end_time, location_name, reported_count FROM moments ORDER BY start_time DESC, id")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	var groups []domain.CoarseGroup
	for rows.Next() {
		var g domain.CoarseGroup
		var location string
		if err := rows.Scan(&g.ID, &g.StartTime, &g.EndTime, &location, &g.ReportedCount); err != nil {
			return nil, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
		}
		if location != "" {
			g.LocationNames = []string{location}
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	return groups, nil
}

// listPhotos runs a filtered, offset-paged asset query. A limited grant
// restricts every listing to the picked subset; denied or undetermined
// grants surface ErrPermissionDenied rather than an empty page.
func (l *Library) listPhotos(ctx context.Context, where string, args []any, pageSize int, cursor string) (domain.AssetPage, error) {
	state, err := l.permissionState(ctx)
	if err != nil {
		return domain.AssetPage{}, err
	}
	if !state.Granted() {
		return domain.AssetPage{}, zerr.With(domain.ErrPermissionDenied, "status", string(state))
	}
	if state == domain.PermissionLimited {
		where += " AND id IN (SELECT asset_id FROM grants)"
	}

	offset := 0
	if cursor != "" {
		offset, err = strconv.Atoi(cursor)
		if err != nil {
			return domain.AssetPage{}, zerr.With(domain.ErrLibraryQueryFailed, "cursor", cursor)
		}
	}
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM assets WHERE " + where
	if err := l.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return domain.AssetPage{}, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}

	query := fmt.Sprintf(
		"SELECT id, uri, creation_time FROM assets WHERE %s ORDER BY %s DESC, id DESC LIMIT ? OFFSET ?",
		where, normalizedTime)
	rows, err := l.db.QueryContext(ctx, query, append(args, pageSize, offset)...)
	if err != nil {
		return domain.AssetPage{}, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}
	defer func() { _ = rows.Close() }()

	assets := []domain.Asset{}
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.URI, &a.CreationTime); err != nil {
			return domain.AssetPage{}, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return domain.AssetPage{}, zerr.Wrap(err, domain.ErrLibraryQueryFailed.Error())
	}

	next := offset + len(assets)
	return domain.AssetPage{
		Assets:       assets,
		NextCursor:   strconv.Itoa(next),
		HasMore:      next < total,
		TotalMatched: total,
	}, nil
}
