// Package scan imports photos from a directory tree into the media library.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/lume/internal/core/domain"
	"go.trai.ch/lume/internal/core/ports"
	"go.trai.ch/zerr"
)

// imageExts are the file extensions treated as photos.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".heic": true,
	".webp": true,
	".tiff": true,
	".bmp":  true,
}

const importBatchSize = 500

// Importer receives scanned assets, typically the media library.
type Importer interface {
	AddAssets(ctx context.Context, assets []domain.Asset) error
}

// Scanner walks a directory tree and registers every image it finds as a
// library asset. Asset ids hash the path relative to the scan root, so
// rescanning the same tree updates assets in place instead of duplicating
// them.
type Scanner struct {
	importer Importer
	logger   ports.Logger
}

// NewScanner creates a Scanner that feeds the given importer.
func NewScanner(importer Importer, logger ports.Logger) *Scanner {
	return &Scanner{importer: importer, logger: logger}
}

// Scan walks root and imports every image file found. It returns the number
// of imported assets.
func (s *Scanner) Scan(ctx context.Context, root string) (int, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "root", root)
	}

	total := 0
	batch := make([]domain.Asset, 0, importBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.importer.AddAssets(ctx, batch); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		batch = append(batch, domain.Asset{
			ID:           assetID(rel),
			URI:          "file://" + path,
			CreationTime: info.ModTime().UnixMilli(),
		})
		if len(batch) >= importBatchSize {
			return flush()
		}
		return nil
	})
	if walkErr != nil {
		return total, zerr.With(zerr.Wrap(walkErr, domain.ErrScanFailed.Error()), "root", root)
	}

	if err := flush(); err != nil {
		return total, zerr.With(zerr.Wrap(err, domain.ErrScanFailed.Error()), "root", root)
	}

	s.logger.Info(fmt.Sprintf("Imported %d photos from %s", total, root))
	return total, nil
}

// assetID derives a stable id from the slash-normalized relative path.
func assetID(rel string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(filepath.ToSlash(rel)))
}
