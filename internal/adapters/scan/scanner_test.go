package scan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lume/internal/adapters/scan"
	"go.trai.ch/lume/internal/core/domain"
)

type captureImporter struct {
	batches [][]domain.Asset
	err     error
}

func (c *captureImporter) AddAssets(_ context.Context, assets []domain.Asset) error {
	if c.err != nil {
		return c.err
	}
	batch := make([]domain.Asset, len(assets))
	copy(batch, assets)
	c.batches = append(c.batches, batch)
	return nil
}

func (c *captureImporter) all() []domain.Asset {
	var out []domain.Asset
	for _, b := range c.batches {
		out = append(out, b...)
	}
	return out
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func writeFile(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestScanner_ImportsOnlyImages(t *testing.T) {
	dir := t.TempDir()
	taken := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	writeFile(t, dir, "trip/beach.JPG", taken)
	writeFile(t, dir, "trip/video.mp4", taken)
	writeFile(t, dir, "notes.txt", taken)
	writeFile(t, dir, "portrait.heic", taken)

	importer := &captureImporter{}
	n, err := scan.NewScanner(importer, nopLogger{}).Scan(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assets := importer.all()
	require.Len(t, assets, 2)
	for _, a := range assets {
		assert.Len(t, a.ID, 16)
		assert.True(t, filepath.IsAbs(a.URI[len("file://"):]))
		assert.Equal(t, taken.UnixMilli(), a.CreationTime)
	}
}

func TestScanner_StableIDsAcrossRescans(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", time.Now())

	first := &captureImporter{}
	_, err := scan.NewScanner(first, nopLogger{}).Scan(context.Background(), dir)
	require.NoError(t, err)

	second := &captureImporter{}
	_, err = scan.NewScanner(second, nopLogger{}).Scan(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, first.all()[0].ID, second.all()[0].ID)
}

func TestScanner_PropagatesImporterError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", time.Now())

	importer := &captureImporter{err: errors.New("disk full")}
	_, err := scan.NewScanner(importer, nopLogger{}).Scan(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrScanFailed.Error())
}

func TestScanner_EmptyTree(t *testing.T) {
	importer := &captureImporter{}
	n, err := scan.NewScanner(importer, nopLogger{}).Scan(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, importer.batches)
}
