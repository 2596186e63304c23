package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeMomentManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moments.yaml")
	content := "moments:\n  - id: trip\n    startTime: 1700000000000\n    endTime: 1700000100000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
