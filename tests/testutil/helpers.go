// Package testutil holds helpers shared by the integration and e2e
// suites.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot resolves the module root from a suite package two levels
// below it, so tests can reach fixtures/ and run the cmd/ binary.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
