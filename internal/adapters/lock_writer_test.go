package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uv-mirror/internal/types"
)

func sampleLock() types.Lockfile {
	return types.Lockfile{
		Version:        1,
		RequiresPython: ">=3.10",
		Packages: []types.Package{
			{
				Name:    "b",
				Version: "1.0.0",
				Source:  types.Source{Registry: "https://pypi.org/simple"},
			},
			{
				Name:    "a",
				Version: "2.0.0",
				Source:  types.Source{Registry: "https://pypi.org/simple"},
				Dependencies: []types.Dependency{
					{Name: "b"},
				},
			},
		},
	}
}

func TestSerializeMinimalDocument(t *testing.T) {
	out, err := NewLockWriterAdapter().Serialize(sampleLock())
	require.NoError(t, err)

	expected := `version = 1
requires-python = ">=3.10"

[[package]]
name = "b"
version = "1.0.0"
source = { registry = "https://pypi.org/simple" }

[[package]]
name = "a"
version = "2.0.0"
source = { registry = "https://pypi.org/simple" }
dependencies = [
    { name = "b" },
]
`
	assert.Equal(t, expected, string(out))
}

func TestSerializePreservesPackageOrder(t *testing.T) {
	out, err := NewLockWriterAdapter().Serialize(sampleLock())
	require.NoError(t, err)
	// "b" was resolved before "a"; serialization must not re-sort.
	assert.Less(t,
		strings.Index(string(out), `name = "b"`),
		strings.Index(string(out), `name = "a"`))
}

func TestSerializeParseRoundTrip(t *testing.T) {
	lock := types.Lockfile{
		Version:        1,
		Revision:       3,
		RequiresPython: ">=3.11,<3.14",
		Packages: []types.Package{
			{
				Name:    "colorama",
				Version: "0.4.6",
				Source:  types.Source{Registry: "https://pypi.org/simple"},
				Sdist: &types.Artifact{
					URL:  "https://files.pythonhosted.org/packages/d8/53/colorama-0.4.6.tar.gz",
					Hash: "sha256:08695f5cb7ed6e0531a20572697297273c47b8cae5a63ffc6d6ed5c201be6e44",
					Size: 27697,
				},
				Wheels: []types.Artifact{
					{
						URL:  "https://files.pythonhosted.org/packages/d1/d6/colorama-0.4.6-py2.py3-none-any.whl",
						Hash: "sha256:4f1d9991f5acc0ca119f9d443620b77f9d6b33703e51011c16baf57afb285fc6",
						Size: 25335,
					},
				},
			},
			{
				Name:    "demo",
				Version: "0.1.0",
				Source:  types.Source{Editable: "."},
				Dependencies: []types.Dependency{
					{Name: "colorama", Marker: "sys_platform == 'win32'"},
				},
			},
		},
	}

	data, err := NewLockWriterAdapter().Serialize(lock)
	require.NoError(t, err)
	parsed, err := NewLockFileAdapter().Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(lock, parsed); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeCanonicalFixtureIsIdempotent(t *testing.T) {
	original, err := os.ReadFile("../../fixtures/uv.lock")
	require.NoError(t, err)
	lock, err := NewLockFileAdapter().Parse(original)
	require.NoError(t, err)
	out, err := NewLockWriterAdapter().Serialize(lock)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(out))
}

func TestSerializeEscapesStrings(t *testing.T) {
	lock := sampleLock()
	lock.Packages[1].Dependencies[0].Marker = `sys_platform == "win32"`
	data, err := NewLockWriterAdapter().Serialize(lock)
	require.NoError(t, err)
	assert.Contains(t, string(data), `marker = "sys_platform == \"win32\""`)

	parsed, err := NewLockFileAdapter().Parse(data)
	require.NoError(t, err)
	assert.Equal(t, `sys_platform == "win32"`, parsed.Packages[1].Dependencies[0].Marker)
}

func TestSerializeRequiresSourceOrigin(t *testing.T) {
	lock := sampleLock()
	lock.Packages[0].Source = types.Source{}
	_, err := NewLockWriterAdapter().Serialize(lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one source origin")
}

func TestWriteLockfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uv.lock")
	writer := NewLockWriterAdapter()
	require.NoError(t, writer.Write(path, sampleLock()))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := writer.Serialize(sampleLock())
	require.NoError(t, err)
	assert.Equal(t, expected, written)
}
