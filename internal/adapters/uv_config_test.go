package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seededConfig = `python-downloads = "automatic"

[[index]]
url = "https://pypi.org/simple"
default = true

[[index]]
url = "https://private.example.com/simple"
`

func TestSetDefaultIndexCreatesEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uv", "uv.toml")
	adapter := NewUVConfigAdapterAt(path)

	change, err := adapter.SetDefaultIndex("https://mirrors.example.com/pypi/simple/")
	require.NoError(t, err)
	assert.True(t, change.Changed)
	assert.Empty(t, change.Old)
	assert.Equal(t, path, change.Path)

	doc := parseConfig(t, change.New)
	entries, ok := doc["index"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	table, ok := entries[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://mirrors.example.com/pypi/simple/", table["url"])
	assert.Equal(t, true, table["default"])

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, change.New, string(written))
}

func TestSetDefaultIndexUpdatesExistingDefault(t *testing.T) {
	path := seedConfig(t)
	adapter := NewUVConfigAdapterAt(path)

	change, err := adapter.SetDefaultIndex("https://mirrors.tuna.tsinghua.edu.cn/pypi/web/simple/")
	require.NoError(t, err)
	assert.True(t, change.Changed)

	doc := parseConfig(t, change.New)
	// Keys this tool does not manage survive the rewrite.
	assert.Equal(t, "automatic", doc["python-downloads"])

	entries := doc["index"].([]any)
	require.Len(t, entries, 2)
	var defaultURL, otherURL string
	for _, entry := range entries {
		table := entry.(map[string]any)
		if isTrue(table["default"]) {
			defaultURL = table["url"].(string)
		} else {
			otherURL = table["url"].(string)
		}
	}
	assert.Equal(t, "https://mirrors.tuna.tsinghua.edu.cn/pypi/web/simple/", defaultURL)
	assert.Equal(t, "https://private.example.com/simple", otherURL)
}

func TestSetDefaultIndexIdempotent(t *testing.T) {
	path := seedConfig(t)
	adapter := NewUVConfigAdapterAt(path)

	first, err := adapter.SetDefaultIndex("https://mirrors.ustc.edu.cn/pypi/web/simple/")
	require.NoError(t, err)
	assert.True(t, first.Changed)

	second, err := adapter.SetDefaultIndex("https://mirrors.ustc.edu.cn/pypi/web/simple/")
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Equal(t, first.New, second.New)
}

func TestSetPythonInstallMirror(t *testing.T) {
	path := seedConfig(t)
	adapter := NewUVConfigAdapterAt(path)

	change, err := adapter.SetPythonInstallMirror("https://registry.npmmirror.com/-/binary/python-build-standalone")
	require.NoError(t, err)
	assert.True(t, change.Changed)

	doc := parseConfig(t, change.New)
	assert.Equal(t, "https://registry.npmmirror.com/-/binary/python-build-standalone", doc["python-install-mirror"])
	assert.Equal(t, "automatic", doc["python-downloads"])
	assert.Len(t, doc["index"].([]any), 2)
}

func TestConfigPathOverride(t *testing.T) {
	adapter := NewUVConfigAdapterAt("/tmp/custom/uv.toml")
	path, err := adapter.Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom/uv.toml", path)
}

func seedConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "uv.toml")
	require.NoError(t, os.WriteFile(path, []byte(seededConfig), 0644))
	return path
}

func parseConfig(t *testing.T, text string) map[string]any {
	t.Helper()
	doc := map[string]any{}
	require.NoError(t, toml.Unmarshal([]byte(text), &doc))
	return doc
}
