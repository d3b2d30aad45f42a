package adapters

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"uv-mirror/internal/ports"
	"uv-mirror/internal/types"
)

// UVConfigAdapter rewrites the user-level uv.toml. The document is
// decoded into a generic tree so keys this tool does not manage are
// carried through the rewrite; the re-encode is deterministic (sorted
// keys), so repeated rewrites of the same state are byte-stable.
// Comments and hand formatting in an existing file are not preserved
// by the re-encode.
type UVConfigAdapter struct {
	// ConfigPath overrides the platform default location when set.
	ConfigPath string
}

func NewUVConfigAdapter() UVConfigAdapter {
	return UVConfigAdapter{}
}

func NewUVConfigAdapterAt(path string) UVConfigAdapter {
	return UVConfigAdapter{ConfigPath: path}
}

func (a UVConfigAdapter) Path() (string, error) {
	if a.ConfigPath != "" {
		return a.ConfigPath, nil
	}
	switch runtime.GOOS {
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("APPDATA is not set")
		}
		return filepath.Join(appData, "uv", "uv.toml"), nil
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine home directory").
				WithCause(err)
		}
		return filepath.Join(home, "Library", "Preferences", "uv", "uv.toml"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to determine home directory").
				WithCause(err)
		}
		return filepath.Join(home, ".config", "uv", "uv.toml"), nil
	}
}

// SetDefaultIndex updates the url of every [[index]] entry marked
// default = true, or appends one when no default entry exists.
func (a UVConfigAdapter) SetDefaultIndex(url string) (types.ConfigChange, error) {
	return a.rewrite(func(doc map[string]any) {
		entries, _ := doc["index"].([]any)
		found := false
		for _, entry := range entries {
			table, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if isTrue(table["default"]) {
				table["url"] = url
				found = true
			}
		}
		if !found {
			entries = append(entries, map[string]any{"url": url, "default": true})
		}
		doc["index"] = entries
	})
}

// SetPythonInstallMirror sets the top-level python-install-mirror key.
func (a UVConfigAdapter) SetPythonInstallMirror(url string) (types.ConfigChange, error) {
	return a.rewrite(func(doc map[string]any) {
		doc["python-install-mirror"] = url
	})
}

func (a UVConfigAdapter) rewrite(mutate func(doc map[string]any)) (types.ConfigChange, error) {
	path, err := a.Path()
	if err != nil {
		return types.ConfigChange{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return types.ConfigChange{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create uv config directory").
			WithCause(err)
	}
	old, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return types.ConfigChange{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read uv config").
			WithCause(err)
	}

	doc := map[string]any{}
	if len(old) > 0 {
		if err := toml.Unmarshal(old, &doc); err != nil {
			return types.ConfigChange{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse uv config toml").
				WithCause(err)
		}
	}
	mutate(doc)

	updated, err := toml.Marshal(doc)
	if err != nil {
		return types.ConfigChange{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode uv config toml").
			WithCause(err)
	}

	change := types.ConfigChange{
		Path:    path,
		Old:     string(old),
		New:     string(updated),
		Changed: string(old) != string(updated),
	}
	if !change.Changed {
		return change, nil
	}
	if err := os.WriteFile(path, updated, 0644); err != nil {
		return types.ConfigChange{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write uv config").
			WithCause(err)
	}
	return change, nil
}

func isTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

var _ ports.UVConfigPort = UVConfigAdapter{}
