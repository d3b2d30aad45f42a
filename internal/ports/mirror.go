package ports

import (
	"context"
	"time"

	"uv-mirror/internal/types"
)

type MirrorProbePort interface {
	Probe(ctx context.Context, url string, timeout time.Duration) (types.ProbeResult, error)
}

type UVConfigPort interface {
	Path() (string, error)
	SetDefaultIndex(url string) (types.ConfigChange, error)
	SetPythonInstallMirror(url string) (types.ConfigChange, error)
}

type DiffPort interface {
	Unified(old string, updated string, fromFile string, toFile string) (string, error)
}
