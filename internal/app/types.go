package app

import (
	"time"

	"uv-mirror/internal/types"
)

type LockValidateRequest struct {
	Path string
}

type LockValidateResult struct {
	Path           string
	PackageCount   int
	RequiresPython string
}

type LockInspectRequest struct {
	Path string
}

// LockReport is the inspect summary; yaml tags drive the --format yaml
// rendering in the CLI.
type LockReport struct {
	Path            string              `yaml:"path"`
	Version         int                 `yaml:"version"`
	Revision        int                 `yaml:"revision,omitempty"`
	RequiresPython  string              `yaml:"requires_python"`
	PackageCount    int                 `yaml:"package_count"`
	DependencyEdges int                 `yaml:"dependency_edges"`
	GeneratedAt     string              `yaml:"generated_at"`
	Packages        []LockReportPackage `yaml:"packages"`
}

type LockReportPackage struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Source       string   `yaml:"source"`
	Dependencies []string `yaml:"dependencies,omitempty"`
	Sdist        bool     `yaml:"sdist,omitempty"`
	Wheels       int      `yaml:"wheels,omitempty"`
}

type LockFormatRequest struct {
	Path  string
	Write bool
}

type LockFormatResult struct {
	Path      string
	Canonical bool
	Diff      string
	Output    []byte
}

type MirrorBenchRequest struct {
	Mirrors     []string
	Timeout     time.Duration
	Concurrency int
}

type MirrorFailure struct {
	Mirror string
	Reason string
}

type MirrorBenchResult struct {
	Results  []types.ProbeResult
	Failures []MirrorFailure
	Fastest  types.ProbeResult
}

type ApplyResult struct {
	Change types.ConfigChange
	Diff   string
}
