package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"uv-mirror/internal/core"
	"uv-mirror/internal/types"
)

func (s Service) LockInspect(ctx context.Context, req LockInspectRequest) (LockReport, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return LockReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile path is required")
	}
	lock, err := s.LockReader.Read(path)
	if err != nil {
		return LockReport{}, err
	}
	if err := core.NewLockValidator().Validate(ctx, lock); err != nil {
		return LockReport{}, err
	}

	report := LockReport{
		Path:            path,
		Version:         lock.Version,
		Revision:        lock.Revision,
		RequiresPython:  lock.RequiresPython,
		PackageCount:    len(lock.Packages),
		DependencyEdges: core.DependencyEdges(lock),
		GeneratedAt:     s.Clock().UTC().Format(time.RFC3339),
	}
	for _, pkg := range lock.Packages {
		entry := LockReportPackage{
			Name:    pkg.Name,
			Version: pkg.Version,
			Source:  describeSource(pkg.Source),
			Sdist:   pkg.Sdist != nil,
			Wheels:  len(pkg.Wheels),
		}
		for _, dep := range pkg.Dependencies {
			label := dep.Name
			if dep.Marker != "" {
				label = fmt.Sprintf("%s ; %s", dep.Name, dep.Marker)
			}
			entry.Dependencies = append(entry.Dependencies, label)
		}
		report.Packages = append(report.Packages, entry)
	}
	return report, nil
}

func describeSource(source types.Source) string {
	switch {
	case source.Registry != "":
		return "registry+" + source.Registry
	case source.Editable != "":
		return "editable+" + source.Editable
	case source.Virtual != "":
		return "virtual+" + source.Virtual
	default:
		return ""
	}
}
