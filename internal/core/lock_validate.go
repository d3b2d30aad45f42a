package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"uv-mirror/internal/shared"
	"uv-mirror/internal/types"
)

// StructuralValidityError marks a document that violates the lockfile
// schema: duplicate names, dangling dependency references, missing
// required fields, or malformed values. A document failing validation
// is rejected wholesale, never repaired.
func StructuralValidityError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("structural validity: " + msg)
}

// StructuralValidityErrorCause is StructuralValidityError with an
// underlying parse error attached.
func StructuralValidityErrorCause(msg string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("structural validity: " + msg).
		WithCause(cause)
}

type LockValidator struct{}

func NewLockValidator() LockValidator {
	return LockValidator{}
}

// Validate checks the structural invariants of a parsed lockfile:
// supported format version, parseable requires-python specifiers,
// unique normalized package names, well-formed records, and
// referential integrity of every dependency reference.
func (v LockValidator) Validate(ctx context.Context, lock types.Lockfile) error {
	if lock.Version != types.SupportedLockVersion {
		return StructuralValidityError(fmt.Sprintf("unsupported lockfile version %d", lock.Version))
	}
	if lock.Revision < 0 {
		return StructuralValidityError("revision must not be negative")
	}
	// A missing requires-python is a document defect, rejected like any
	// other schema violation; the assert below only guards the already
	// checked invariant.
	if strings.TrimSpace(lock.RequiresPython) == "" {
		return StructuralValidityError("requires-python must be set")
	}
	assert.NotEmpty(ctx, lock.RequiresPython, "requires-python must be set")
	if _, err := pep440.NewSpecifiers(lock.RequiresPython); err != nil {
		return StructuralValidityErrorCause(
			fmt.Sprintf("requires-python %q is not a PEP 440 specifier set", lock.RequiresPython), err)
	}

	index := map[string]struct{}{}
	for _, pkg := range lock.Packages {
		if err := validatePackage(pkg); err != nil {
			return err
		}
		normalized := shared.NormalizePipName(pkg.Name)
		if _, exists := index[normalized]; exists {
			return StructuralValidityError(fmt.Sprintf("duplicate package name %q", normalized))
		}
		index[normalized] = struct{}{}
	}

	// References may point forward, so edges are checked only after the
	// full name index is built.
	for _, pkg := range lock.Packages {
		for _, dep := range pkg.Dependencies {
			if _, exists := index[shared.NormalizePipName(dep.Name)]; !exists {
				return StructuralValidityError(fmt.Sprintf(
					"dependency %q of package %q references no package record", dep.Name, pkg.Name))
			}
		}
	}

	log.Ctx(ctx).Debug().Int("packages", len(lock.Packages)).Msg("lockfile validated")
	return nil
}

func validatePackage(pkg types.Package) error {
	if strings.TrimSpace(pkg.Name) == "" {
		return StructuralValidityError("package name must be set")
	}
	if strings.TrimSpace(pkg.Version) == "" {
		return StructuralValidityError(fmt.Sprintf("package %q has no version", pkg.Name))
	}
	if _, err := pep440.Parse(pkg.Version); err != nil {
		return StructuralValidityErrorCause(
			fmt.Sprintf("package %q version %q is not PEP 440", pkg.Name, pkg.Version), err)
	}
	if err := validateSource(pkg.Name, pkg.Source); err != nil {
		return err
	}
	if pkg.Sdist != nil {
		if err := validateArtifact(pkg.Name, "sdist", *pkg.Sdist); err != nil {
			return err
		}
	}
	for _, wheel := range pkg.Wheels {
		if err := validateArtifact(pkg.Name, "wheel", wheel); err != nil {
			return err
		}
	}
	for _, dep := range pkg.Dependencies {
		if strings.TrimSpace(dep.Name) == "" {
			return StructuralValidityError(fmt.Sprintf("package %q has a dependency without a name", pkg.Name))
		}
	}
	return nil
}

func validateSource(name string, source types.Source) error {
	origins := 0
	for _, value := range []string{source.Registry, source.Editable, source.Virtual} {
		if strings.TrimSpace(value) != "" {
			origins++
		}
	}
	if origins != 1 {
		return StructuralValidityError(fmt.Sprintf("package %q must have exactly one source origin", name))
	}
	return nil
}

func validateArtifact(name string, kind string, artifact types.Artifact) error {
	if strings.TrimSpace(artifact.URL) == "" {
		return StructuralValidityError(fmt.Sprintf("package %q has a %s without a url", name, kind))
	}
	if strings.TrimSpace(artifact.Hash) == "" {
		return StructuralValidityError(fmt.Sprintf("package %q has a %s without a hash", name, kind))
	}
	if artifact.Size < 0 {
		return StructuralValidityError(fmt.Sprintf("package %q has a %s with negative size", name, kind))
	}
	return nil
}

// FindPackage resolves a dependency reference to its package record
// using PEP 503 name normalization.
func FindPackage(lock types.Lockfile, name string) (types.Package, bool) {
	normalized := shared.NormalizePipName(name)
	for _, pkg := range lock.Packages {
		if shared.NormalizePipName(pkg.Name) == normalized {
			return pkg, true
		}
	}
	return types.Package{}, false
}

// DependencyEdges counts dependency references across all package
// records.
func DependencyEdges(lock types.Lockfile) int {
	edges := 0
	for _, pkg := range lock.Packages {
		edges += len(pkg.Dependencies)
	}
	return edges
}
