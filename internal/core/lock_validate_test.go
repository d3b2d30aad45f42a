package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uv-mirror/internal/types"
)

func validLock() types.Lockfile {
	return types.Lockfile{
		Version:        types.SupportedLockVersion,
		Revision:       1,
		RequiresPython: ">=3.12",
		Packages: []types.Package{
			{
				Name:    "a",
				Version: "1.0.0",
				Source:  types.Source{Registry: "https://pypi.org/simple"},
				Dependencies: []types.Dependency{
					{Name: "b"},
				},
				Sdist: &types.Artifact{
					URL:  "https://files.pythonhosted.org/packages/a.tar.gz",
					Hash: "sha256:aaaa",
				},
			},
			{
				Name:    "b",
				Version: "2.1.0",
				Source:  types.Source{Registry: "https://pypi.org/simple"},
				Wheels: []types.Artifact{
					{URL: "https://files.pythonhosted.org/packages/b.whl", Hash: "sha256:bbbb"},
				},
			},
		},
	}
}

func TestValidateAcceptsWellFormedLock(t *testing.T) {
	validator := NewLockValidator()
	require.NoError(t, validator.Validate(t.Context(), validLock()))
}

func TestValidateRejectsUnsupportedVersion(t *testing.T) {
	lock := validLock()
	lock.Version = 9
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "unsupported lockfile version")
}

func TestValidateRejectsMissingRequiresPython(t *testing.T) {
	lock := validLock()
	lock.RequiresPython = ""
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "requires-python must be set")

	lock.RequiresPython = "   "
	err = NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires-python must be set")
}

func TestValidateRejectsBadRequiresPython(t *testing.T) {
	lock := validLock()
	lock.RequiresPython = "not a specifier"
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PEP 440 specifier")
}

func TestValidateRejectsDuplicateNames(t *testing.T) {
	lock := validLock()
	// "B" normalizes to "b"; uniqueness is checked on normalized names.
	lock.Packages = append(lock.Packages, types.Package{
		Name:    "B",
		Version: "3.0.0",
		Source:  types.Source{Registry: "https://pypi.org/simple"},
	})
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate package name "b"`)
}

func TestValidateRejectsDanglingReference(t *testing.T) {
	lock := validLock()
	lock.Packages[0].Dependencies = append(lock.Packages[0].Dependencies, types.Dependency{Name: "c"})
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), `dependency "c" of package "a" references no package record`)
}

func TestValidateAcceptsForwardReference(t *testing.T) {
	// "a" depends on "b" which appears later in the document.
	require.NoError(t, NewLockValidator().Validate(t.Context(), validLock()))
}

func TestValidateRejectsBadPackageVersion(t *testing.T) {
	lock := validLock()
	lock.Packages[1].Version = "not-a-version"
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not PEP 440")
}

func TestValidateRejectsAmbiguousSource(t *testing.T) {
	lock := validLock()
	lock.Packages[0].Source = types.Source{
		Registry: "https://pypi.org/simple",
		Editable: ".",
	}
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one source origin")
}

func TestValidateRejectsMissingSource(t *testing.T) {
	lock := validLock()
	lock.Packages[0].Source = types.Source{}
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one source origin")
}

func TestValidateRejectsArtifactWithoutHash(t *testing.T) {
	lock := validLock()
	lock.Packages[0].Sdist = &types.Artifact{URL: "https://example.com/a.tar.gz"}
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sdist without a hash")
}

func TestValidateRejectsNamelessDependency(t *testing.T) {
	lock := validLock()
	lock.Packages[0].Dependencies = []types.Dependency{{Name: "  "}}
	err := NewLockValidator().Validate(t.Context(), lock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dependency without a name")
}

func TestFindPackageNormalizesNames(t *testing.T) {
	lock := validLock()
	lock.Packages[1].Name = "Typing_Extensions"
	lock.Packages[0].Dependencies = []types.Dependency{{Name: "typing-extensions"}}
	require.NoError(t, NewLockValidator().Validate(t.Context(), lock))

	pkg, ok := FindPackage(lock, "typing.extensions")
	require.True(t, ok)
	assert.Equal(t, "Typing_Extensions", pkg.Name)

	_, ok = FindPackage(lock, "missing")
	assert.False(t, ok)
}

func TestDependencyResolutionExample(t *testing.T) {
	// A two-package document where "a" depends on "b": the reference
	// resolves to exactly the record named "b".
	lock := validLock()
	pkg, ok := FindPackage(lock, lock.Packages[0].Dependencies[0].Name)
	require.True(t, ok)
	assert.Equal(t, "b", pkg.Name)
	assert.Equal(t, "2.1.0", pkg.Version)
}

func TestDependencyEdges(t *testing.T) {
	assert.Equal(t, 1, DependencyEdges(validLock()))
	assert.Equal(t, 0, DependencyEdges(types.Lockfile{}))
}
