package adapters

import (
	"fmt"
	"os"
	"strings"

	"uv-mirror/internal/core"
	"uv-mirror/internal/ports"
	"uv-mirror/internal/types"
)

// LockWriterAdapter emits the canonical uv.lock rendering: top-level
// keys, then one [[package]] table per record in document order, keys
// in fixed order, dependencies and wheels one entry per line. Parsing
// a canonical file and serializing the result reproduces the input
// byte for byte.
type LockWriterAdapter struct{}

func NewLockWriterAdapter() LockWriterAdapter {
	return LockWriterAdapter{}
}

func (a LockWriterAdapter) Serialize(lock types.Lockfile) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "version = %d\n", lock.Version)
	if lock.Revision != 0 {
		fmt.Fprintf(&b, "revision = %d\n", lock.Revision)
	}
	fmt.Fprintf(&b, "requires-python = %s\n", tomlString(lock.RequiresPython))

	for _, pkg := range lock.Packages {
		b.WriteString("\n[[package]]\n")
		fmt.Fprintf(&b, "name = %s\n", tomlString(pkg.Name))
		fmt.Fprintf(&b, "version = %s\n", tomlString(pkg.Version))
		source, err := sourceTable(pkg)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&b, "source = %s\n", source)
		if len(pkg.Dependencies) > 0 {
			b.WriteString("dependencies = [\n")
			for _, dep := range pkg.Dependencies {
				fmt.Fprintf(&b, "    %s,\n", dependencyTable(dep))
			}
			b.WriteString("]\n")
		}
		if pkg.Sdist != nil {
			fmt.Fprintf(&b, "sdist = %s\n", artifactTable(*pkg.Sdist))
		}
		if len(pkg.Wheels) > 0 {
			b.WriteString("wheels = [\n")
			for _, wheel := range pkg.Wheels {
				fmt.Fprintf(&b, "    %s,\n", artifactTable(wheel))
			}
			b.WriteString("]\n")
		}
	}
	return []byte(b.String()), nil
}

func (a LockWriterAdapter) Write(path string, lock types.Lockfile) error {
	data, err := a.Serialize(lock)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func sourceTable(pkg types.Package) (string, error) {
	switch {
	case pkg.Source.Registry != "":
		return fmt.Sprintf("{ registry = %s }", tomlString(pkg.Source.Registry)), nil
	case pkg.Source.Editable != "":
		return fmt.Sprintf("{ editable = %s }", tomlString(pkg.Source.Editable)), nil
	case pkg.Source.Virtual != "":
		return fmt.Sprintf("{ virtual = %s }", tomlString(pkg.Source.Virtual)), nil
	default:
		return "", core.StructuralValidityError(fmt.Sprintf("package %q must have exactly one source origin", pkg.Name))
	}
}

func dependencyTable(dep types.Dependency) string {
	if dep.Marker != "" {
		return fmt.Sprintf("{ name = %s, marker = %s }", tomlString(dep.Name), tomlString(dep.Marker))
	}
	return fmt.Sprintf("{ name = %s }", tomlString(dep.Name))
}

func artifactTable(artifact types.Artifact) string {
	if artifact.Size > 0 {
		return fmt.Sprintf("{ url = %s, hash = %s, size = %d }",
			tomlString(artifact.URL), tomlString(artifact.Hash), artifact.Size)
	}
	return fmt.Sprintf("{ url = %s, hash = %s }", tomlString(artifact.URL), tomlString(artifact.Hash))
}

// tomlString renders a TOML basic (double-quoted) string.
func tomlString(value string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

var _ ports.LockWriterPort = LockWriterAdapter{}
