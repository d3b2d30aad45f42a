package types

// Lockfile is the parsed form of a uv.lock document. The package list
// preserves file order; the resolver that produced the file decides the
// order, not this tool.
type Lockfile struct {
	Version        int       `toml:"version"`
	Revision       int       `toml:"revision,omitempty"`
	RequiresPython string    `toml:"requires-python"`
	Packages       []Package `toml:"package,omitempty"`
}

// Package is one resolved dependency record. Name is unique within a
// document after PEP 503 normalization.
type Package struct {
	Name         string       `toml:"name"`
	Version      string       `toml:"version"`
	Source       Source       `toml:"source"`
	Dependencies []Dependency `toml:"dependencies,omitempty"`
	Sdist        *Artifact    `toml:"sdist,omitempty"`
	Wheels       []Artifact   `toml:"wheels,omitempty"`
}

// Source describes where a package was resolved from. Exactly one of
// the fields is set in a valid document.
type Source struct {
	Registry string `toml:"registry,omitempty"`
	Editable string `toml:"editable,omitempty"`
	Virtual  string `toml:"virtual,omitempty"`
}

// Dependency is a reference to another package record by name,
// optionally gated by an environment marker expression.
type Dependency struct {
	Name   string `toml:"name"`
	Marker string `toml:"marker,omitempty"`
}

// Artifact is a distribution file (sdist or wheel) with its content
// hash. Size is an optional passthrough field; hashes are opaque here,
// verification belongs to the installer.
type Artifact struct {
	URL  string `toml:"url"`
	Hash string `toml:"hash"`
	Size int64  `toml:"size,omitempty"`
}

// SupportedLockVersion is the lockfile format version this tool reads
// and writes.
const SupportedLockVersion = 1
