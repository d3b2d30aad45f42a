package adapters

import (
	"bytes"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"

	"uv-mirror/internal/core"
	"uv-mirror/internal/ports"
	"uv-mirror/internal/types"
)

// LockFileAdapter decodes uv.lock documents. Decoding is strict: keys
// outside the schema are a structural-validity error, not ignored.
// Semantic validation (uniqueness, referential integrity) lives in
// core.LockValidator and runs in the application layer.
type LockFileAdapter struct{}

func NewLockFileAdapter() LockFileAdapter {
	return LockFileAdapter{}
}

func (a LockFileAdapter) Read(path string) (types.Lockfile, error) {
	data, err := a.ReadRaw(path)
	if err != nil {
		return types.Lockfile{}, err
	}
	return a.Parse(data)
}

func (a LockFileAdapter) ReadRaw(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("lockfile not found").
				WithCause(err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read lockfile").
			WithCause(err)
	}
	return data, nil
}

func (a LockFileAdapter) Parse(data []byte) (types.Lockfile, error) {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var lock types.Lockfile
	if err := decoder.Decode(&lock); err != nil {
		return types.Lockfile{}, core.StructuralValidityErrorCause("failed to parse lockfile toml", err)
	}
	return lock, nil
}

var _ ports.LockReaderPort = LockFileAdapter{}
