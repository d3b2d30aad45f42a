package ports

import "uv-mirror/internal/types"

type LockReaderPort interface {
	Read(path string) (types.Lockfile, error)
	ReadRaw(path string) ([]byte, error)
	Parse(data []byte) (types.Lockfile, error)
}

type LockWriterPort interface {
	Serialize(lock types.Lockfile) ([]byte, error)
	Write(path string, lock types.Lockfile) error
}
