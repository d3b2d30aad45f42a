package app

import (
	"time"

	"uv-mirror/internal/adapters"
	"uv-mirror/internal/ports"
)

type Service struct {
	LockReader ports.LockReaderPort
	LockWriter ports.LockWriterPort
	Probe      ports.MirrorProbePort
	Config     ports.UVConfigPort
	Diff       ports.DiffPort
	Clock      func() time.Time
}

func NewService() Service {
	return Service{
		LockReader: adapters.NewLockFileAdapter(),
		LockWriter: adapters.NewLockWriterAdapter(),
		Probe:      adapters.NewMirrorProbeAdapter(),
		Config:     adapters.NewUVConfigAdapter(),
		Diff:       adapters.NewDiffRenderAdapter(),
		Clock:      time.Now,
	}
}
