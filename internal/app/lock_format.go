package app

import (
	"bytes"
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"uv-mirror/internal/core"
)

func (s Service) LockFormat(ctx context.Context, req LockFormatRequest) (LockFormatResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return LockFormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile path is required")
	}
	original, err := s.LockReader.ReadRaw(path)
	if err != nil {
		return LockFormatResult{}, err
	}
	lock, err := s.LockReader.Parse(original)
	if err != nil {
		return LockFormatResult{}, err
	}
	// Only structurally valid documents are formatted; a broken file is
	// rejected, not normalized.
	if err := core.NewLockValidator().Validate(ctx, lock); err != nil {
		return LockFormatResult{}, err
	}
	canonical, err := s.LockWriter.Serialize(lock)
	if err != nil {
		return LockFormatResult{}, err
	}

	result := LockFormatResult{
		Path:      path,
		Canonical: bytes.Equal(original, canonical),
		Output:    canonical,
	}
	if !result.Canonical {
		diff, err := s.Diff.Unified(string(original), string(canonical), path, path+" (canonical)")
		if err != nil {
			return LockFormatResult{}, err
		}
		result.Diff = diff
		if req.Write {
			if err := s.LockWriter.Write(path, lock); err != nil {
				return LockFormatResult{}, err
			}
		}
	}
	return result, nil
}

// NonCanonicalError signals a check-mode formatting failure; the root
// command maps its message prefix to a dedicated exit code.
func NonCanonicalError(path string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("lockfile is not canonical: " + path)
}
