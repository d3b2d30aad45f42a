package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"uv-mirror/internal/core"
)

func (s Service) LockValidate(ctx context.Context, req LockValidateRequest) (LockValidateResult, error) {
	path := strings.TrimSpace(req.Path)
	if path == "" {
		return LockValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lockfile path is required")
	}
	lock, err := s.LockReader.Read(path)
	if err != nil {
		return LockValidateResult{}, err
	}
	if err := core.NewLockValidator().Validate(ctx, lock); err != nil {
		return LockValidateResult{}, err
	}
	return LockValidateResult{
		Path:           path,
		PackageCount:   len(lock.Packages),
		RequiresPython: lock.RequiresPython,
	}, nil
}
