package app

import (
	"context"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"uv-mirror/internal/core"
	"uv-mirror/internal/types"
)

const defaultProbeTimeout = 5 * time.Second

func (s Service) BenchmarkIndexMirrors(ctx context.Context, req MirrorBenchRequest) (MirrorBenchResult, error) {
	mirrors := req.Mirrors
	if len(mirrors) == 0 {
		mirrors = types.DefaultIndexMirrors
	}
	return s.benchmark(ctx, mirrors, req, core.IndexProbeURL)
}

func (s Service) BenchmarkPythonInstallMirrors(ctx context.Context, req MirrorBenchRequest) (MirrorBenchResult, error) {
	mirrors := req.Mirrors
	if len(mirrors) == 0 {
		mirrors = types.DefaultPythonInstallMirrors
	}
	return s.benchmark(ctx, mirrors, req, func(mirror string) (string, error) {
		return core.PythonInstallProbeURL(mirror), nil
	})
}

// benchmark probes every mirror and ranks the reachable ones by speed.
// Probes are bandwidth samples, so they run sequentially unless the
// caller raises Concurrency.
func (s Service) benchmark(ctx context.Context, mirrors []string, req MirrorBenchRequest, probeURL func(string) (string, error)) (MirrorBenchResult, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	concurrency := req.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]types.ProbeResult, len(mirrors))
	failures := make([]error, len(mirrors))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, mirror := range mirrors {
		group.Go(func() error {
			target, err := probeURL(mirror)
			if err != nil {
				failures[i] = err
				return nil
			}
			probed, err := s.Probe.Probe(groupCtx, target, timeout)
			if err != nil {
				log.Ctx(ctx).Warn().Str("mirror", mirror).Err(err).Msg("mirror probe failed")
				failures[i] = err
				return nil
			}
			// Report per mirror, not per probe artifact.
			probed.URL = mirror
			results[i] = probed
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return MirrorBenchResult{}, err
	}

	bench := MirrorBenchResult{Results: core.RankBySpeed(results)}
	for i, failure := range failures {
		if failure != nil {
			bench.Failures = append(bench.Failures, MirrorFailure{Mirror: mirrors[i], Reason: failure.Error()})
		}
	}
	fastest, err := core.Fastest(bench.Results)
	if err != nil {
		return MirrorBenchResult{}, err
	}
	bench.Fastest = fastest
	return bench, nil
}

// ApplyIndexMirror writes the URL as the default [[index]] entry of the
// user uv.toml and returns the resulting diff.
func (s Service) ApplyIndexMirror(ctx context.Context, url string) (ApplyResult, error) {
	if strings.TrimSpace(url) == "" {
		return ApplyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index url is required")
	}
	change, err := s.Config.SetDefaultIndex(url)
	if err != nil {
		return ApplyResult{}, err
	}
	return s.renderApply(ctx, change, "default index updated")
}

// ApplyPythonInstallMirror writes the python-install-mirror key of the
// user uv.toml and returns the resulting diff.
func (s Service) ApplyPythonInstallMirror(ctx context.Context, url string) (ApplyResult, error) {
	if strings.TrimSpace(url) == "" {
		return ApplyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("python install mirror url is required")
	}
	change, err := s.Config.SetPythonInstallMirror(url)
	if err != nil {
		return ApplyResult{}, err
	}
	return s.renderApply(ctx, change, "python install mirror updated")
}

func (s Service) renderApply(ctx context.Context, change types.ConfigChange, msg string) (ApplyResult, error) {
	diff, err := s.Diff.Unified(change.Old, change.New, change.Path, change.Path)
	if err != nil {
		return ApplyResult{}, err
	}
	if change.Changed {
		log.Ctx(ctx).Info().Str("path", change.Path).Msg(msg)
	}
	return ApplyResult{Change: change, Diff: diff}, nil
}
