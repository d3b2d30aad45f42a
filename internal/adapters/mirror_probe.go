package adapters

import (
	"context"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"uv-mirror/internal/ports"
	"uv-mirror/internal/shared"
	"uv-mirror/internal/types"
)

// MirrorProbeAdapter samples a mirror's download speed by streaming a
// large artifact for up to the given timeout. Hitting the deadline
// mid-body is the normal case; the bytes transferred up to that point
// are the sample.
type MirrorProbeAdapter struct {
	Client *http.Client
}

func NewMirrorProbeAdapter() MirrorProbeAdapter {
	return MirrorProbeAdapter{Client: &http.Client{}}
}

func (a MirrorProbeAdapter) Probe(ctx context.Context, rawURL string, timeout time.Duration) (types.ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return types.ProbeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid probe url").
			WithCause(err)
	}

	start := time.Now()
	resp, err := a.Client.Do(req)
	if err != nil {
		return types.ProbeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("mirror request failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return types.ProbeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("mirror returned error status").
			WithCause(shared.HTTPStatusError(resp.StatusCode, rawURL))
	}

	var total int64
	buf := make([]byte, 1024)
	for {
		n, readErr := resp.Body.Read(buf)
		total += int64(n)
		if readErr != nil {
			// EOF ends the sample; so does the context deadline firing
			// mid-transfer.
			break
		}
	}
	duration := time.Since(start)
	if duration <= 0 {
		duration = time.Millisecond
	}

	result := types.ProbeResult{
		URL:      rawURL,
		Bytes:    total,
		Duration: duration,
		Speed:    float64(total) / duration.Seconds(),
	}
	log.Ctx(ctx).Debug().
		Str("url", rawURL).
		Int64("bytes", total).
		Dur("duration", duration).
		Msg("mirror probed")
	return result, nil
}

var _ ports.MirrorProbePort = MirrorProbeAdapter{}
