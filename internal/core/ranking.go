package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"uv-mirror/internal/types"
)

// RankBySpeed orders probe results fastest first, dropping mirrors
// that transferred nothing. The sort is stable so equal speeds keep
// catalog order.
func RankBySpeed(results []types.ProbeResult) []types.ProbeResult {
	ranked := make([]types.ProbeResult, 0, len(results))
	for _, result := range results {
		if result.Speed > 0 {
			ranked = append(ranked, result)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Speed > ranked[j].Speed
	})
	return ranked
}

// Fastest returns the best-ranked probe result.
func Fastest(results []types.ProbeResult) (types.ProbeResult, error) {
	ranked := RankBySpeed(results)
	if len(ranked) == 0 {
		return types.ProbeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no reachable mirrors")
	}
	return ranked[0], nil
}

// HumanSpeed formats a bytes-per-second rate with a binary unit.
func HumanSpeed(speed float64) string {
	switch {
	case speed < 1024:
		return fmt.Sprintf("%.2f B/s", speed)
	case speed < 1024*1024:
		return fmt.Sprintf("%.2f KB/s", speed/1024)
	case speed < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB/s", speed/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB/s", speed/(1024*1024*1024))
	}
}
