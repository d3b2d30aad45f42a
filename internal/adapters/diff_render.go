package adapters

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pmezard/go-difflib/difflib"

	"uv-mirror/internal/ports"
)

// DiffRenderAdapter renders a unified diff between two texts. Equal
// inputs render as the empty string.
type DiffRenderAdapter struct{}

func NewDiffRenderAdapter() DiffRenderAdapter {
	return DiffRenderAdapter{}
}

func (a DiffRenderAdapter) Unified(old string, updated string, fromFile string, toFile string) (string, error) {
	if old == updated {
		return "", nil
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(old),
		B:        difflib.SplitLines(updated),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	}
	rendered, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render diff").
			WithCause(err)
	}
	return rendered, nil
}

var _ ports.DiffPort = DiffRenderAdapter{}
