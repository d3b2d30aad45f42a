package core

import (
	"net/url"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"uv-mirror/internal/types"
)

// IndexProbeURL resolves the speed-test artifact relative to a simple
// index URL ("…/pypi/simple/" becomes "…/pypi/packages/…").
func IndexProbeURL(indexURL string) (string, error) {
	base, err := url.Parse(indexURL)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid index url").
			WithCause(err)
	}
	ref, err := url.Parse(types.IndexProbePath)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("invalid probe artifact path").
			WithCause(err)
	}
	return base.ResolveReference(ref).String(), nil
}

// PythonInstallProbeURL builds the interpreter-archive URL for a
// python-build-standalone mirror.
func PythonInstallProbeURL(mirror string) string {
	return strings.TrimRight(mirror, "/") + types.PythonInstallProbePath
}
