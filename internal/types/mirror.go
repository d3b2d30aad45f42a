package types

import "time"

// ProbeResult is the outcome of sampling one mirror's download speed.
type ProbeResult struct {
	URL      string
	Bytes    int64
	Duration time.Duration
	// Speed is bytes per second over the sampled window.
	Speed float64
}

// ConfigChange records a rewrite of the uv configuration file.
type ConfigChange struct {
	Path    string
	Old     string
	New     string
	Changed bool
}

// DefaultIndexMirrors lists the PyPI simple-index mirrors probed by the
// index command when no catalog is configured.
var DefaultIndexMirrors = []string{
	"https://mirrors.aliyun.com/pypi/simple/",
	"https://mirrors.tencent.com/pypi/simple/",
	"https://mirror.nju.edu.cn/pypi/web/simple/",
	"https://mirrors.sustech.edu.cn/pypi/web/simple/",
	"https://mirrors.ustc.edu.cn/pypi/web/simple/",
	"https://mirrors.jlu.edu.cn/pypi/web/simple/",
	"https://mirrors.tuna.tsinghua.edu.cn/pypi/web/simple/",
	"https://mirrors.pku.edu.cn/pypi/web/simple/",
	"https://mirrors.zju.edu.cn/pypi/web/simple/",
}

// DefaultPythonInstallMirrors lists python-build-standalone release
// mirrors probed by the python-install command.
var DefaultPythonInstallMirrors = []string{
	"https://registry.npmmirror.com/-/binary/python-build-standalone",
	"https://mirror.nju.edu.cn/github-release/indygreg/python-build-standalone",
}

// IndexProbePath is a large sdist resolved relative to a simple-index
// URL; streaming it for a few seconds gives a stable speed sample.
const IndexProbePath = "../packages/be/a6/46e250737d46e955e048f6bbc2948fb22f0de3f3ab828d3803070dc1260e/Django-5.0.tar.gz"

// PythonInstallProbePath is appended to a python-build-standalone
// mirror URL to locate a representative interpreter archive.
const PythonInstallProbePath = "/20250409/cpython-3.13.3%2B20250409-x86_64-unknown-linux-gnu-install_only_stripped.tar.gz"
