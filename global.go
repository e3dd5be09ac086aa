package cudrv

import (
	"slices"
	"sync/atomic"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// drv is the process wide resolution cache over the installed driver.
// Everything in this package, probes and bound procs alike, shares it.
var drv = newCache(&systemLoader{})

type logbox struct{ log.Logger }

var logp atomic.Pointer[logbox]

func init() {
	logp.Store(&logbox{log.NewNopLogger()})
}

// SetLogger routes resolution diagnostics, warnings for missing entry points
// and debug lines for resolved ones. nil restores the default silent logger.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logp.Store(&logbox{l})
}

// Logger returns the current diagnostic logger.
func Logger() log.Logger {
	return logp.Load().Logger
}

// Initialize calls cuInit when the installed driver provides it. Failures
// are logged, never fatal, so hosts without a usable driver still start.
// Safe to call more than once, cuInit tolerates repeated calls.
func Initialize() {
	if !Available(symInit, CUDA11) {
		_ = level.Warn(Logger()).Log("msg", "cuda driver not initialized", "symbol", symInit)
		return
	}
	if r := Init(0); r != Success {
		_ = level.Warn(Logger()).Log("msg", "cuda driver initialization failed", "result", r)
	}
}

// Available reports whether the installed driver resolves name at the given
// minimum version. The outcome is recorded, probing then invoking costs one
// resolution in total.
func Available(name string, version Version) bool {
	return drv.resolve(name, version) != 0
}

// DriverVersion reports the installed driver version, as 12040 for 12.4,
// or -1 when no driver answers. Successful answers are memoized, failures
// are retried on the next call.
func DriverVersion() int {
	if v, ok := drv.cachedVersion(); ok {
		return v
	}
	if !Available(symDriverGetVersion, CUDA11) {
		return -1
	}
	var v int32
	if r := DriverGetVersion(&v); r != Success {
		_ = level.Warn(Logger()).Log("msg", "cuda driver version query failed", "result", r)
		return -1
	}
	drv.storeVersion(int(v))
	return int(v)
}

// Symbols lists the closed set of wrapped driver entry points.
func Symbols() []Symbol {
	return slices.Clone(table)
}
