//go:build darwin || freebsd || linux || netbsd

package cudrv

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// registerFunc materializes a typed Go function from a raw entry point.
// Kept as a variable so tests can install their own worlds.
var registerFunc = purego.RegisterFunc

// libraryNames lists the well known sonames of the driver on this platform,
// in resolution order.
func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libcuda.dylib"}
	}
	return []string{"libcuda.so.1", "libcuda.so"}
}

// dlopen opens the first loadable library of names.
func dlopen(names []string) (uintptr, error) {
	for _, n := range names {
		if h, err := purego.Dlopen(n, purego.RTLD_LAZY|purego.RTLD_GLOBAL); err == nil && h != 0 {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: tried %v", ErrLibraryNotFound, names)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	addr, err := purego.Dlsym(handle, name)
	if err != nil {
		return 0, fmt.Errorf("could not find %s: %w", name, err)
	}
	return addr, nil
}
