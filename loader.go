package cudrv

import (
	"errors"
	"fmt"
	"sync"
)

type (
	/*loader resolves raw driver entry point addresses.

	Note:

	1. entryPoint reports absence through the error, never by panic.
	2. A zero address with a nil error also counts as absent.
	*/
	loader interface {
		entryPoint(name string, version Version) (addr uintptr, err error) //resolve one entry point honouring the minimum driver version
	}
	// systemLoader binds against the installed driver library. The library is
	// opened once, on the first entryPoint call.
	systemLoader struct {
		once      sync.Once
		handle    uintptr
		err       error
		byVersion func(name string, version Version) (uintptr, error)
	}
)

var (
	ErrLibraryNotFound = errors.New("cuda driver library not found")
	ErrNotSupported    = errors.New("cuda driver is not supported on this platform")
)

func (l *systemLoader) entryPoint(name string, version Version) (uintptr, error) {
	l.once.Do(l.open)
	if l.err != nil {
		return 0, l.err
	}
	if l.byVersion != nil {
		return l.byVersion(name, version)
	}
	// Driver predates cuGetProcAddress, plain symbol lookup. The _v2 alias
	// carries the current ABI where one exists, the bare name may be a
	// legacy entry kept for old binaries.
	if addr, err := dlsym(l.handle, name+"_v2"); err == nil && addr != 0 {
		return addr, nil
	}
	return dlsym(l.handle, name)
}

func (l *systemLoader) open() {
	l.handle, l.err = dlopen(libraryNames())
	if l.err != nil {
		return
	}
	// cuGetProcAddress_v2 (12.0+) reports why a symbol did not resolve,
	// the v1 form (11.3+) only that it did not. Either one maps a name and a
	// minimum version to the proper versioned entry point.
	if addr, err := dlsym(l.handle, "cuGetProcAddress_v2"); err == nil && addr != 0 {
		var query func(name string, pfn *uintptr, version int32, flags uint64, status *uint32) Result
		registerFunc(&query, addr)
		l.byVersion = func(name string, version Version) (uintptr, error) {
			var (
				pfn    uintptr
				status uint32
			)
			if r := query(name, &pfn, int32(version), 0, &status); r != Success {
				return 0, fmt.Errorf("cuGetProcAddress(%s, %d): %s", name, int(version), procStatus(status))
			}
			return pfn, nil
		}
		return
	}
	if addr, err := dlsym(l.handle, "cuGetProcAddress"); err == nil && addr != 0 {
		var query func(name string, pfn *uintptr, version int32, flags uint64) Result
		registerFunc(&query, addr)
		l.byVersion = func(name string, version Version) (uintptr, error) {
			var pfn uintptr
			if r := query(name, &pfn, int32(version), 0); r != Success {
				return 0, fmt.Errorf("cuGetProcAddress(%s, %d): not resolved", name, int(version))
			}
			return pfn, nil
		}
	}
}

// procStatus renders a CUdriverProcAddressQueryResult.
func procStatus(s uint32) string {
	switch s {
	case 1:
		return "symbol not found"
	case 2:
		return "driver version not sufficient"
	default:
		return fmt.Sprintf("query result %d", s)
	}
}
