//go:build windows

package cudrv

import (
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"
)

// registerFunc materializes a typed Go function from a raw entry point.
// Kept as a variable so tests can install their own worlds.
var registerFunc = purego.RegisterFunc

func libraryNames() []string {
	return []string{"nvcuda.dll"}
}

// dlopen opens the first loadable library of names from the system directory.
func dlopen(names []string) (uintptr, error) {
	for _, n := range names {
		if h, err := windows.LoadLibraryEx(n, 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32); err == nil && h != 0 {
			return uintptr(h), nil
		}
	}
	return 0, fmt.Errorf("%w: tried %v", ErrLibraryNotFound, names)
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, fmt.Errorf("could not find %s: %w", name, err)
	}
	return addr, nil
}
