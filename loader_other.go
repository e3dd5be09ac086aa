//go:build !windows && !(darwin || freebsd || linux || netbsd)

package cudrv

var registerFunc = func(fptr any, cfn uintptr) {}

func libraryNames() []string { return nil }

func dlopen([]string) (uintptr, error) { return 0, ErrNotSupported }

func dlsym(uintptr, string) (uintptr, error) { return 0, ErrNotSupported }
