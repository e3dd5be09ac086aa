package cudrv

import (
	"bytes"
	"fmt"
	"unsafe"
)

// VersionString renders a numeric driver version, as reported by
// DriverVersion, in the usual major.minor form. Negative means unknown.
func VersionString(v int) string {
	if v < 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d", v/1000, v%1000/10)
}

// GoString copies b up to its first NUL byte, or the whole buffer when none.
//
// this use for buffers filled by the driver, as DeviceGetName or a jit log
func GoString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// cstring copies a NUL terminated C string located at addr.
func cstring(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	p := (*byte)(unsafe.Pointer(addr))
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
