package cudrv

import (
	"testing"
	"unsafe"
)

func TestVersionString(t *testing.T) {
	type testCase struct {
		v    int
		want string
	}
	tests := []testCase{
		{12040, "12.4"},
		{12000, "12.0"},
		{11000, "11.0"},
		{11035, "11.3"},
		{-1, "unknown"},
	}
	for _, tt := range tests {
		if got := VersionString(tt.v); got != tt.want {
			t.Errorf("VersionString(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestGoString(t *testing.T) {
	if got := GoString([]byte("Tesla T4\x00garbage")); got != "Tesla T4" {
		t.Errorf("GoString = %q", got)
	}
	if got := GoString([]byte("no nul")); got != "no nul" {
		t.Errorf("GoString = %q", got)
	}
	if got := GoString(nil); got != "" {
		t.Errorf("GoString(nil) = %q", got)
	}
}

func TestCstring(t *testing.T) {
	b := []byte("CUDA_SUCCESS\x00")
	if got := cstring(uintptr(unsafe.Pointer(&b[0]))); got != "CUDA_SUCCESS" {
		t.Errorf("cstring = %q", got)
	}
	if got := cstring(0); got != "" {
		t.Errorf("cstring(0) = %q", got)
	}
}
