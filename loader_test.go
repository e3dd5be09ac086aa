package cudrv

import (
	"testing"
)

// TestSystemLoader runs against the machine's real driver when one is
// installed, against its absence otherwise. Both outcomes are legal, the
// loader must stay graceful either way.
func TestSystemLoader(t *testing.T) {
	registerFunc = realRegisterFunc
	t.Cleanup(func() { registerFunc = world.register })
	l := new(systemLoader)
	addr, err := l.entryPoint(symInit, CUDA11)
	if err != nil {
		if addr != 0 {
			t.Fatalf("error together with address %#x", addr)
		}
		t.Logf("no usable driver: %v", err)
		if _, err = l.entryPoint(symInit, CUDA11); err == nil {
			t.Fatal("second lookup succeeded after a failed one")
		}
		return
	}
	t.Logf("driver present, cuInit at %#x", addr)
	if addr == 0 {
		t.Fatal("zero cuInit address from an opened driver")
	}
}

func TestProcStatus(t *testing.T) {
	type testCase struct {
		s    uint32
		want string
	}
	tests := []testCase{
		{1, "symbol not found"},
		{2, "driver version not sufficient"},
		{9, "query result 9"},
	}
	for _, tt := range tests {
		if got := procStatus(tt.s); got != tt.want {
			t.Errorf("procStatus(%d) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestLibraryNames(t *testing.T) {
	names := libraryNames()
	if len(names) == 0 {
		t.Fatal("no driver library candidates for this platform")
	}
	for _, n := range names {
		if n == "" {
			t.Fatal("empty library candidate")
		}
	}
	t.Log(names)
}
