package pool

import (
	"errors"
	"os"
	"testing"

	"github.com/ZenLiuCN/cudrv"
	"github.com/ZenLiuCN/fn"
	"github.com/davecgh/go-spew/spew"
)

const modSaxpy = "saxpy"

// ready skips unless a usable driver and a current context are around, then
// hands back the PTX fixture. Module loading is meaningless outside both.
func ready(t *testing.T) []byte {
	t.Helper()
	if !cudrv.Available("cuModuleLoadDataEx", cudrv.CUDA11) {
		t.Skip("cuda driver not available")
	}
	cudrv.Initialize()
	var ctx cudrv.Context
	if cudrv.CtxGetCurrent(&ctx) != cudrv.Success || ctx == 0 {
		t.Skip("no current cuda context")
	}
	return fn.Panic1(os.ReadFile("../testdata/saxpy.ptx"))
}

func TestNewPool(t *testing.T) {
	p := NewPool()
	if p.Modules == nil {
		t.Fatal("nil module map")
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestRequireAbsent(t *testing.T) {
	p := NewPool()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Require of an unloaded module did not panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, ErrNotLoad) {
			t.Fatalf("panic carries %v, want ErrNotLoad", r)
		}
	}()
	p.Require(modSaxpy, "saxpy")
}

func TestFetchAbsent(t *testing.T) {
	p := NewPool()
	if _, ok := p.Fetch(modSaxpy, "saxpy"); ok {
		t.Fatal("Fetch of an unloaded module reported ok")
	}
	if err := p.Unload(modSaxpy); !errors.Is(err, ErrNotLoad) {
		t.Fatalf("Unload = %v, want ErrNotLoad", err)
	}
}

func TestPool(t *testing.T) {
	ptx := ready(t)
	p := NewPool()
	defer fn.IgnoreClose(p)
	fn.Panic(p.Load(modSaxpy, ptx))
	if err := p.Load(modSaxpy, ptx); !errors.Is(err, ErrAlreadyLoad) {
		t.Fatalf("second load = %v, want ErrAlreadyLoad", err)
	}
	k := p.Require(modSaxpy, "saxpy")
	if k == 0 {
		t.Fatal("zero kernel handle")
	}
	sp := spew.NewDefaultConfig()
	sp.MaxDepth = 3
	sp.Dump(p)
	if _, ok := p.Fetch(modSaxpy, "no_such_kernel"); ok {
		t.Fatal("fetched a kernel the module does not ship")
	}
	fn.Panic(p.Reload(modSaxpy, ptx))
	if k = p.Require(modSaxpy, "saxpy"); k == 0 {
		t.Fatal("zero kernel handle after reload")
	}
	var blocks int32
	if r := cudrv.OccupancyMaxActiveBlocksPerMultiprocessor(&blocks, k, 128, 0); r == cudrv.Success {
		t.Logf("occupancy at block size 128: %d", blocks)
	}
	fn.Panic(p.Unload(modSaxpy))
	if err := p.Unload(modSaxpy); !errors.Is(err, ErrNotLoad) {
		t.Fatalf("unload twice = %v, want ErrNotLoad", err)
	}
}

func TestLoadBroken(t *testing.T) {
	ready(t)
	p := NewPool()
	defer fn.IgnoreClose(p)
	err := p.Load("broken", fn.Panic1(os.ReadFile("../testdata/broken.ptx")))
	if err == nil {
		t.Fatal("broken image loaded")
	}
	t.Log(err)
}
