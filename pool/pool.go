package pool

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"unsafe"

	"github.com/ZenLiuCN/cudrv"
)

// Pool keeps named driver modules and hands out kernel handles. It owns the
// module lifecycle only, cuInit and the current context belong to the caller.
type Pool struct {
	Modules map[string]cudrv.Module
	Loaded  []string
	sync.RWMutex
}

var (
	ErrAlreadyLoad     = errors.New("module already loaded")
	ErrNotLoad         = errors.New("module not loaded")
	ErrMissingFunction = errors.New("function not found in module")
)

// NewPool create new pool
func NewPool() *Pool {
	p := new(Pool)
	p.Modules = make(map[string]cudrv.Module)
	return p
}

// Load an image, cubin, fatbin or PTX text, as the module named name.
func (p *Pool) Load(name string, image []byte) (err error) {
	p.Lock()
	defer p.Unlock()
	if _, ok := p.Modules[name]; ok {
		return ErrAlreadyLoad
	}
	var m cudrv.Module
	if m, err = load(image); err != nil {
		return
	}
	p.Modules[name] = m
	p.Loaded = append(p.Loaded, name)
	return
}

// Reload replaces the named module with a fresh image, plain Load when the
// name is absent. The module moves to the end of the unload order.
func (p *Pool) Reload(name string, image []byte) (err error) {
	p.Lock()
	defer p.Unlock()
	if _, ok := p.Modules[name]; ok {
		if err = p.unload(name); err != nil {
			return
		}
	}
	var m cudrv.Module
	if m, err = load(image); err != nil {
		return
	}
	p.Modules[name] = m
	p.Loaded = append(p.Loaded, name)
	return
}

// Unload the named module, freeing its driver resources.
func (p *Pool) Unload(name string) error {
	p.Lock()
	defer p.Unlock()
	return p.unload(name)
}

func (p *Pool) unload(name string) error {
	m, ok := p.Modules[name]
	if !ok {
		return ErrNotLoad
	}
	delete(p.Modules, name)
	if i := slices.Index(p.Loaded, name); i >= 0 {
		p.Loaded = slices.Delete(p.Loaded, i, i+1)
	}
	if r := cudrv.ModuleUnload(m); r != cudrv.Success {
		return fmt.Errorf("unload %s: %w", name, r.Err())
	}
	return nil
}

// Require fetch a kernel handle from a loaded module, panics when the module
// is absent or the driver has no function of that name.
func (p *Pool) Require(module, function string) cudrv.Function {
	f, err := p.fetch(module, function)
	if err != nil {
		panic(err)
	}
	return f
}

// Fetch is the soft sibling of Require.
func (p *Pool) Fetch(module, function string) (cudrv.Function, bool) {
	f, err := p.fetch(module, function)
	return f, err == nil
}

func (p *Pool) fetch(module, function string) (f cudrv.Function, err error) {
	p.RLock()
	defer p.RUnlock()
	m, ok := p.Modules[module]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotLoad, module)
	}
	if r := cudrv.ModuleGetFunction(&f, m, function); r != cudrv.Success {
		return 0, fmt.Errorf("%w: %s.%s: %s", ErrMissingFunction, module, function, r)
	}
	return
}

// Close unloads everything in reverse load order, keeping the first error.
func (p *Pool) Close() (err error) {
	p.Lock()
	defer p.Unlock()
	for i := len(p.Loaded) - 1; i >= 0; i-- {
		if e := p.unload(p.Loaded[i]); e != nil && err == nil {
			err = e
		}
	}
	return
}

// load feeds the image to the driver jit with an error log buffer wired in,
// so a failed compile names its reason instead of a bare status code.
func load(image []byte) (m cudrv.Module, err error) {
	if len(image) == 0 || image[len(image)-1] != 0 {
		image = append(slices.Clone(image), 0) // PTX text must be NUL terminated
	}
	var logbuf [2048]byte
	opts := []cudrv.JitOption{cudrv.JitErrorLogBuffer, cudrv.JitErrorLogBufferSizeBytes}
	vals := []unsafe.Pointer{unsafe.Pointer(&logbuf[0]), nil}
	// the size option rides as an integer widened into its pointer slot
	*(*uintptr)(unsafe.Pointer(&vals[1])) = uintptr(len(logbuf))
	if r := cudrv.ModuleLoadDataEx(&m, image, opts, vals); r != cudrv.Success {
		if msg := cudrv.GoString(logbuf[:]); msg != "" {
			return 0, fmt.Errorf("load module: %s: %s", r, msg)
		}
		return 0, fmt.Errorf("load module: %w", r.Err())
	}
	return
}
