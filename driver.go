package cudrv

import (
	"errors"
	"fmt"
	"sync"
)

type (
	// Symbol describes one wrapped driver entry point: its exported name and
	// the minimum driver version that ships it.
	Symbol struct {
		Name    string
		Version Version
	}
	/*proc is the lazy binding of a single driver entry point.

	Use Steps:

	1. register a proc with the raw driver signature as F
	2. invoke it, the first call resolves and binds the entry point
	3. wrap invoke in an exported callable of the same shape

	Note:

	1. Binding happens at most once per process, sync.Once publishes fn and ok.
	2. A proc whose symbol did not resolve panics on invoke, wrapping
	   ErrNotAvailable. Probe with Available first when absence is expected.
	*/
	proc[F any] struct {
		sym  Symbol
		once sync.Once
		fn   F
		ok   bool
	}
)

// ErrNotAvailable reports an invoked entry point the installed driver does
// not provide.
var ErrNotAvailable = errors.New("cuda driver entry point not available")

// table is the closed set of wrapped entry points, filled during package
// initialization and never mutated afterwards.
var table []Symbol

func register[F any](name string, version Version) *proc[F] {
	table = append(table, Symbol{Name: name, Version: version})
	return &proc[F]{sym: Symbol{Name: name, Version: version}}
}

// invoke returns the bound driver function, binding on first use. After the
// first call it is a plain field read, no lock and no map.
func (p *proc[F]) invoke() F {
	p.once.Do(p.bind)
	if !p.ok {
		panic(fmt.Errorf("%w: %s, the installed driver may be older than %s", ErrNotAvailable, p.sym.Name, p.sym.Version))
	}
	return p.fn
}

func (p *proc[F]) bind() {
	addr := drv.resolve(p.sym.Name, p.sym.Version)
	if addr == 0 {
		return
	}
	registerFunc(&p.fn, addr)
	p.ok = true
}
