package cudrv

import (
	"sync"

	"github.com/go-kit/log/level"
)

// cache records every resolution outcome for the process lifetime. Missing
// symbols are stored as zero so the loader is asked at most once per name.
// The same lock covers the driver version memo.
type cache struct {
	mu      sync.Mutex
	dl      loader
	entries map[string]uintptr
	version int
}

func newCache(dl loader) *cache {
	return &cache{
		dl:      dl,
		entries: make(map[string]uintptr),
		version: -1,
	}
}

// resolve returns the entry point address of name, zero when absent. The
// first call per name consults the loader, every later call is a map hit.
func (c *cache) resolve(name string, version Version) uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if addr, ok := c.entries[name]; ok {
		return addr
	}
	addr := c.lookup(name, version)
	c.entries[name] = addr
	return addr
}

// lookup asks the loader, degrading every failure into a warning and an
// absent entry. Callers decide whether absence is fatal.
func (c *cache) lookup(name string, version Version) uintptr {
	addr, err := c.dl.entryPoint(name, version)
	if err != nil {
		_ = level.Warn(Logger()).Log("msg", "cuda entry point not resolved", "symbol", name, "version", int(version), "err", err)
		return 0
	}
	_ = level.Debug(Logger()).Log("msg", "cuda entry point resolved", "symbol", name, "version", int(version))
	return addr
}

// cachedVersion reports the memoized driver version, false when not yet known.
func (c *cache) cachedVersion() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version, c.version >= 0
}

// storeVersion memoizes a successful driver version query. Negative values
// are never stored, a failed query stays retryable.
func (c *cache) storeVersion(v int) {
	if v < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version = v
}
