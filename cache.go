package hdf5

import "sync"

// symbolCache memoizes symbol resolution per name. Each name is resolved
// at most once for the life of the image; the first caller performs the
// lookup while concurrent callers for the same name block on the entry's
// once until it completes. Entries are never removed.
type symbolCache struct {
	lookup func(name string) (uintptr, error)

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once sync.Once
	addr uintptr
	err  error
}

func newSymbolCache(lookup func(string) (uintptr, error)) *symbolCache {
	return &symbolCache{
		lookup:  lookup,
		entries: make(map[string]*cacheEntry),
	}
}

// resolve returns the cached address for name, performing the underlying
// lookup on first use. A failed resolution is cached as well: the image
// does not change for the life of the process, so retrying cannot
// succeed.
func (c *symbolCache) resolve(name string) (uintptr, error) {
	c.mu.Lock()
	e, ok := c.entries[name]
	if !ok {
		e = &cacheEntry{}
		c.entries[name] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		addr, err := c.lookup(name)
		if err != nil {
			e.err = &SymbolError{Name: name, Err: ErrMissingSymbol}
			return
		}
		if addr == 0 {
			// Some loaders report success with a null address for
			// undefined weak symbols.
			e.err = &SymbolError{Name: name, Err: ErrMissingSymbol}
			return
		}
		e.addr = addr
	})
	return e.addr, e.err
}
