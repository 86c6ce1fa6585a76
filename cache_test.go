package hdf5

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestResolveOncePerName(t *testing.T) {
	var lookups int32
	cache := newSymbolCache(func(name string) (uintptr, error) {
		atomic.AddInt32(&lookups, 1)
		return 0x1000, nil
	})

	const workers = 32
	addrs := make([]uintptr, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			addrs[i], errs[i] = cache.resolve("H5open")
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&lookups); n != 1 {
		t.Errorf("expected exactly 1 lookup, got %d", n)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d: unexpected error: %v", i, errs[i])
		}
		if addrs[i] != 0x1000 {
			t.Errorf("worker %d: addr = %#x, want 0x1000", i, addrs[i])
		}
	}
}

func TestResolveMissingSymbolCached(t *testing.T) {
	var lookups int32
	cache := newSymbolCache(func(name string) (uintptr, error) {
		atomic.AddInt32(&lookups, 1)
		return 0, errors.New("undefined symbol")
	})

	for i := 0; i < 3; i++ {
		_, err := cache.resolve("H5Dget_num_chunks")
		if !errors.Is(err, ErrMissingSymbol) {
			t.Fatalf("attempt %d: err = %v, want ErrMissingSymbol", i, err)
		}
		var symErr *SymbolError
		if !errors.As(err, &symErr) || symErr.Name != "H5Dget_num_chunks" {
			t.Fatalf("attempt %d: err = %v, want SymbolError naming H5Dget_num_chunks", i, err)
		}
	}
	if n := atomic.LoadInt32(&lookups); n != 1 {
		t.Errorf("failed resolution not cached: %d lookups", n)
	}
}

func TestResolveNullAddressIsMissing(t *testing.T) {
	cache := newSymbolCache(func(name string) (uintptr, error) {
		return 0, nil
	})
	_, err := cache.resolve("H5open")
	if !errors.Is(err, ErrMissingSymbol) {
		t.Fatalf("err = %v, want ErrMissingSymbol", err)
	}
}

func TestResolveDistinctNames(t *testing.T) {
	addrs := map[string]uintptr{"H5open": 0x10, "H5close": 0x20}
	var lookups int32
	cache := newSymbolCache(func(name string) (uintptr, error) {
		atomic.AddInt32(&lookups, 1)
		return addrs[name], nil
	})

	for name, want := range addrs {
		for i := 0; i < 2; i++ {
			got, err := cache.resolve(name)
			if err != nil {
				t.Fatalf("resolve(%q): %v", name, err)
			}
			if got != want {
				t.Errorf("resolve(%q) = %#x, want %#x", name, got, want)
			}
		}
	}
	if n := atomic.LoadInt32(&lookups); n != 2 {
		t.Errorf("expected one lookup per name, got %d", n)
	}
}
