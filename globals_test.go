package hdf5

import (
	"sync"
	"testing"
	"unsafe"
)

func TestGlobalCellReadsDataSymbol(t *testing.T) {
	var backing Hid = 50331969 // an arbitrary live identifier
	syms := fakeSymbols()
	syms["H5T_NATIVE_INT_g"] = uintptr(unsafe.Pointer(&backing))
	swapLib(t, &libraryState{open: fakeOpen(syms), boot: fakeBoot(VersionInfo{1, 12, 0})})

	cell := &GlobalHid{name: "H5T_NATIVE_INT_g"}
	if got := cell.Value(); got != backing {
		t.Fatalf("Value() = %d, want %d", got, backing)
	}

	// Immutable after first read, even if the backing symbol changes.
	backing = 0
	if got := cell.Value(); got != 50331969 {
		t.Errorf("second Value() = %d, want the first computed value", got)
	}
}

func TestGlobalCellAbsentSymbolIsSentinel(t *testing.T) {
	swapLib(t, &libraryState{open: fakeOpen(fakeSymbols()), boot: fakeBoot(VersionInfo{1, 12, 0})})

	cell := &GlobalHid{name: "H5T_NONEXISTENT_g"}
	for i := 0; i < 2; i++ {
		if got := cell.Value(); got != InvalidHid {
			t.Errorf("read %d: Value() = %d, want InvalidHid", i, got)
		}
	}
}

func TestGlobalCellPoisonedLibraryIsSentinel(t *testing.T) {
	open := func(cfg Config, path string) (image, error) {
		return image{}, &LoadError{Path: path, Err: ErrNotFound}
	}
	swapLib(t, &libraryState{open: open, boot: fakeBoot(VersionInfo{})})

	cell := &GlobalHid{name: "H5T_NATIVE_INT_g"}
	if got := cell.Value(); got != InvalidHid {
		t.Errorf("Value() = %d, want InvalidHid when the library cannot load", got)
	}
}

func TestGlobalCellConcurrentFirstRead(t *testing.T) {
	var backing Hid = 216
	syms := fakeSymbols()
	syms["H5T_IEEE_F64LE_g"] = uintptr(unsafe.Pointer(&backing))
	swapLib(t, &libraryState{open: fakeOpen(syms), boot: fakeBoot(VersionInfo{1, 12, 0})})

	cell := &GlobalHid{name: "H5T_IEEE_F64LE_g"}
	const readers = 32
	got := make([]Hid, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = cell.Value()
		}(i)
	}
	wg.Wait()

	for i := 0; i < readers; i++ {
		if got[i] != 216 {
			t.Errorf("reader %d observed %d, want 216", i, got[i])
		}
	}
}
