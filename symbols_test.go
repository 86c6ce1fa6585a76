package hdf5

import "testing"

func TestCatalogueNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range funcSymbols {
		if seen[s.name] {
			t.Errorf("duplicate function symbol %q", s.name)
		}
		seen[s.name] = true
	}
	for _, g := range globalCells {
		if seen[g.Name()] {
			t.Errorf("global symbol %q collides with another catalogue entry", g.Name())
		}
		seen[g.Name()] = true
	}
}

func TestCatalogueEntriesBound(t *testing.T) {
	targets := make(map[any]string)
	for _, s := range funcSymbols {
		if s.fn == nil {
			t.Errorf("symbol %q has no bound entry-point variable", s.name)
			continue
		}
		if prev, dup := targets[s.fn]; dup {
			t.Errorf("symbols %q and %q bind the same variable", prev, s.name)
		}
		targets[s.fn] = s.name
	}
}

func TestOptionalEntriesHaveKnownCapability(t *testing.T) {
	for _, s := range funcSymbols {
		if s.optional {
			if s.capability == "" {
				t.Errorf("optional symbol %q has no capability", s.name)
				continue
			}
			if _, ok := capabilities[s.capability]; !ok {
				t.Errorf("optional symbol %q names unknown capability %q", s.name, s.capability)
			}
		} else if s.capability != "" {
			t.Errorf("required symbol %q must not carry a capability (%q)", s.name, s.capability)
		}
	}
}

func TestCapabilityRowsHaveConsumers(t *testing.T) {
	used := make(map[string]bool)
	for _, s := range funcSymbols {
		if s.optional {
			used[s.capability] = true
		}
	}
	for name := range capabilities {
		if !used[name] {
			t.Errorf("capability %q gates no catalogue entry", name)
		}
	}
}

func TestGlobalCellNamesFollowConvention(t *testing.T) {
	for _, g := range globalCells {
		name := g.Name()
		if len(name) < 3 || name[len(name)-2:] != "_g" {
			t.Errorf("global data symbol %q does not use the _g suffix", name)
		}
	}
}
