package preset

import (
	"testing"

	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

func TestDefaultMatchesLibraryDefaults(t *testing.T) {
	p, ok := Lookup(DefaultName)
	if !ok {
		t.Fatal("default preset missing")
	}
	if got, want := p.Options(0), pixelsort.DefaultOptions(); got != want {
		t.Errorf("default preset: got %+v, want %+v", got, want)
	}
}

func TestLookupUnknown(t *testing.T) {
	if p, ok := Lookup("does-not-exist"); ok {
		t.Errorf("Lookup should report unknown presets, got %+v", p)
	}
}

func TestNamesSortedAndKnown(t *testing.T) {
	names := Names()
	if len(names) != len(presets) {
		t.Fatalf("names: got %d, want %d", len(names), len(presets))
	}
	for i, n := range names {
		if i > 0 && names[i-1] >= n {
			t.Errorf("names not sorted: %v", names)
		}
		p, ok := Lookup(n)
		if !ok {
			t.Errorf("Lookup(%q) failed", n)
		}
		if p.Name != n {
			t.Errorf("preset %q carries name %q", n, p.Name)
		}
		if p.Mode.Kind == 0 {
			t.Errorf("preset %q has no mode", n)
		}
		if p.Description == "" {
			t.Errorf("preset %q has no description", n)
		}
	}
}

func TestOptionsCarriesWorkers(t *testing.T) {
	p, _ := Lookup("columns")
	opts := p.Options(3)
	if opts.Workers != 3 || opts.Direction != pixelsort.Column {
		t.Errorf("got %+v", opts)
	}
}
