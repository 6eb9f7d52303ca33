package correctmatch_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/testhelpers"
)

func TestIndex_Lookup(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix := testhelpers.LoadOverrides(t, cat)

	tests := []struct {
		name  string
		input string
		brand string
		model string
		found bool
	}{
		{"curated input", "Simpson Chubby 2", "Simpson", "Chubby 2", true},
		{"case insensitive", "simpson chubby 2", "Simpson", "Chubby 2", true},
		{"noise stripped", "Simpson Chubby 2 (17)", "Simpson", "Chubby 2", true},
		{"not curated", "Simpson Chubby 3", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, ok := ix.Lookup(tt.input)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if !ok {
				return
			}
			if r.Brand != tt.brand || r.Model != tt.model {
				t.Errorf("got %s / %s, want %s / %s", r.Brand, r.Model, tt.brand, tt.model)
			}
		})
	}
}

func TestIndex_LookupAttachesCatalogFields(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix := testhelpers.LoadOverrides(t, cat)

	r, ok := ix.Lookup("Simpson Chubby 2")
	if !ok {
		t.Fatal("expected a curated hit")
	}

	var fiber, size string
	for _, f := range r.Fields {
		switch f.Name {
		case domain.FieldFiber:
			fiber = f.Value
		case domain.FieldKnotMM:
			size = f.Value
		}
	}
	if fiber != domain.FiberBadger {
		t.Errorf("fiber = %q, want %q", fiber, domain.FiberBadger)
	}
	if size != "27" {
		t.Errorf("knot_mm = %q, want 27", size)
	}
}

func TestIndex_ComponentLookups(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix := testhelpers.LoadOverrides(t, cat)

	if r, ok := ix.LookupKnot("dg b15"); !ok || r.Model != "B15" {
		t.Errorf("LookupKnot(dg b15) = %+v, %v; want B15 hit", r, ok)
	}
	if r, ok := ix.LookupHandle("DG Washington"); !ok || r.Model != "Washington" {
		t.Errorf("LookupHandle(DG Washington) = %+v, %v; want Washington hit", r, ok)
	}
	if _, ok := ix.LookupHandle("dg b15"); ok {
		t.Error("knot entry must not satisfy a handle lookup")
	}
}

func TestIndex_LookupSplit(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix := testhelpers.LoadOverrides(t, cat)

	h, k, ok := ix.LookupSplit("DG Washington", "DG B15")
	if !ok {
		t.Fatal("expected a pair hit when both components are curated")
	}
	if h.Model != "Washington" || k.Model != "B15" {
		t.Errorf("pair = %s / %s, want Washington / B15", h.Model, k.Model)
	}

	if _, _, ok := ix.LookupSplit("DG Washington", "not curated"); ok {
		t.Error("pair must miss when the knot side is not curated")
	}
	if _, _, ok := ix.LookupSplit("DG B15", "DG Washington"); ok {
		t.Error("pair lookup is role-ordered")
	}
}

func TestIndex_CuratedSplit(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix := testhelpers.LoadOverrides(t, cat)

	handle, knot, ok := ix.CuratedSplit("dg washington w/ c&h zebra")
	if !ok {
		t.Fatal("expected a curated split")
	}
	if handle != "DG Washington" || knot != "C&H Zebra" {
		t.Errorf("split = %q / %q, want DG Washington / C&H Zebra", handle, knot)
	}
}

func TestLoad_MissingFileIsEmptyIndex(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	ix, err := correctmatch.Load(filepath.Join(t.TempDir(), "absent.yaml"), cat)
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if ix.Size() != 0 {
		t.Errorf("size = %d, want 0", ix.Size())
	}
	if _, ok := ix.Lookup("anything"); ok {
		t.Error("empty index must not match")
	}
}

func TestLoad_MalformedFileIsConfigError(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	path := filepath.Join(t.TempDir(), "correct_matches.yaml")
	if err := os.WriteFile(path, []byte("brush: [not, a, mapping"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := correctmatch.Load(path, cat)
	var cfgErr *catalog.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want *catalog.ConfigError, got %v", err)
	}
}

func TestLoad_UnreadableFileIsConfigError(t *testing.T) {
	t.Helper()

	// A path that exists but cannot be read as a file.
	cat := testhelpers.LoadCatalog(t)
	_, err := correctmatch.Load(t.TempDir(), cat)

	var cfgErr *catalog.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want *catalog.ConfigError, got %v", err)
	}
	if cfgErr.File == "" {
		t.Error("config error must carry the file path")
	}
}

func TestLoad_SplitNeedsBothSides(t *testing.T) {
	t.Helper()

	cat := testhelpers.LoadCatalog(t)
	path := filepath.Join(t.TempDir(), "correct_matches.yaml")
	doc := "split_brush:\n  \"some brush\":\n    handle: \"only a handle\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := correctmatch.Load(path, cat)
	var cfgErr *catalog.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("want *catalog.ConfigError, got %v", err)
	}
}
