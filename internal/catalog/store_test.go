//nolint:testpackage // Testing section internals requires same package access
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testBrushes = `
known_brushes:
  Simpson:
    Chubby 2:
      patterns:
        - simp.*chubby\s*2\b
        - simp.*ch2\b
      fiber: Badger
      knot_mm: "27"
  Stirling:
    Special Badger:
      patterns:
        - stirling.*special
      fiber: Badger
other_brushes:
  Stirling:
    Brush:
      patterns:
        - stirling
      defaults:
        fiber: Badger
`

const testHandles = `
artisan_handles:
  Dogwood Handcrafts:
    Unspecified:
      patterns:
        - dogwood
production_handles:
  Simpson:
    Unspecified:
      patterns:
        - simpson
`

func writeCatalog(t *testing.T, brushes, handles string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range map[string]string{"brushes.yaml": brushes, "handles.yaml": handles} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func loadTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Load(writeCatalog(t, testBrushes, testHandles))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return ix
}

func TestMatchBrush_CaseInsensitive(t *testing.T) {
	t.Helper()

	ix := loadTestIndex(t)

	hit, ok := ix.MatchBrush("SIMPSON chubby 2 super")
	if !ok {
		t.Fatal("expected a match")
	}
	if hit.Entry.Brand != "Simpson" || hit.Entry.Model != "Chubby 2" {
		t.Errorf("got %s / %s", hit.Entry.Brand, hit.Entry.Model)
	}
	if hit.Pattern != `simp.*chubby\s*2\b` {
		t.Errorf("pattern provenance = %q", hit.Pattern)
	}
}

func TestMatchBrush_TrustOrderAcrossSections(t *testing.T) {
	t.Helper()

	ix := loadTestIndex(t)

	// Both sections have a Stirling entry that matches; the known_brushes
	// one must win.
	hit, ok := ix.MatchBrush("Stirling Special shave brush")
	if !ok {
		t.Fatal("expected a match")
	}
	if hit.Entry.Section != SectionKnownBrushes {
		t.Errorf("section = %s, want %s", hit.Entry.Section, SectionKnownBrushes)
	}
	if hit.Entry.Model != "Special Badger" {
		t.Errorf("model = %s, want Special Badger", hit.Entry.Model)
	}

	// Without the specific trigger the catch-all applies.
	hit, ok = ix.MatchBrush("Stirling something else")
	if !ok {
		t.Fatal("expected a catch-all match")
	}
	if hit.Entry.Section != SectionOtherBrushes {
		t.Errorf("section = %s, want %s", hit.Entry.Section, SectionOtherBrushes)
	}
}

func TestMatchBrush_FileOrderWithinSection(t *testing.T) {
	t.Helper()

	brushes := `
known_brushes:
  First:
    Model A:
      patterns:
        - shared\s*trigger
  Second:
    Model B:
      patterns:
        - shared\s*trigger
other_brushes:
  Filler:
    Brush:
      patterns:
        - filler
`
	ix, err := Load(writeCatalog(t, brushes, testHandles))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	hit, ok := ix.MatchBrush("shared trigger")
	if !ok {
		t.Fatal("expected a match")
	}
	if hit.Entry.Brand != "First" {
		t.Errorf("brand = %s, want First (file order)", hit.Entry.Brand)
	}
}

func TestMatchHandle(t *testing.T) {
	t.Helper()

	ix := loadTestIndex(t)

	hit, ok := ix.MatchHandle("Dogwood custom")
	if !ok {
		t.Fatal("expected a handle match")
	}
	if hit.Entry.Brand != "Dogwood Handcrafts" {
		t.Errorf("brand = %s", hit.Entry.Brand)
	}
	if hit.Entry.Section != SectionArtisanHandles {
		t.Errorf("section = %s", hit.Entry.Section)
	}

	if _, ok := ix.MatchHandle("no such maker"); ok {
		t.Error("unexpected handle match")
	}
}

func TestLoad_AuthoritativeAndDefaults(t *testing.T) {
	t.Helper()

	ix := loadTestIndex(t)

	hit, _ := ix.MatchBrush("simpson ch2")
	if hit.Entry.Authoritative["fiber"] != "Badger" {
		t.Errorf("authoritative fiber = %q", hit.Entry.Authoritative["fiber"])
	}
	if hit.Entry.Authoritative["knot_mm"] != "27" {
		t.Errorf("authoritative knot_mm = %q", hit.Entry.Authoritative["knot_mm"])
	}

	hit, _ = ix.MatchBrush("stirling whatever")
	if hit.Entry.Defaults["fiber"] != "Badger" {
		t.Errorf("default fiber = %q", hit.Entry.Defaults["fiber"])
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Helper()

	tests := []struct {
		name    string
		brushes string
	}{
		{
			name:    "missing required section",
			brushes: "known_brushes:\n  A:\n    B:\n      patterns:\n        - a\n",
		},
		{
			name:    "unknown section",
			brushes: testBrushes + "\nmystery_section:\n  A:\n    B:\n      patterns:\n        - a\n",
		},
		{
			name:    "entry without patterns",
			brushes: "known_brushes:\n  A:\n    B:\n      fiber: Badger\nother_brushes:\n  C:\n    D:\n      patterns:\n        - c\n",
		},
		{
			name:    "invalid pattern",
			brushes: "known_brushes:\n  A:\n    B:\n      patterns:\n        - \"(unclosed\"\nother_brushes:\n  C:\n    D:\n      patterns:\n        - c\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.brushes, testHandles))
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("want *ConfigError, got %v", err)
			}
			if cfgErr.File == "" {
				t.Error("config error should name the file")
			}
		})
	}
}

func TestStats(t *testing.T) {
	t.Helper()

	stats := loadTestIndex(t).Stats()
	if stats[SectionKnownBrushes] != 2 {
		t.Errorf("known_brushes = %d, want 2", stats[SectionKnownBrushes])
	}
	if stats[SectionOtherBrushes] != 1 {
		t.Errorf("other_brushes = %d, want 1", stats[SectionOtherBrushes])
	}
	if stats[SectionArtisanHandles] != 1 {
		t.Errorf("artisan_handles = %d, want 1", stats[SectionArtisanHandles])
	}
}
