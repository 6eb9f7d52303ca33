// Package testhelpers provides shared fixtures for the matcher test suites.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/correctmatch"
)

// BrushesYAML is a compact but realistic brush catalog covering both trust
// sections and the brands the strategy suite exercises.
const BrushesYAML = `
known_brushes:
  Simpson:
    Chubby 2:
      patterns:
        - simp.*chubby\s*2\b
        - simp.*ch2\b
      fiber: Badger
      knot_mm: "27"
    Trafalgar T2:
      patterns:
        - simp.*traf.*t?2\b
      fiber: Synthetic
      knot_mm: "24"
  Declaration Grooming:
    B3:
      patterns:
        - declaration.*\bb3\b
      fiber: Badger
      knot_mm: "28"
    B15:
      patterns:
        - declaration.*\bb15\b
      fiber: Badger
      knot_mm: "28"
  Chisel & Hound:
    Zebra:
      patterns:
        - chis.*[fh]ou.*zebra
        - \bc(?:&|and|\+)h\b.*zebra
      fiber: Badger
      knot_mm: "26"
  Zenith:
    B8:
      patterns:
        - zenith.*b8\b
      fiber: Boar
      knot_mm: "28"
  Semogue:
    "610":
      patterns:
        - semogue.*610
      fiber: Boar
      knot_mm: "21"
other_brushes:
  Stirling:
    Brush:
      patterns:
        - stirling
      defaults:
        fiber: Badger
  Yaqi:
    Brush:
      patterns:
        - yaqi
      defaults:
        fiber: Synthetic
`

// HandlesYAML covers artisan and production handle makers.
const HandlesYAML = `
artisan_handles:
  Declaration Grooming:
    Washington:
      patterns:
        - declaration.*washington
    Unspecified:
      patterns:
        - declaration
        - \bdg\b
  Chisel & Hound:
    Zebra:
      patterns:
        - chis.*[fh]ou.*zebra
        - \bc(?:&|and|\+)h\b.*zebra
  Dogwood Handcrafts:
    Unspecified:
      patterns:
        - dogwood
production_handles:
  Simpson:
    Unspecified:
      patterns:
        - simpson
  Zenith:
    Unspecified:
      patterns:
        - zenith
`

// CorrectMatchesYAML is a small curated override file.
const CorrectMatchesYAML = `
brush:
  Simpson:
    Chubby 2:
      - "Simpson Chubby 2"
handle:
  Declaration Grooming:
    Washington:
      - "DG Washington"
knot:
  Declaration Grooming:
    B15:
      - "DG B15"
  Chisel & Hound:
    Zebra:
      - "C&H Zebra"
split_brush:
  "DG Washington w/ C&H Zebra":
    handle: "DG Washington"
    knot: "C&H Zebra"
`

// WriteCatalogDir writes the standard catalog fixtures to a temp dir and
// returns its path.
func WriteCatalogDir(t *testing.T) string {
	t.Helper()
	return WriteCatalogFiles(t, BrushesYAML, HandlesYAML)
}

// WriteCatalogFiles writes the given catalog YAML documents to a temp dir.
func WriteCatalogFiles(t *testing.T, brushes, handles string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "brushes.yaml"), brushes)
	writeFile(t, filepath.Join(dir, "handles.yaml"), handles)
	return dir
}

// LoadCatalog builds a catalog index from the standard fixtures.
func LoadCatalog(t *testing.T) *catalog.Index {
	t.Helper()
	cat, err := catalog.Load(WriteCatalogDir(t))
	if err != nil {
		t.Fatalf("load catalog fixtures: %v", err)
	}
	return cat
}

// LoadOverrides builds a correct-match index from the standard fixtures.
func LoadOverrides(t *testing.T, cat *catalog.Index) *correctmatch.Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "correct_matches.yaml")
	writeFile(t, path, CorrectMatchesYAML)
	ix, err := correctmatch.Load(path, cat)
	if err != nil {
		t.Fatalf("load correct matches: %v", err)
	}
	return ix
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
