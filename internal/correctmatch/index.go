package correctmatch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/sotd-matcher/internal/catalog"
	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/resolve"
)

// Resolved is a pre-resolved component or full-brush answer from the curated
// index.
type Resolved struct {
	Brand  string
	Model  string
	Fields []domain.ResolvedField
}

// Index is the loaded override index. Built once at startup, read-only
// after, safe for concurrent lookups.
type Index struct {
	brush   map[string]*Resolved
	handle  map[string]*Resolved
	knot    map[string]*Resolved
	curated map[string]curatedSplit
}

type curatedSplit struct {
	Handle string `yaml:"handle"`
	Knot   string `yaml:"knot"`
}

// indexFile is the YAML shape of correct_matches.yaml.
type indexFile struct {
	Brush  map[string]map[string][]string `yaml:"brush"`
	Handle map[string]map[string][]string `yaml:"handle"`
	Knot   map[string]map[string][]string `yaml:"knot"`
	Split  map[string]curatedSplit        `yaml:"split_brush"`
}

// Load reads the curated override file. A missing file is not an error and
// yields an empty index; a malformed file is a hard configuration error.
// Catalog data is used to attach authoritative fields to each entry at load
// time so lookups return fully resolved results.
func Load(path string, cat *catalog.Index) (*Index, error) {
	ix := &Index{
		brush:   make(map[string]*Resolved),
		handle:  make(map[string]*Resolved),
		knot:    make(map[string]*Resolved),
		curated: make(map[string]curatedSplit),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ix, nil
		}
		return nil, &catalog.ConfigError{File: path, Err: fmt.Errorf("read correct matches: %w", err)}
	}

	var file indexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &catalog.ConfigError{File: path, Err: fmt.Errorf("parse correct matches: %w", err)}
	}

	if err := ix.addSection(path, "brush", file.Brush, cat, ix.brush); err != nil {
		return nil, err
	}
	if err := ix.addSection(path, "handle", file.Handle, cat, ix.handle); err != nil {
		return nil, err
	}
	if err := ix.addSection(path, "knot", file.Knot, cat, ix.knot); err != nil {
		return nil, err
	}

	for input, split := range file.Split {
		if split.Handle == "" || split.Knot == "" {
			return nil, &catalog.ConfigError{File: path, Section: "split_brush", Brand: input,
				Err: fmt.Errorf("split entry needs both handle and knot")}
		}
		ix.curated[key(input)] = split
	}

	return ix, nil
}

func (ix *Index) addSection(path, section string, entries map[string]map[string][]string,
	cat *catalog.Index, dst map[string]*Resolved,
) error {
	for brand, models := range entries {
		for model, inputs := range models {
			if len(inputs) == 0 {
				return &catalog.ConfigError{File: path, Section: section, Brand: brand, Model: model,
					Err: fmt.Errorf("entry has no input strings")}
			}

			resolved := &Resolved{
				Brand:  brand,
				Model:  model,
				Fields: catalogFields(section, brand, model, cat),
			}
			for _, input := range inputs {
				dst[key(input)] = resolved
			}
		}
	}
	return nil
}

// catalogFields attaches authoritative catalog attributes to a curated
// entry. Absence of a catalog entry is fine; the curation itself is the
// answer.
func catalogFields(section, brand, model string, cat *catalog.Index) []domain.ResolvedField {
	if cat == nil {
		return nil
	}

	entry := findEntry(section, brand, model, cat)
	if entry == nil {
		return nil
	}
	return resolve.Fields("", entry.Authoritative, entry.Defaults)
}

func findEntry(section, brand, model string, cat *catalog.Index) *catalog.Entry {
	sections := []string{catalog.SectionKnownBrushes, catalog.SectionOtherBrushes}
	if section == "handle" {
		return nil
	}
	for _, name := range sections {
		s := cat.BrushSection(name)
		if s == nil {
			continue
		}
		for _, e := range s.Entries {
			if e.Brand == brand && e.Model == model {
				return e
			}
		}
	}
	return nil
}

// Lookup returns the curated full-brush result for the input, if present.
func (ix *Index) Lookup(input string) (*Resolved, bool) {
	r, ok := ix.brush[key(input)]
	return r, ok
}

// LookupHandle returns the curated handle result for one component.
func (ix *Index) LookupHandle(component string) (*Resolved, bool) {
	r, ok := ix.handle[key(component)]
	return r, ok
}

// LookupKnot returns the curated knot result for one component.
func (ix *Index) LookupKnot(component string) (*Resolved, bool) {
	r, ok := ix.knot[key(component)]
	return r, ok
}

// LookupSplit resolves an ordered component pair: the handle-role component
// and the knot-role component must both be curated for the pair to hit.
func (ix *Index) LookupSplit(handleText, knotText string) (*Resolved, *Resolved, bool) {
	h, hok := ix.LookupHandle(handleText)
	k, kok := ix.LookupKnot(knotText)
	if !hok || !kok {
		return nil, nil, false
	}
	return h, k, true
}

// CuratedSplit returns the curated decomposition of a full input string into
// handle and knot texts, if one exists.
func (ix *Index) CuratedSplit(input string) (handleText, knotText string, ok bool) {
	split, ok := ix.curated[key(input)]
	if !ok {
		return "", "", false
	}
	return split.Handle, split.Knot, true
}

// Size reports the number of distinct lookup keys, for startup logging.
func (ix *Index) Size() int {
	return len(ix.brush) + len(ix.handle) + len(ix.knot) + len(ix.curated)
}
