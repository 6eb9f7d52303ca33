// Package catalog loads the immutable product reference data the matching
// engine runs against. Catalogs are YAML files grouped into trust-ordered
// sections; every pattern is compiled exactly once at startup and a pattern
// that fails to compile aborts engine construction.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Catalog file names under the catalog directory.
const (
	brushesFile = "brushes.yaml"
	handlesFile = "handles.yaml"
)

// Section trust order, most specific first. Sections are tried in this
// order; entries within a section are tried in file order.
var (
	brushSectionOrder  = []string{SectionKnownBrushes, SectionOtherBrushes}
	handleSectionOrder = []string{SectionArtisanHandles, SectionProductionHandles}
)

// Section names.
const (
	SectionKnownBrushes      = "known_brushes"
	SectionOtherBrushes      = "other_brushes"
	SectionArtisanHandles    = "artisan_handles"
	SectionProductionHandles = "production_handles"
)

// Section is a named group of catalog entries sharing one trust level.
type Section struct {
	Name    string
	Entries []*Entry
}

// Index is the compiled, read-only catalog. Safe for concurrent use.
type Index struct {
	brushSections  []*Section
	handleSections []*Section
}

// Load reads and compiles all catalog files under dir. Any malformed pattern
// or file is a hard *ConfigError.
func Load(dir string) (*Index, error) {
	brushes, err := loadFile(filepath.Join(dir, brushesFile), brushSectionOrder)
	if err != nil {
		return nil, err
	}

	handles, err := loadFile(filepath.Join(dir, handlesFile), handleSectionOrder)
	if err != nil {
		return nil, err
	}

	return &Index{
		brushSections:  brushes,
		handleSections: handles,
	}, nil
}

// MatchBrush tries the brush sections in trust order and returns the first
// hit.
func (ix *Index) MatchBrush(input string) (*Hit, bool) {
	return matchSections(ix.brushSections, input)
}

// MatchBrushSection matches against a single named brush section.
func (ix *Index) MatchBrushSection(name, input string) (*Hit, bool) {
	for _, s := range ix.brushSections {
		if s.Name == name {
			return matchSections([]*Section{s}, input)
		}
	}
	return nil, false
}

// MatchHandle tries the handle reference sections in trust order.
func (ix *Index) MatchHandle(input string) (*Hit, bool) {
	return matchSections(ix.handleSections, input)
}

// BrushSection returns the named brush section, or nil.
func (ix *Index) BrushSection(name string) *Section {
	for _, s := range ix.brushSections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Stats reports entry counts per section, for the validate command and the
// stats endpoint.
func (ix *Index) Stats() map[string]int {
	stats := make(map[string]int)
	for _, s := range ix.brushSections {
		stats[s.Name] = len(s.Entries)
	}
	for _, s := range ix.handleSections {
		stats[s.Name] = len(s.Entries)
	}
	return stats
}

func matchSections(sections []*Section, input string) (*Hit, bool) {
	folded := FoldAccents(input)
	for _, section := range sections {
		for _, entry := range section.Entries {
			for _, p := range entry.Patterns {
				if p.Re.MatchString(folded) {
					return &Hit{Entry: entry, Pattern: p.Raw}, true
				}
			}
		}
	}
	return nil, false
}

// loadFile parses one catalog file. YAML mapping order is preserved so that
// entries match in file order; section order is fixed by sectionOrder
// regardless of their position in the file.
func loadFile(path string, sectionOrder []string) ([]*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{File: path, Err: fmt.Errorf("read catalog file: %w", err)}
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigError{File: path, Err: fmt.Errorf("parse catalog file: %w", err)}
	}
	if len(doc.Content) == 0 {
		return nil, &ConfigError{File: path, Err: fmt.Errorf("empty catalog file")}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, &ConfigError{File: path, Err: fmt.Errorf("top level must be a mapping of sections")}
	}

	found := make(map[string]*Section)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		section, sErr := loadSection(path, name, root.Content[i+1])
		if sErr != nil {
			return nil, sErr
		}
		found[name] = section
	}

	sections := make([]*Section, 0, len(sectionOrder))
	for _, name := range sectionOrder {
		section, ok := found[name]
		if !ok {
			return nil, &ConfigError{File: path, Section: name, Err: fmt.Errorf("missing required section")}
		}
		sections = append(sections, section)
		delete(found, name)
	}
	for name := range found {
		return nil, &ConfigError{File: path, Section: name, Err: fmt.Errorf("unknown section")}
	}

	return sections, nil
}

// loadSection walks section -> brand -> model -> entry in document order.
func loadSection(path, name string, node *yaml.Node) (*Section, error) {
	if node.Kind != yaml.MappingNode {
		return nil, &ConfigError{File: path, Section: name, Err: fmt.Errorf("section must be a mapping of brands")}
	}

	section := &Section{Name: name}
	for i := 0; i+1 < len(node.Content); i += 2 {
		brand := node.Content[i].Value
		models := node.Content[i+1]
		if models.Kind != yaml.MappingNode {
			return nil, &ConfigError{File: path, Section: name, Brand: brand,
				Err: fmt.Errorf("brand must be a mapping of models")}
		}

		for j := 0; j+1 < len(models.Content); j += 2 {
			model := models.Content[j].Value
			entry, err := loadEntry(path, name, brand, model, models.Content[j+1])
			if err != nil {
				return nil, err
			}
			section.Entries = append(section.Entries, entry)
		}
	}

	return section, nil
}

func loadEntry(path, section, brand, model string, node *yaml.Node) (*Entry, error) {
	var spec entrySpec
	if err := node.Decode(&spec); err != nil {
		return nil, &ConfigError{File: path, Section: section, Brand: brand, Model: model,
			Err: fmt.Errorf("decode entry: %w", err)}
	}
	if len(spec.Patterns) == 0 {
		return nil, &ConfigError{File: path, Section: section, Brand: brand, Model: model,
			Err: fmt.Errorf("entry has no patterns")}
	}

	entry := &Entry{
		Brand:         brand,
		Model:         model,
		Section:       section,
		Authoritative: make(map[string]string),
		Defaults:      spec.Defaults,
	}
	if spec.Fiber != "" {
		entry.Authoritative["fiber"] = spec.Fiber
	}
	if spec.KnotMM != "" {
		entry.Authoritative["knot_mm"] = spec.KnotMM
	}

	for _, raw := range spec.Patterns {
		re, err := regexp.Compile("(?i)" + raw)
		if err != nil {
			return nil, &ConfigError{File: path, Section: section, Brand: brand, Model: model,
				Err: fmt.Errorf("compile pattern %q: %w", raw, err)}
		}
		entry.Patterns = append(entry.Patterns, Pattern{Raw: raw, Re: re})
	}

	return entry, nil
}
