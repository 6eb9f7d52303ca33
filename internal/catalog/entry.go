package catalog

import "regexp"

// Pattern is one compiled match pattern together with its source text. The
// source text is reported in match provenance.
type Pattern struct {
	Raw string
	Re  *regexp.Regexp
}

// Entry identifies a brand and model with its ordered patterns and optional
// attribute values. Entries are built once at startup and immutable after.
//
// Authoritative attributes come from the entry body itself (fiber, knot_mm
// keys) and must never be overridden by user text. Defaults apply only when
// neither catalog nor user text supplies a value.
type Entry struct {
	Brand   string
	Model   string
	Section string

	Patterns []Pattern

	Authoritative map[string]string
	Defaults      map[string]string
}

// entrySpec is the YAML shape of a single catalog entry.
type entrySpec struct {
	Patterns []string          `yaml:"patterns"`
	Fiber    string            `yaml:"fiber"`
	KnotMM   string            `yaml:"knot_mm"`
	Defaults map[string]string `yaml:"defaults"`
}

// Hit is a successful catalog match: the entry plus the literal pattern that
// matched it.
type Hit struct {
	Entry   *Entry
	Pattern string
}
