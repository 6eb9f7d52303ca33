// Package domain holds the shared value types of the matcher service.
package domain

import "time"

// MatchKind describes how a result was produced.
const (
	// MatchExact means the input hit the curated correct-match index.
	MatchExact = "exact"
	// MatchPattern means a catalog pattern matched the input.
	MatchPattern = "pattern"
	// MatchStrategyFallback means a fallback strategy claimed the input
	// after splitting failed to produce a full match.
	MatchStrategyFallback = "strategy_fallback"
	// MatchUnmatched means no stage claimed the input.
	MatchUnmatched = "unmatched"
)

// Field source tags record the provenance of a resolved attribute.
const (
	SourceCatalog      = "catalog"
	SourceUserParsed   = "user_parsed"
	SourceBrandDefault = "brand_default"
	SourceConflict     = "conflict"
)

// Component order intents. HandlePrimary means the handle-like component
// appeared first in the original text.
const (
	OrderHandlePrimary = "handle_primary"
	OrderKnotPrimary   = "knot_primary"
)

// Well-known fiber values.
const (
	FiberBadger    = "Badger"
	FiberBoar      = "Boar"
	FiberSynthetic = "Synthetic"
	FiberHorse     = "Horse"
	FiberMixed     = "Mixed Badger/Boar"
)

// Field names resolved by the engine.
const (
	FieldFiber  = "fiber"
	FieldKnotMM = "knot_mm"
)

// ResolvedField is one output attribute with its provenance. When Source is
// SourceConflict the catalog value won and Rejected preserves the user value
// for audit.
type ResolvedField struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Source   string `json:"source"`
	Rejected string `json:"rejected,omitempty"`
}

// BrushComponent is one resolved half of a composite brush, or the
// informational decomposition of a single recognized product.
type BrushComponent struct {
	Brand    string          `json:"brand,omitempty"`
	Model    string          `json:"model,omitempty"`
	Fields   []ResolvedField `json:"fields,omitempty"`
	Strategy string          `json:"strategy,omitempty"`
	Pattern  string          `json:"pattern,omitempty"`
}

// MatchResult is the final output of one dispatch call.
//
// If Brand and Model are both set the result is a single recognized catalog
// product; Handle and Knot, when present, decompose that same product. If
// Brand and Model are empty the result is a genuine two-part composite and
// Handle/Knot are independently resolved (nil when unresolved).
type MatchResult struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`

	Brand string `json:"brand,omitempty"`
	Model string `json:"model,omitempty"`

	Handle *BrushComponent `json:"handle,omitempty"`
	Knot   *BrushComponent `json:"knot,omitempty"`

	Fields         []ResolvedField `json:"fields,omitempty"`
	ComponentOrder string          `json:"component_order,omitempty"`

	MatchKind string `json:"match_kind"`
	Pattern   string `json:"pattern,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
}

// IsComposite reports whether the result is a two-part composite rather than
// a single recognized product.
func (r *MatchResult) IsComposite() bool {
	return r.Brand == "" && r.Model == "" && (r.Handle != nil || r.Knot != nil)
}

// Field returns the resolved field with the given name, if present.
func (r *MatchResult) Field(name string) (ResolvedField, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return ResolvedField{}, false
}

// RawCandidate is one free-text product mention as written by the upstream
// extraction stage: already isolated to a single product field of one post.
type RawCandidate struct {
	ID        string    `db:"id"         json:"id"`
	Month     string    `db:"month"      json:"month"` // YYYY-MM
	Field     string    `db:"field"      json:"field"` // razor, blade, brush, soap
	Author    string    `db:"author"     json:"author,omitempty"`
	Text      string    `db:"text"       json:"text"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Candidate field constants.
const (
	FieldTypeRazor = "razor"
	FieldTypeBlade = "blade"
	FieldTypeBrush = "brush"
	FieldTypeSoap  = "soap"
)

// MatchRecord is the persisted audit row for one MatchResult.
type MatchRecord struct {
	ID          string    `db:"id"           json:"id"`
	CandidateID string    `db:"candidate_id" json:"candidate_id"`
	Month       string    `db:"month"        json:"month"`
	Input       string    `db:"input"        json:"input"`
	Brand       string    `db:"brand"        json:"brand,omitempty"`
	Model       string    `db:"model"        json:"model,omitempty"`
	HandleBrand string    `db:"handle_brand" json:"handle_brand,omitempty"`
	HandleModel string    `db:"handle_model" json:"handle_model,omitempty"`
	KnotBrand   string    `db:"knot_brand"   json:"knot_brand,omitempty"`
	KnotModel   string    `db:"knot_model"   json:"knot_model,omitempty"`
	Fiber       string    `db:"fiber"        json:"fiber,omitempty"`
	KnotMM      string    `db:"knot_mm"      json:"knot_mm,omitempty"`
	MatchKind   string    `db:"match_kind"   json:"match_kind"`
	Pattern     string    `db:"pattern"      json:"pattern,omitempty"`
	Strategy    string    `db:"strategy"     json:"strategy,omitempty"`
	MatchedAt   time.Time `db:"matched_at"   json:"matched_at"`
}
