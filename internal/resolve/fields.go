// Package resolve implements per-field attribute resolution. Resolution is a
// pure function over the three possible sources of a value: authoritative
// catalog data, attributes parsed from the user's own text, and brand
// defaults.
package resolve

import (
	"strings"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
)

// Field resolves one attribute. Precedence, evaluated independently per
// field:
//
//  1. An authoritative catalog value always wins. A differing user value is
//     recorded as a rejected conflict but never changes the output value.
//  2. Without a catalog value, the user-parsed value wins.
//  3. Otherwise a brand default applies.
//  4. With no source at all the field stays unset (ok=false).
//
// Values are normalized before comparison so lexically different but
// semantically equal values do not raise spurious conflicts.
func Field(name, catalogValue, userValue, brandDefault string) (domain.ResolvedField, bool) {
	switch {
	case catalogValue != "":
		f := domain.ResolvedField{Name: name, Value: catalogValue, Source: domain.SourceCatalog}
		if userValue != "" && !equivalent(name, catalogValue, userValue) {
			f.Source = domain.SourceConflict
			f.Rejected = userValue
		}
		return f, true

	case userValue != "":
		return domain.ResolvedField{Name: name, Value: userValue, Source: domain.SourceUserParsed}, true

	case brandDefault != "":
		return domain.ResolvedField{Name: name, Value: brandDefault, Source: domain.SourceBrandDefault}, true
	}

	return domain.ResolvedField{}, false
}

// Fields resolves the standard brush attributes (fiber, knot_mm) for a
// matched entry against the user's text.
func Fields(text string, authoritative, defaults map[string]string) []domain.ResolvedField {
	resolved := make([]domain.ResolvedField, 0, 2)

	if f, ok := Field(domain.FieldFiber, authoritative["fiber"], ParseFiber(text), defaults["fiber"]); ok {
		resolved = append(resolved, f)
	}
	if f, ok := Field(domain.FieldKnotMM, authoritative["knot_mm"], ParseKnotMM(text), defaults["knot_mm"]); ok {
		resolved = append(resolved, f)
	}

	return resolved
}

// equivalent compares two values for the given field after normalization.
func equivalent(name, a, b string) bool {
	if name == domain.FieldFiber {
		return CanonicalFiber(a) == CanonicalFiber(b)
	}
	return normalizeValue(a) == normalizeValue(b)
}

func normalizeValue(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
