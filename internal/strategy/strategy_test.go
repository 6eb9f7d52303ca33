package strategy_test

import (
	"testing"

	"github.com/jonesrussell/sotd-matcher/internal/domain"
	"github.com/jonesrussell/sotd-matcher/internal/strategy"
	"github.com/jonesrussell/sotd-matcher/internal/testhelpers"
)

func newRegistry(t *testing.T) *strategy.Registry {
	t.Helper()
	return strategy.NewRegistry(testhelpers.LoadCatalog(t))
}

func TestRegistry_FixedOrder(t *testing.T) {
	t.Helper()

	want := []string{"known_brush", "declaration_grooming", "chisel_and_hound", "zenith", "other_brush"}
	got := newRegistry(t).Names()

	if len(got) != len(want) {
		t.Fatalf("got %d strategies, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("strategy[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistry_Classify(t *testing.T) {
	t.Helper()

	reg := newRegistry(t)

	tests := []struct {
		name     string
		input    string
		brand    string
		model    string
		strategy string
		claimed  bool
	}{
		{
			name:     "known catalog product",
			input:    "Simpson Chubby 2",
			brand:    "Simpson",
			model:    "Chubby 2",
			strategy: "known_brush",
			claimed:  true,
		},
		{
			name:     "explicit declaration batch",
			input:    "Declaration Grooming B15",
			brand:    "Declaration Grooming",
			model:    "B15",
			strategy: "known_brush",
			claimed:  true,
		},
		{
			name:     "bare batch code defaults to declaration",
			input:    "B15 fan",
			brand:    "Declaration Grooming",
			model:    "B15",
			strategy: "declaration_grooming",
			claimed:  true,
		},
		{
			name:     "lettered batch revision",
			input:    "b9a 28mm",
			brand:    "Declaration Grooming",
			model:    "B9A",
			strategy: "declaration_grooming",
			claimed:  true,
		},
		{
			name:    "batch code above range",
			input:   "B19 fan",
			claimed: false,
		},
		{
			name:    "competing maker blocks the bare b-code",
			input:   "Omega B6",
			claimed: false,
		},
		{
			name:     "chisel and hound version",
			input:    "Chisel & Hound v21",
			brand:    "Chisel & Hound",
			model:    "v21",
			strategy: "chisel_and_hound",
			claimed:  true,
		},
		{
			name:     "c&h shorthand",
			input:    "C&H v14 fanchurian",
			brand:    "Chisel & Hound",
			model:    "v14",
			strategy: "chisel_and_hound",
			claimed:  true,
		},
		{
			name:    "version below range",
			input:   "C&H v9",
			claimed: false,
		},
		{
			name:    "version above range",
			input:   "C&H v28",
			claimed: false,
		},
		{
			name:     "zenith with model token",
			input:    "Zenith B35 boar",
			brand:    "Zenith",
			model:    "B35",
			strategy: "zenith",
			claimed:  true,
		},
		{
			name:     "other brush catch-all",
			input:    "Stirling 26mm",
			brand:    "Stirling",
			model:    "Brush",
			strategy: "other_brush",
			claimed:  true,
		},
		{
			name:    "nothing claims",
			input:   "custom boar",
			claimed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cand := reg.Classify(tt.input)
			if !tt.claimed {
				if cand != nil {
					t.Fatalf("unexpected claim %+v", cand)
				}
				return
			}
			if cand == nil {
				t.Fatal("expected a claim")
			}
			if cand.Brand != tt.brand {
				t.Errorf("brand = %q, want %q", cand.Brand, tt.brand)
			}
			if tt.model != "" && cand.Model != tt.model {
				t.Errorf("model = %q, want %q", cand.Model, tt.model)
			}
			if tt.strategy != "" && cand.Strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", cand.Strategy, tt.strategy)
			}
		})
	}
}

func TestDeclarationGrooming_BrandDefaultFiber(t *testing.T) {
	t.Helper()

	cand := newRegistry(t).Classify("B15 fan")
	if cand == nil {
		t.Fatal("expected a claim")
	}
	if cand.Defaults["fiber"] != domain.FiberBadger {
		t.Errorf("default fiber = %q, want %q", cand.Defaults["fiber"], domain.FiberBadger)
	}
}

func TestZenith_BrandDefaultFiber(t *testing.T) {
	t.Helper()

	cand := newRegistry(t).Classify("Zenith scrubber")
	if cand == nil {
		t.Fatal("expected a claim")
	}
	if cand.Strategy != "zenith" {
		t.Fatalf("strategy = %q", cand.Strategy)
	}
	if cand.Defaults["fiber"] != domain.FiberBoar {
		t.Errorf("default fiber = %q, want %q", cand.Defaults["fiber"], domain.FiberBoar)
	}
}
