//nolint:testpackage // Testing the unexported key helpers requires same package access
package correctmatch

import "testing"

func TestNormalize(t *testing.T) {
	t.Helper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Simpson Chubby 2", "Simpson Chubby 2"},
		{"usage counter", "Simpson Chubby 2 (23)", "Simpson Chubby 2"},
		{"usage counter with x", "Astra SP (x4)", "Astra SP"},
		{"bracket counter", "Feather [12]", "Feather"},
		{"competition tag", "Stirling $CULT edition", "Stirling edition"},
		{"sample marker", "Tabac (sample)", "Tabac"},
		{"tester marker", "Fougere ( tester )", "Fougere"},
		{"whitespace collapse", "  DG   B15  ", "DG B15"},
		{"case preserved", "ZeNiTh B8", "ZeNiTh B8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Helper()

	inputs := []string{
		"Simpson Chubby 2 (23)",
		"Stirling $CULT",
		"DG B15 w/ C&H Zebra",
		"  spaced   out  ",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestKey_CaseInsensitive(t *testing.T) {
	t.Helper()

	if key("Simpson Chubby 2 (17)") != key("simpson CHUBBY 2") {
		t.Error("keys should agree after normalization and lowercasing")
	}
}
