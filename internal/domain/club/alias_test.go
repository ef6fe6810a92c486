package club

import (
	"errors"
	"testing"
)

func synthetic(t *testing.T) *AliasTable {
	t.Helper()
	table, err := NewAliasTable([]Alias{
		{Variant: "Dinamo", Standard: "FC Dinamo 1948"},
		{Variant: "FC Dinamo", Standard: "FC Dinamo 1948"},
		{Variant: "CS Dinamo", Standard: "CS Dinamo Bucuresti"},
		{Variant: "ACS FC Dinamo", Standard: "ACS FC Dinamo Bucuresti"},
		{Variant: "Dinamo II", Standard: "FC Dinamo 1948 II"},
		{Variant: "FCSB", Standard: "FCSB"},
		{Variant: "Sepsi", Standard: "Sepsi OSK Sf. Gheorghe"},
		{Variant: "Sepsi", Standard: "Sepsi OSK Sf. Gheorghe"},
	})
	if err != nil {
		t.Fatalf("NewAliasTable: %v", err)
	}
	return table
}

func TestNormalizeMapsVariants(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(synthetic(t))
	cases := map[string]string{
		"Dinamo":        "FC Dinamo 1948",
		"  FC Dinamo ":  "FC Dinamo 1948",
		"CS Dinamo":     "CS Dinamo Bucuresti",
		"ACS FC Dinamo": "ACS FC Dinamo Bucuresti",
		"Dinamo II":     "FC Dinamo 1948 II",
		"Juventus":      "Juventus",
		"":              UnknownName,
		"   ":           UnknownName,
		"FCSB":          "FCSB",
		"Sepsi":         "Sepsi OSK Sf. Gheorghe",
	}
	for raw, want := range cases {
		if got := n.Normalize(raw); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	table := synthetic(t)
	n := NewNormalizer(table)
	for _, a := range table.Aliases() {
		once := n.Normalize(a.Variant)
		if twice := n.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", a.Variant, once, twice)
		}
	}
}

func TestSameFamilyClubsStayDistinct(t *testing.T) {
	t.Parallel()

	n := NewNormalizer(synthetic(t))
	seen := map[string]string{}
	for _, raw := range []string{"Dinamo", "CS Dinamo", "ACS FC Dinamo", "Dinamo II"} {
		canonical := n.Normalize(raw)
		if other, dup := seen[canonical]; dup {
			t.Fatalf("%q and %q merged into %q", raw, other, canonical)
		}
		seen[canonical] = raw
	}
}

func TestNewAliasTableRejectsConflicts(t *testing.T) {
	t.Parallel()

	_, err := NewAliasTable([]Alias{
		{Variant: "Rapid", Standard: "FC Rapid 1923"},
		{Variant: "Rapid", Standard: "Rapid Bucuresti"},
	})
	if !errors.Is(err, ErrAliasConflict) {
		t.Fatalf("expected ErrAliasConflict, got %v", err)
	}

	_, err = NewAliasTable([]Alias{
		{Variant: "U Cluj", Standard: "Universitatea Cluj"},
		{Variant: "Universitatea Cluj", Standard: "FC Universitatea Cluj"},
	})
	if !errors.Is(err, ErrAliasConflict) {
		t.Fatalf("expected chain to be rejected, got %v", err)
	}
}

func TestNilNormalizerPassesThrough(t *testing.T) {
	t.Parallel()

	var n *Normalizer
	if got := n.Normalize(" Petrolul "); got != "Petrolul" {
		t.Fatalf("got %q", got)
	}
}

func TestIsResolvable(t *testing.T) {
	t.Parallel()

	id := func(v int64) *int64 { return &v }
	cases := []struct {
		id   *int64
		name string
		want bool
	}{
		{id(301), "FCSB", true},
		{nil, "FCSB", false},
		{id(0), "FCSB", false},
		{id(515), "Without Club", false},
		{id(123), "FCSB", false},
		{id(9999), "Retired", false},
		{id(9999), "Career break", false},
	}
	for _, tc := range cases {
		if got := IsResolvable(tc.id, tc.name); got != tc.want {
			t.Fatalf("IsResolvable(%v, %q) = %v, want %v", tc.id, tc.name, got, tc.want)
		}
	}
}
