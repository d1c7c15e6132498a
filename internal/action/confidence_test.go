package action

import (
	"testing"

	"github.com/lucidseq/poaconsensus/internal/poa"
)

func TestConfidenceBand_Classify(t *testing.T) {
	c := NewConfidenceBand(2.0, 0.0)
	tests := []struct {
		score float64
		want  string
	}{
		{3.0, "high"},
		{1.0, "medium"},
		{-1.0, "low"},
	}
	for _, tc := range tests {
		m := poa.Mutation{Kind: poa.Substitution, Position: 1, Base: 'A', Score: tc.score}
		rep, err := c.Classify(m, nil)
		if err != nil {
			t.Fatalf("Classify(%v) error: %v", tc.score, err)
		}
		if rep.Label != tc.want {
			t.Errorf("Classify(score=%v) label = %q, want %q", tc.score, rep.Label, tc.want)
		}
	}
}

func TestConfidenceBand_RecordsResult(t *testing.T) {
	c := NewConfidenceBand(2.0, 0.0)
	ctx := &VariantContext{Results: map[string]interface{}{}}
	m := poa.Mutation{Kind: poa.Insertion, Position: 5, Base: 'C', Score: 3.0}
	if _, err := c.Classify(m, ctx); err != nil {
		t.Fatalf("Classify error: %v", err)
	}
	if ctx.Results["variant_5"] != "high" {
		t.Errorf("Results[variant_5] = %v, want %q", ctx.Results["variant_5"], "high")
	}
}

func TestRegistry_GetUnknownType(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nope"); err == nil {
		t.Fatal("Get(unknown) = nil error, want error")
	}
}
