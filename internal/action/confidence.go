package action

import (
	"fmt"

	"github.com/lucidseq/poaconsensus/internal/poa"
)

// ConfidenceBand classifies a mutation's score into a high/medium/low
// confidence label using two configurable thresholds.
type ConfidenceBand struct {
	HighThreshold   float64
	MediumThreshold float64
}

// NewConfidenceBand builds a reporter with the given thresholds. A score
// strictly above HighThreshold is "high", strictly above MediumThreshold is
// "medium", and anything else is "low".
func NewConfidenceBand(highThreshold, mediumThreshold float64) *ConfidenceBand {
	return &ConfidenceBand{HighThreshold: highThreshold, MediumThreshold: mediumThreshold}
}

func (c *ConfidenceBand) Type() string { return "confidence_band" }

func (c *ConfidenceBand) Classify(m poa.Mutation, ctx *VariantContext) (*Report, error) {
	var label string
	switch {
	case m.Score > c.HighThreshold:
		label = "high"
	case m.Score > c.MediumThreshold:
		label = "medium"
	default:
		label = "low"
	}
	report := &Report{
		Type:    c.Type(),
		Label:   label,
		Message: fmt.Sprintf("%s at position %d (%c): score %.4f classified %s", m.Kind, m.Position, m.Base, m.Score, label),
	}
	if ctx != nil && ctx.Results != nil {
		ctx.Results[fmt.Sprintf("variant_%d", m.Position)] = label
	}
	return report, nil
}
