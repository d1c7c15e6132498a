// Package action classifies accepted variant mutations into reportable
// results — the POA analogue of the teacher's IFTTT action executors.
package action

import "github.com/lucidseq/poaconsensus/internal/poa"

// VariantContext carries per-job state a Reporter may need beyond the
// mutation itself.
type VariantContext struct {
	JobID             string
	ConsensusSequence string
	Results           map[string]interface{}
}

// Report is the outcome of a Reporter classifying one mutation.
type Report struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// Reporter is the interface all reporting implementations must satisfy.
type Reporter interface {
	// Type returns the string key this reporter is registered under.
	Type() string
	// Classify inspects a mutation and returns a Report.
	Classify(m poa.Mutation, ctx *VariantContext) (*Report, error)
}
