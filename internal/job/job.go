// Package job defines the unit of work the engine and HTTP surface operate
// on: a named batch of reads to fold into one consensus graph.
package job

import (
	"time"

	"github.com/lucidseq/poaconsensus/internal/poa"
)

// Job is one consensus request: a batch of reads folded into a single POA
// graph in the order given, using one scoring configuration.
//
// Jobs doing LOCAL or SEMIGLOBAL consensus on staggered subreads should set
// MinCoverage below the true basal coverage rather than equal to the read
// count — setting it too high truncates the consensus path at every
// position no single read happens to span alone.
type Job struct {
	ID          string
	Reads       []string
	ProfileName string
	Scoring     poa.ScoringConfig
	MinCoverage int
	FilterExpr  string
	ReceivedAt  time.Time
	Meta        map[string]string
}

// Result is the outcome of folding a Job's reads and extracting consensus.
type Result struct {
	JobID             string
	ConsensusSequence string
	Path              []poa.VertexID
	Mutations         []poa.Mutation
	Classifications   map[int]string // index into Mutations -> confidence band
	ReadsFolded       int
	GraphVertices     int
	DurationMs        int64
	Error             string
}
