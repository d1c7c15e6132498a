package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lucidseq/poaconsensus/internal/action"
	"github.com/lucidseq/poaconsensus/internal/config"
	consensusjob "github.com/lucidseq/poaconsensus/internal/job"
	"github.com/lucidseq/poaconsensus/internal/poa"
)

func testEngine(t *testing.T) (*Engine, func()) {
	t.Helper()
	reg := action.NewRegistry()
	reg.Register(action.NewConfidenceBand(2.0, 0.0))
	ctx, cancel := context.WithCancel(context.Background())
	eng := New(ctx, reg, config.EngineConf{JobWorkers: 2, QueueDepth: 10, JobTimeoutMs: 5000})
	return eng, func() {
		cancel()
		eng.Shutdown()
	}
}

func TestSubmitSync_FoldsReadsAndExtractsConsensus(t *testing.T) {
	eng, stop := testEngine(t)
	defer stop()

	j := &consensusjob.Job{
		ID:      "job-1",
		Reads:   []string{"GGG", "GGG", "GGG"},
		Scoring: poa.DefaultScoringConfig(poa.GlobalMode),
	}
	res, err := eng.SubmitSync(context.Background(), j)
	if err != nil {
		t.Fatalf("SubmitSync error: %v", err)
	}
	if res.ConsensusSequence != "GGG" {
		t.Errorf("ConsensusSequence = %q, want %q", res.ConsensusSequence, "GGG")
	}
	if res.ReadsFolded != 3 {
		t.Errorf("ReadsFolded = %d, want 3", res.ReadsFolded)
	}
}

func TestSubmitSync_PropagatesAlignError(t *testing.T) {
	eng, stop := testEngine(t)
	defer stop()

	j := &consensusjob.Job{
		ID:      "job-bad",
		Reads:   []string{"GGG", "GGX"},
		Scoring: poa.DefaultScoringConfig(poa.GlobalMode),
	}
	res, err := eng.SubmitSync(context.Background(), j)
	if err != nil {
		t.Fatalf("SubmitSync error: %v", err)
	}
	if res.Error == "" {
		t.Fatal("Result.Error = \"\", want a populated error for invalid base")
	}
}

func TestSubmitSync_FilterExprNarrowsMutations(t *testing.T) {
	eng, stop := testEngine(t)
	defer stop()

	j := &consensusjob.Job{
		ID:         "job-filter",
		Reads:      []string{"AAAAAAAAAA", "AAAAAAAAAA", "AAAAAAAAAA"},
		Scoring:    poa.DefaultScoringConfig(poa.GlobalMode),
		FilterExpr: "kind == SUBSTITUTION",
	}
	res, err := eng.SubmitSync(context.Background(), j)
	if err != nil {
		t.Fatalf("SubmitSync error: %v", err)
	}
	for _, m := range res.Mutations {
		if m.Kind != poa.Substitution {
			t.Errorf("Mutations contains kind %v, want only SUBSTITUTION", m.Kind)
		}
	}
}

func TestSubmitSync_TimesOutOnUnresponsiveQueue(t *testing.T) {
	reg := action.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := New(ctx, reg, config.EngineConf{JobWorkers: 0, QueueDepth: 1, JobTimeoutMs: 50})

	j := &consensusjob.Job{ID: "job-timeout", Reads: []string{"GGG"}, Scoring: poa.DefaultScoringConfig(poa.GlobalMode)}
	_, err := eng.SubmitSync(context.Background(), j)
	if err == nil {
		t.Fatal("SubmitSync with zero workers = nil error, want timeout error")
	}
	time.Sleep(10 * time.Millisecond)
}

func TestSubmitAsync_RejectsWhenQueueFull(t *testing.T) {
	reg := action.NewRegistry()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eng := New(ctx, reg, config.EngineConf{JobWorkers: 0, QueueDepth: 1, JobTimeoutMs: 50})

	ok1 := eng.SubmitAsync(&consensusjob.Job{ID: "a", Reads: []string{"GGG"}, Scoring: poa.DefaultScoringConfig(poa.GlobalMode)})
	ok2 := eng.SubmitAsync(&consensusjob.Job{ID: "b", Reads: []string{"GGG"}, Scoring: poa.DefaultScoringConfig(poa.GlobalMode)})
	if !ok1 {
		t.Error("first SubmitAsync = false, want true")
	}
	if ok2 {
		t.Error("second SubmitAsync on full queue = true, want false")
	}
}
