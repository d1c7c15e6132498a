package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/lucidseq/poaconsensus/internal/action"
	"github.com/lucidseq/poaconsensus/internal/config"
	consensusjob "github.com/lucidseq/poaconsensus/internal/job"
	"github.com/lucidseq/poaconsensus/internal/metrics"
	"github.com/lucidseq/poaconsensus/internal/poa"
	"github.com/lucidseq/poaconsensus/internal/variantfilter"
)

// Engine folds jobs into their own POA graph and extracts consensus and
// candidate mutations. Jobs are independent: each gets a fresh *poa.Graph,
// so jobs running concurrently on different workers never share mutable
// state.
type Engine struct {
	registry *action.Registry
	jobPool  *workerPool[*jobWork, *consensusjob.Result]
	conf     *config.EngineConf
}

type jobWork struct {
	j       *consensusjob.Job
	resultC chan *consensusjob.Result
}

// New creates an Engine using conf and starts its job worker pool.
func New(ctx context.Context, reg *action.Registry, conf config.EngineConf) *Engine {
	e := &Engine{
		registry: reg,
		conf:     &conf,
	}

	e.jobPool = newWorkerPool[*jobWork, *consensusjob.Result](
		ctx,
		conf.JobWorkers,
		conf.QueueDepth,
		func(ctx context.Context, w *jobWork) (*consensusjob.Result, error) {
			res := e.processJob(ctx, w.j)
			if w.resultC != nil {
				w.resultC <- res
			}
			return res, nil
		},
	)

	return e
}

// SubmitSync folds a job synchronously and returns its result.
// Returns an error if the queue is full or the job times out.
func (e *Engine) SubmitSync(ctx context.Context, j *consensusjob.Job) (*consensusjob.Result, error) {
	resultC := make(chan *consensusjob.Result, 1)
	w := &jobWork{j: j, resultC: resultC}

	timeout := time.Duration(e.conf.JobTimeoutMs) * time.Millisecond
	if !e.jobPool.Submit(w) {
		metrics.JobsDropped.Inc()
		return nil, fmt.Errorf("job queue full (capacity %d)", e.conf.QueueDepth)
	}
	metrics.JobsSubmitted.Inc()

	select {
	case res := <-resultC:
		return res, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("job processing timeout after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// SubmitAsync enqueues a job for background processing. Returns false if the
// queue is full.
func (e *Engine) SubmitAsync(j *consensusjob.Job) bool {
	w := &jobWork{j: j}
	if !e.jobPool.Submit(w) {
		metrics.JobsDropped.Inc()
		return false
	}
	metrics.JobsSubmitted.Inc()
	return true
}

// QueueUtilization returns queue used / capacity (0–1).
func (e *Engine) QueueUtilization() float64 {
	if e.jobPool.QueueCap() == 0 {
		return 0
	}
	return float64(e.jobPool.QueueLen()) / float64(e.jobPool.QueueCap())
}

func (e *Engine) processJob(ctx context.Context, j *consensusjob.Job) *consensusjob.Result {
	start := time.Now()
	result := &consensusjob.Result{JobID: j.ID}

	g := poa.NewGraph()
	for _, read := range j.Reads {
		if _, err := g.AddRead(read, j.Scoring); err != nil {
			result.Error = err.Error()
			result.DurationMs = time.Since(start).Milliseconds()
			return result
		}
		result.ReadsFolded++
	}
	metrics.ReadsFolded.Add(float64(result.ReadsFolded))

	consensus, path := g.Consensus(j.Scoring.Mode, j.MinCoverage)
	result.ConsensusSequence = consensus
	result.Path = path
	result.GraphVertices = g.NumVertices()
	metrics.GraphVertices.Observe(float64(result.GraphVertices))
	metrics.ConsensusLength.Observe(float64(len(consensus)))

	mutations := g.FindVariants(path)
	mutations = e.filterMutations(mutations, j.FilterExpr, &result.Error)
	result.Mutations = mutations
	for _, m := range mutations {
		metrics.VariantsProposed.WithLabelValues(m.Kind.String()).Inc()
	}

	result.Classifications = e.classifyMutations(j, result, mutations)

	result.DurationMs = time.Since(start).Milliseconds()
	metrics.JobDuration.Observe(float64(result.DurationMs))
	metrics.JobsCompleted.Inc()
	return result
}

func (e *Engine) filterMutations(mutations []poa.Mutation, expr string, errOut *string) []poa.Mutation {
	if expr == "" {
		return mutations
	}
	parsed, err := variantfilter.Parse(expr)
	if err != nil {
		*errOut = fmt.Sprintf("filter_expr: %s", err)
		return mutations
	}
	kept := make([]poa.Mutation, 0, len(mutations))
	for _, m := range mutations {
		ok, err := variantfilter.Matches(parsed, m)
		if err != nil {
			*errOut = fmt.Sprintf("filter_expr: %s", err)
			return mutations
		}
		if ok {
			kept = append(kept, m)
		}
	}
	return kept
}

func (e *Engine) classifyMutations(j *consensusjob.Job, res *consensusjob.Result, mutations []poa.Mutation) map[int]string {
	if e.registry == nil || len(mutations) == 0 {
		return nil
	}
	rep, err := e.registry.Get("confidence_band")
	if err != nil {
		return nil
	}
	varCtx := &action.VariantContext{
		JobID:             j.ID,
		ConsensusSequence: res.ConsensusSequence,
		Results:           make(map[string]interface{}),
	}
	out := make(map[int]string, len(mutations))
	for i, m := range mutations {
		report, err := rep.Classify(m, varCtx)
		if err != nil {
			continue
		}
		out[i] = report.Label
	}
	return out
}

// Shutdown drains the job pool gracefully.
func (e *Engine) Shutdown() {
	e.jobPool.Drain()
}
