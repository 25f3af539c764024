// Package batch executes many independent test invocations concurrently.
// The pipeline itself is single-threaded and pure; parallelism exists only
// at the call level, one goroutine per dataset under a weighted semaphore.
package batch

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"gokruskal/adapters/stats/kwallis"
	"gokruskal/domain/core"
	"gokruskal/domain/kruskal"
)

// Job is one dataset queued for analysis.
type Job struct {
	ID      core.RunID       `json:"id"`
	Name    string           `json:"name"`
	Samples []kruskal.Sample `json:"samples"`
}

// NewJob creates a job with a fresh run ID.
func NewJob(name string, samples []kruskal.Sample) Job {
	return Job{ID: core.NewRunID(), Name: name, Samples: samples}
}

// Outcome pairs a job with its result or error. Failures are isolated per
// job; one bad dataset never aborts the rest of the batch.
type Outcome struct {
	Job    Job
	Result *kruskal.Result
	Err    error
}

// Runner bounds concurrent invocations with a weighted semaphore.
type Runner struct {
	sem   *semaphore.Weighted
	limit int64
}

// NewRunner creates a runner allowing at most maxConcurrent invocations.
func NewRunner(maxConcurrent int64) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{
		sem:   semaphore.NewWeighted(maxConcurrent),
		limit: maxConcurrent,
	}
}

// RunAll analyzes every job and returns outcomes in job order. Cancelling the
// context stops jobs that have not yet acquired a slot; their outcomes carry
// the context error.
func (r *Runner) RunAll(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()

			if err := r.sem.Acquire(ctx, 1); err != nil {
				outcomes[i] = Outcome{Job: job, Err: err}
				return
			}
			defer r.sem.Release(1)

			result, err := kwallis.Run(job.Samples)
			outcomes[i] = Outcome{Job: job, Result: result, Err: err}
		}(i, job)
	}
	wg.Wait()

	return outcomes
}
