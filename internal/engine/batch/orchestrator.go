// Package batch drives the sequential execution of a parsed task set.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/zoomgrab/zoomgrab/internal/core/domain"
	"github.com/zoomgrab/zoomgrab/internal/core/ports"
	"go.trai.ch/zerr"
)

// TaskStatus represents the status of a task within a run.
type TaskStatus string

const (
	// StatusPending indicates the task is waiting to be executed.
	StatusPending TaskStatus = "Pending"
	// StatusRunning indicates the task is currently executing.
	StatusRunning TaskStatus = "Running"
	// StatusSucceeded indicates the task finished successfully.
	StatusSucceeded TaskStatus = "Succeeded"
	// StatusFailed indicates the task execution failed.
	StatusFailed TaskStatus = "Failed"
	// StatusRetrying indicates the task failed the first pass and is being
	// re-run in the retry sweep.
	StatusRetrying TaskStatus = "Retrying"
)

// Executor runs one action under a retry policy and reports the invocation
// count alongside the outcome.
type Executor interface {
	Execute(ctx context.Context, action ports.Action, policy domain.BackoffPolicy) (bool, *domain.ActionResult, int)
}

// Orchestrator walks the task set in input order, one task at a time. Each
// task's action goes through the executor; the outcome feeds the progress
// reporter and, on success, the ledger. A failed task never blocks the rest
// of the batch.
type Orchestrator struct {
	executor Executor
	factory  ports.ActionFactory
	ledger   ports.LedgerStore
	progress ports.ProgressReporter
	logger   ports.Logger

	policy      domain.BackoffPolicy
	retryFailed bool

	// Status may be called while a batch runs; the mutex guards the map.
	mu         sync.RWMutex
	taskStatus map[int]TaskStatus
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(
	executor Executor,
	factory ports.ActionFactory,
	ledger ports.LedgerStore,
	progress ports.ProgressReporter,
	logger ports.Logger,
	policy domain.BackoffPolicy,
	retryFailed bool,
) *Orchestrator {
	return &Orchestrator{
		executor:    executor,
		factory:     factory,
		ledger:      ledger,
		progress:    progress,
		logger:      logger,
		policy:      policy,
		retryFailed: retryFailed,
		taskStatus:  make(map[int]TaskStatus),
	}
}

// Run executes every task and returns the aggregated summary. The returned
// error is non-nil only for a total failure: a non-empty task set with zero
// successes. Individual task failures are contained in the summary.
func (o *Orchestrator) Run(ctx context.Context, tasks []domain.Task, kind domain.DownloadKind) (domain.Summary, error) {
	summary := domain.Summary{Total: len(tasks)}
	if len(tasks) == 0 {
		return summary, nil
	}

	o.initStatuses(tasks)
	o.progress.Begin(len(tasks))

	results := make([]domain.TaskResult, len(tasks))
	completed := 0

	for i, task := range tasks {
		o.setStatus(i, StatusRunning)
		results[i] = o.runTask(ctx, task, kind)

		completed++
		if results[i].Outcome == domain.OutcomeSucceeded {
			o.setStatus(i, StatusSucceeded)
		} else {
			o.setStatus(i, StatusFailed)
		}
		o.progress.Update(completed, task.Name)
	}

	if o.retryFailed {
		o.retrySweep(ctx, tasks, kind, results)
	}

	for _, res := range results {
		if res.Outcome == domain.OutcomeSucceeded {
			summary.Succeeded++
		} else {
			summary.Failed++
			summary.FailedTasks = append(summary.FailedTasks, res.Task)
		}
	}

	o.progress.Finish(o.finishMessage(summary))

	if summary.Succeeded == 0 {
		return summary, zerr.With(domain.ErrAllTasksFailed, "total", summary.Total)
	}
	return summary, nil
}

// retrySweep re-runs every failed task exactly once, superseding its result.
func (o *Orchestrator) retrySweep(ctx context.Context, tasks []domain.Task, kind domain.DownloadKind, results []domain.TaskResult) {
	var failed []int
	for i, res := range results {
		if res.Outcome == domain.OutcomeFailed {
			failed = append(failed, i)
		}
	}
	if len(failed) == 0 {
		return
	}

	if o.logger != nil {
		o.logger.Info(fmt.Sprintf("retrying %d failed downloads", len(failed)))
	}

	o.progress.Begin(len(failed))
	for n, i := range failed {
		o.setStatus(i, StatusRetrying)
		results[i] = o.runTask(ctx, tasks[i], kind)

		if results[i].Outcome == domain.OutcomeSucceeded {
			o.setStatus(i, StatusSucceeded)
		} else {
			o.setStatus(i, StatusFailed)
		}
		o.progress.Update(n+1, tasks[i].Name)
	}
}

// runTask executes one task through the backoff executor and records the
// outcome. Ledger failures degrade to warnings.
func (o *Orchestrator) runTask(ctx context.Context, task domain.Task, kind domain.DownloadKind) domain.TaskResult {
	result := domain.TaskResult{
		Task:     task,
		Outcome:  domain.OutcomeFailed,
		Attempts: o.policy.MaxAttempts,
	}

	action, err := o.factory.NewAction(task, kind)
	if err != nil {
		o.logFailure(task, fmt.Sprintf("cannot build action: %v", err))
		return result
	}

	ok, res, attempts := o.executor.Execute(ctx, action, o.policy)
	result.Attempts = attempts
	if !ok {
		o.logFailure(task, "all attempts failed")
		return result
	}
	if !res.Ok() {
		o.logFailure(task, fmt.Sprintf("tool exited %d: %s", res.ExitCode, res.Output))
		return result
	}

	result.Outcome = domain.OutcomeSucceeded
	result.Artifacts = action.Artifacts()

	if err := o.ledger.Record(task.Name, task.Source, kind, result.Artifacts); err != nil {
		if o.logger != nil {
			o.logger.Warn(fmt.Sprintf("ledger write failed for %s: %v", task.Name, err))
		}
	}

	return result
}

func (o *Orchestrator) logFailure(task domain.Task, reason string) {
	if o.logger != nil {
		o.logger.Error(zerr.With(
			zerr.New(reason),
			"task", task.Name,
			"source", task.Source,
		))
	}
}

func (o *Orchestrator) finishMessage(summary domain.Summary) string {
	if summary.Failed == 0 {
		return fmt.Sprintf("Completed %d/%d downloads", summary.Succeeded, summary.Total)
	}
	return fmt.Sprintf("Completed %d/%d downloads, %d failed", summary.Succeeded, summary.Total, summary.Failed)
}

func (o *Orchestrator) initStatuses(tasks []domain.Task) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range tasks {
		o.taskStatus[i] = StatusPending
	}
}

func (o *Orchestrator) setStatus(i int, status TaskStatus) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.taskStatus[i] = status
}

// Status returns the current status of the i-th task.
func (o *Orchestrator) Status(i int) TaskStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.taskStatus[i]
}
