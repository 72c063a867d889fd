// Package runner implements the job instance execution engine.
package runner

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes the expanded job instances of a workflow.
//
// Instances are independent of one another: a failing instance never stops
// or cancels a sibling. Only an external context cancellation prevents
// queued instances from starting.
type Runner struct {
	executor  ports.Executor
	store     ports.RunReportStore
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[string]domain.InstanceStatus
}

// NewRunner creates a new Runner with the given dependencies.
func NewRunner(
	executor ports.Executor,
	store ports.RunReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		executor:  executor,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[string]domain.InstanceStatus),
	}
}

// Run expands every job of the workflow into instances and executes them
// with bounded parallelism. It returns the joined errors of all failed
// instances; a nil return means every instance succeeded.
func (r *Runner) Run(ctx context.Context, workflow *domain.Workflow, parallelism int) error {
	instances, err := domain.ExpandWorkflow(workflow)
	if err != nil {
		return err
	}
	r.initStatuses(instances)

	if parallelism < 1 {
		parallelism = 1
	}

	var g errgroup.Group
	g.SetLimit(parallelism)

	var errMu sync.Mutex
	var errs []error
	for _, inst := range instances {
		g.Go(func() error {
			if ctx.Err() != nil {
				r.updateStatus(inst.ID(), domain.StatusSkipped)
				return nil
			}
			if err := r.runInstance(ctx, inst); err != nil {
				errMu.Lock()
				errs = append(errs, err)
				errMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if ctx.Err() != nil {
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}

// Status returns the current status of an instance.
func (r *Runner) Status(instance string) domain.InstanceStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status[instance]
}

// Statuses returns a snapshot of all instance statuses.
func (r *Runner) Statuses() map[string]domain.InstanceStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make(map[string]domain.InstanceStatus, len(r.status))
	for k, v := range r.status {
		snapshot[k] = v
	}
	return snapshot
}

func (r *Runner) initStatuses(instances []domain.JobInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inst := range instances {
		r.status[inst.ID()] = domain.StatusPending
	}
}

func (r *Runner) updateStatus(instance string, status domain.InstanceStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[instance] = status
}

// runInstance executes the steps of one instance strictly sequentially.
// The first failing step aborts the remaining steps of this instance only.
func (r *Runner) runInstance(ctx context.Context, inst domain.JobInstance) error {
	id := inst.ID()
	r.updateStatus(id, domain.StatusRunning)

	ctx, vertex := r.telemetry.Record(ctx, id)

	started := time.Now()
	env := inst.Combination.Environ()

	var failedStep string
	var runErr error
	for _, step := range inst.Steps {
		if err := ctx.Err(); err != nil {
			failedStep = step.Name
			runErr = err
			break
		}
		if err := r.executor.Execute(ctx, &step, env, vertex.Stdout(), vertex.Stderr()); err != nil {
			failedStep = step.Name
			runErr = zerr.With(zerr.With(zerr.Wrap(err, "step failed"), "instance", id), "step", step.Name)
			break
		}
	}

	status := domain.StatusSucceeded
	if runErr != nil {
		status = domain.StatusFailed
		r.logger.Error(runErr)
	}
	r.updateStatus(id, status)
	vertex.Complete(runErr)

	rep := domain.InstanceReport{
		Instance:   id,
		Digest:     domain.InstanceDigest(id),
		Status:     status,
		FailedStep: failedStep,
		StartedAt:  started,
		Duration:   time.Since(started),
	}
	if err := r.store.Put(rep); err != nil {
		r.logger.Warn("failed to persist run report for " + id)
	}

	return runErr
}
