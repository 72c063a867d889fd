// Package app implements the application layer for relay.
package app

import (
	"context"
	"errors"
	"runtime"
	"strings"

	"go.trai.ch/relay/internal/adapters/config"
	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/relay/internal/core/ports"
	"go.trai.ch/relay/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *runner.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, r *runner.Runner, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       r,
		logger:       logger,
	}
}

// RunOptions holds the parameters of a workflow run.
type RunOptions struct {
	// File is the workflow file path. Empty means the default filename.
	File string
	// Event is the triggering event kind, "push" or "pull_request".
	Event string
	// Ref is the branch the event concerns. A "refs/heads/" prefix is
	// accepted and stripped.
	Ref string
	// Parallelism bounds concurrent job instances. Zero means NumCPU.
	Parallelism int
}

// Run loads the workflow, matches the event against its trigger, and when
// it matches executes every expanded job instance.
//
// A non-matching event is not an error: the workflow simply does not fire.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	workflow, err := a.load(opts.File)
	if err != nil {
		return err
	}

	kind, err := domain.ParseEventKind(opts.Event)
	if err != nil {
		return err
	}
	event := domain.Event{
		Kind:   kind,
		Branch: strings.TrimPrefix(opts.Ref, "refs/heads/"),
	}

	if !workflow.Trigger.Matches(event) {
		a.logger.Info("workflow not triggered: no rule matches " + string(event.Kind) + " on " + event.Branch)
		return nil
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	if err := a.runner.Run(ctx, workflow, parallelism); err != nil {
		return errors.Join(domain.ErrRunFailed, err)
	}
	return nil
}

// Plan loads the workflow and returns its expanded job instances without
// executing anything.
func (a *App) Plan(path string) ([]domain.JobInstance, error) {
	workflow, err := a.load(path)
	if err != nil {
		return nil, err
	}
	return domain.ExpandWorkflow(workflow)
}

func (a *App) load(path string) (*domain.Workflow, error) {
	if path == "" {
		path = config.DefaultFilename
	}
	workflow, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load workflow")
	}
	return workflow, nil
}
