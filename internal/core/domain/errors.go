package domain

import "go.trai.ch/zerr"

var (
	// ErrNoTrigger is returned when a workflow declares no trigger events.
	ErrNoTrigger = zerr.New("workflow declares no trigger events")

	// ErrUnknownEventKind is returned when an event kind is not one of the
	// supported kinds.
	ErrUnknownEventKind = zerr.New("unknown event kind")

	// ErrNoJobs is returned when a workflow declares no jobs.
	ErrNoJobs = zerr.New("workflow declares no jobs")

	// ErrNoSteps is returned when a job declares an empty step list.
	ErrNoSteps = zerr.New("job declares no steps")

	// ErrEmptyMatrixAxis is returned when a matrix axis has no values.
	ErrEmptyMatrixAxis = zerr.New("matrix axis has no values")

	// ErrUnknownMatrixKey is returned when a step references a matrix key
	// that is not declared by the job's strategy.
	ErrUnknownMatrixKey = zerr.New("unknown matrix key")

	// ErrJobNotFound is returned when a requested job is not declared in the
	// workflow.
	ErrJobNotFound = zerr.New("job not found")

	// ErrRunFailed is returned when one or more job instances failed.
	ErrRunFailed = zerr.New("workflow run failed")
)
