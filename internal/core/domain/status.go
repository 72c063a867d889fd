package domain

import "strings"

// InstanceStatus represents the lifecycle state of a job instance.
type InstanceStatus string

const (
	// StatusPending indicates the instance is waiting to be scheduled.
	StatusPending InstanceStatus = "pending"
	// StatusRunning indicates the instance is currently executing.
	StatusRunning InstanceStatus = "running"
	// StatusSucceeded indicates every step of the instance exited zero.
	StatusSucceeded InstanceStatus = "succeeded"
	// StatusFailed indicates a step of the instance exited non-zero.
	StatusFailed InstanceStatus = "failed"
	// StatusSkipped indicates the instance was never started, e.g. because
	// the run was interrupted before it was scheduled.
	StatusSkipped InstanceStatus = "skipped"
)

// IsTerminal reports whether the status is a terminal state.
func (s InstanceStatus) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusSkipped:
		return true
	default:
		return false
	}
}

// NormalizeInstanceStatus converts a string to an InstanceStatus, defaulting
// to pending if unknown. Useful at deserialization boundaries.
func NormalizeInstanceStatus(s string) InstanceStatus {
	switch strings.ToLower(s) {
	case string(StatusPending):
		return StatusPending
	case string(StatusRunning):
		return StatusRunning
	case string(StatusSucceeded):
		return StatusSucceeded
	case string(StatusFailed):
		return StatusFailed
	case string(StatusSkipped):
		return StatusSkipped
	default:
		return StatusPending
	}
}
