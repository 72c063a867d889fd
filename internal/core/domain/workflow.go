// Package domain contains the core domain models for workflows, triggers,
// and job matrix expansion.
package domain

import (
	"slices"
	"strings"
)

// Workflow is a complete, validated workflow definition: a trigger plus a
// set of independent jobs.
type Workflow struct {
	Name    string
	Trigger Trigger
	Jobs    []Job
}

// Job is a single named unit of the workflow. Jobs are independent of one
// another; only the steps within a job are ordered.
type Job struct {
	Name   InternedString
	RunsOn InternedString
	Matrix Matrix
	Steps  []Step
}

// Step is a named shell command executed as part of a job instance.
// Environment entries override the matrix and process environment.
type Step struct {
	Name        string
	Run         string
	Environment map[string]string
}

// NewWorkflow creates a validated Workflow. Jobs are sorted by name so all
// downstream expansion and reporting is deterministic.
func NewWorkflow(name string, trigger Trigger, jobs []Job) (*Workflow, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	sorted := slices.Clone(jobs)
	slices.SortFunc(sorted, func(a, b Job) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})
	return &Workflow{Name: name, Trigger: trigger, Jobs: sorted}, nil
}

// Job returns the job with the given name.
func (w *Workflow) Job(name string) (Job, bool) {
	for _, j := range w.Jobs {
		if j.Name.String() == name {
			return j, true
		}
	}
	return Job{}, false
}
