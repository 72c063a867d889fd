// Package config provides the workflow configuration loader for relay.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/relay/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the workflow file relay looks for when no explicit
// path is given.
const DefaultFilename = "relay.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// Load reads and validates the workflow file at the given path.
func (l *FileConfigLoader) Load(path string) (*domain.Workflow, error) {
	return Load(path)
}

// Load reads a workflow file from the given path and returns a validated
// domain.Workflow.
func Load(path string) (*domain.Workflow, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read workflow file")
	}

	var file workflowFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse workflow file")
	}

	trigger, err := buildTrigger(file.On)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(file.Jobs))
	for name, dto := range file.Jobs {
		job, err := buildJob(name, dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	name := file.Name
	if name == "" {
		name = filepath.Base(path)
	}

	wf, err := domain.NewWorkflow(name, trigger, jobs)
	if err != nil {
		return nil, err
	}
	return wf, nil
}

func buildTrigger(dto triggerDTO) (domain.Trigger, error) {
	var rules []domain.Rule
	if dto.Push != nil {
		rules = append(rules, domain.Rule{
			Kind:     domain.EventPush,
			Branches: dto.Push.Branches,
		})
	}
	if dto.PullRequest != nil {
		rules = append(rules, domain.Rule{
			Kind:     domain.EventPullRequest,
			Branches: dto.PullRequest.Branches,
		})
	}
	return domain.NewTrigger(rules)
}

func buildJob(name string, dto jobDTO) (domain.Job, error) {
	if len(dto.Steps) == 0 {
		return domain.Job{}, zerr.With(domain.ErrNoSteps, "job", name)
	}

	matrix, err := buildMatrix(dto.Strategy)
	if err != nil {
		return domain.Job{}, zerr.With(err, "job", name)
	}

	steps := make([]domain.Step, len(dto.Steps))
	for i, s := range dto.Steps {
		if s.Run == "" {
			return domain.Job{}, zerr.With(zerr.With(zerr.New("step has no run command"), "job", name), "step_index", i)
		}
		steps[i] = domain.Step{
			Name:        s.Name,
			Run:         s.Run,
			Environment: s.Env,
		}
	}

	return domain.Job{
		Name:   domain.NewInternedString(name),
		RunsOn: domain.NewInternedString(dto.RunsOn),
		Matrix: matrix,
		Steps:  steps,
	}, nil
}

func buildMatrix(dto *strategyDTO) (domain.Matrix, error) {
	if dto == nil || len(dto.Matrix) == 0 {
		return domain.Matrix{}, nil
	}
	axes := make(map[string][]string, len(dto.Matrix))
	for axis, values := range dto.Matrix {
		converted := make([]string, len(values))
		for i, v := range values {
			converted[i] = string(v)
		}
		axes[axis] = converted
	}
	return domain.NewMatrix(axes)
}
