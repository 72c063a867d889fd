package config

import (
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// workflowFile represents the structure of the relay.yaml workflow file.
type workflowFile struct {
	Name string            `yaml:"name"`
	On   triggerDTO        `yaml:"on"`
	Jobs map[string]jobDTO `yaml:"jobs"`
}

// triggerDTO holds one filter per supported event kind. A kind is declared
// by being present, even with an empty filter.
type triggerDTO struct {
	Push        *eventFilterDTO `yaml:"push"`
	PullRequest *eventFilterDTO `yaml:"pull_request"`
}

// eventFilterDTO restricts an event kind to a set of branches.
type eventFilterDTO struct {
	Branches []string `yaml:"branches"`
}

// jobDTO represents a job definition in the configuration.
type jobDTO struct {
	RunsOn   string       `yaml:"runs-on"`
	Strategy *strategyDTO `yaml:"strategy"`
	Steps    []stepDTO    `yaml:"steps"`
}

// strategyDTO holds the matrix axes of a job.
type strategyDTO struct {
	Matrix map[string][]scalarString `yaml:"matrix"`
}

// stepDTO represents a step definition in the configuration.
type stepDTO struct {
	Name string            `yaml:"name"`
	Run  string            `yaml:"run"`
	Env  map[string]string `yaml:"env"`
}

// scalarString accepts any YAML scalar and keeps its literal spelling.
// Matrix values like 3.6 would otherwise resolve as floats and lose their
// trailing zero semantics.
type scalarString string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *scalarString) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return zerr.With(zerr.New("matrix value must be a scalar"), "line", value.Line)
	}
	*s = scalarString(value.Value)
	return nil
}
