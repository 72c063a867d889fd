package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// JobInstance is one concrete cell of an expanded job: the job plus one
// matrix combination, with all matrix placeholders in its steps resolved.
// Instances are independently runnable and carry no ordering dependency on
// any other instance.
type JobInstance struct {
	Job         Job
	Combination Combination
	RunsOn      InternedString
	Steps       []Step
}

// ID returns the display identifier of the instance, e.g.
// "test (platform=ubuntu-latest, python-version=3.6)".
func (i JobInstance) ID() string {
	if len(i.Combination) == 0 {
		return i.Job.Name.String()
	}
	return i.Job.Name.String() + " (" + i.Combination.String() + ")"
}

// ExpandWorkflow expands every job of the workflow into its concrete
// instances. Matrix placeholders in step names, commands, and environments
// are resolved eagerly so configuration mistakes surface before anything
// runs.
func ExpandWorkflow(w *Workflow) ([]JobInstance, error) {
	var instances []JobInstance
	for _, job := range w.Jobs {
		expanded, err := ExpandJob(job)
		if err != nil {
			return nil, err
		}
		instances = append(instances, expanded...)
	}
	return instances, nil
}

// ExpandJob expands a single job into one instance per matrix combination.
// A job without a matrix expands to exactly one instance.
func ExpandJob(job Job) ([]JobInstance, error) {
	combos := job.Matrix.Combinations()
	instances := make([]JobInstance, 0, len(combos))
	for _, combo := range combos {
		runsOn, err := interpolate(job.RunsOn.String(), combo)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "job", job.Name.String()), "field", "runs-on")
		}
		steps, err := resolveSteps(job, combo)
		if err != nil {
			return nil, err
		}
		instances = append(instances, JobInstance{
			Job:         job,
			Combination: combo,
			RunsOn:      NewInternedString(runsOn),
			Steps:       steps,
		})
	}
	return instances, nil
}

func resolveSteps(job Job, combo Combination) ([]Step, error) {
	steps := make([]Step, len(job.Steps))
	for i, step := range job.Steps {
		name, err := interpolate(step.Name, combo)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "job", job.Name.String()), "step", step.Name)
		}
		run, err := interpolate(step.Run, combo)
		if err != nil {
			return nil, zerr.With(zerr.With(err, "job", job.Name.String()), "step", step.Name)
		}
		var env map[string]string
		if len(step.Environment) > 0 {
			env = make(map[string]string, len(step.Environment))
			for k, v := range step.Environment {
				resolved, err := interpolate(v, combo)
				if err != nil {
					return nil, zerr.With(zerr.With(zerr.With(err, "job", job.Name.String()), "step", step.Name), "env", k)
				}
				env[k] = resolved
			}
		}
		steps[i] = Step{Name: name, Run: run, Environment: env}
	}
	return steps, nil
}

var matrixPlaceholder = regexp.MustCompile(`\$\{\{\s*matrix\.([A-Za-z0-9_][A-Za-z0-9_.-]*)\s*\}\}`)

// interpolate replaces ${{ matrix.KEY }} placeholders with the values of
// the given combination. Referencing an undeclared key is an error.
func interpolate(s string, combo Combination) (string, error) {
	var missing string
	out := matrixPlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		key := matrixPlaceholder.FindStringSubmatch(match)[1]
		value, ok := combo.Get(key)
		if !ok {
			if missing == "" {
				missing = key
			}
			return match
		}
		return value
	})
	if missing != "" {
		return "", zerr.With(ErrUnknownMatrixKey, "key", missing)
	}
	return out, nil
}

// Environ renders the combination as MATRIX_* environment variable entries,
// e.g. python-version=3.6 becomes MATRIX_PYTHON_VERSION=3.6.
func (c Combination) Environ() []string {
	env := make([]string, 0, len(c))
	for _, v := range c {
		env = append(env, "MATRIX_"+envKey(v.Key)+"="+v.Value)
	}
	return env
}

func envKey(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
			sb.WriteRune(r - ('a' - 'A'))
		case (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
