package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/core/domain"
)

func testTrigger(t *testing.T) domain.Trigger {
	t.Helper()
	trigger, err := domain.NewTrigger([]domain.Rule{
		{Kind: domain.EventPush, Branches: []string{"master"}},
	})
	require.NoError(t, err)
	return trigger
}

func TestExpandJob_MatrixProduct(t *testing.T) {
	matrix, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6", "3.7", "3.8"},
		"platform":       {"ubuntu-latest", "windows-latest"},
	})
	require.NoError(t, err)

	job := domain.Job{
		Name:   domain.NewInternedString("test"),
		RunsOn: domain.NewInternedString("${{ matrix.platform }}"),
		Matrix: matrix,
		Steps: []domain.Step{
			{Name: "unit tests", Run: "tox -e py"},
		},
	}

	instances, err := domain.ExpandJob(job)
	require.NoError(t, err)
	assert.Len(t, instances, 6)

	// Every instance has its own combination and an unambiguous identifier,
	// and runs-on resolves to the instance's platform value.
	seen := make(map[string]bool)
	for _, inst := range instances {
		assert.False(t, seen[inst.ID()], "duplicate instance id %s", inst.ID())
		seen[inst.ID()] = true

		platform, ok := inst.Combination.Get("platform")
		require.True(t, ok)
		assert.Equal(t, platform, inst.RunsOn.String())
	}
}

func TestExpandJob_NoMatrixYieldsSingleInstance(t *testing.T) {
	job := domain.Job{
		Name:  domain.NewInternedString("lint"),
		Steps: []domain.Step{{Name: "lint", Run: "pre-commit run --all-files"}},
	}

	instances, err := domain.ExpandJob(job)
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "lint", instances[0].ID())
	assert.Empty(t, instances[0].Combination)
}

func TestExpandJob_InterpolatesMatrixPlaceholders(t *testing.T) {
	matrix, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6"},
	})
	require.NoError(t, err)

	job := domain.Job{
		Name:   domain.NewInternedString("test"),
		Matrix: matrix,
		Steps: []domain.Step{
			{
				Name: "install ${{ matrix.python-version }}",
				Run:  "pyenv install ${{ matrix.python-version }}",
				Environment: map[string]string{
					"PY": "${{ matrix.python-version }}",
				},
			},
		},
	}

	instances, err := domain.ExpandJob(job)
	require.NoError(t, err)
	require.Len(t, instances, 1)

	step := instances[0].Steps[0]
	assert.Equal(t, "install 3.6", step.Name)
	assert.Equal(t, "pyenv install 3.6", step.Run)
	assert.Equal(t, "3.6", step.Environment["PY"])
}

func TestExpandJob_UnknownMatrixKey(t *testing.T) {
	job := domain.Job{
		Name:  domain.NewInternedString("test"),
		Steps: []domain.Step{{Name: "broken", Run: "echo ${{ matrix.nope }}"}},
	}

	_, err := domain.ExpandJob(job)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownMatrixKey))
}

func TestExpandWorkflow_CountsAllJobs(t *testing.T) {
	matrix, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6", "3.7", "3.8"},
		"platform":       {"ubuntu-latest", "windows-latest"},
	})
	require.NoError(t, err)

	jobs := []domain.Job{
		{Name: domain.NewInternedString("lint"), Steps: []domain.Step{{Run: "flake8"}}},
		{Name: domain.NewInternedString("docs"), Steps: []domain.Step{{Run: "sphinx-build -W docs build"}}},
		{Name: domain.NewInternedString("test"), Matrix: matrix, Steps: []domain.Step{{Run: "tox"}}},
	}

	workflow, err := domain.NewWorkflow("ci", testTrigger(t), jobs)
	require.NoError(t, err)

	instances, err := domain.ExpandWorkflow(workflow)
	require.NoError(t, err)
	assert.Len(t, instances, 8) // 1 + 1 + 3*2
}

func TestNewWorkflow_RequiresJobs(t *testing.T) {
	_, err := domain.NewWorkflow("ci", testTrigger(t), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoJobs))
}

func TestWorkflow_JobLookup(t *testing.T) {
	jobs := []domain.Job{
		{Name: domain.NewInternedString("lint"), Steps: []domain.Step{{Run: "flake8"}}},
	}
	workflow, err := domain.NewWorkflow("ci", testTrigger(t), jobs)
	require.NoError(t, err)

	job, ok := workflow.Job("lint")
	assert.True(t, ok)
	assert.Equal(t, "lint", job.Name.String())

	_, ok = workflow.Job("missing")
	assert.False(t, ok)
}
