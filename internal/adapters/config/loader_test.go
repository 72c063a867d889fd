package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/adapters/config"
	"go.trai.ch/relay/internal/core/domain"
)

func writeWorkflow(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "relay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	content := `
name: ci
on:
  push:
    branches: [master]
  pull_request:
    branches: [master]
jobs:
  lint:
    runs-on: ubuntu-latest
    steps:
      - name: lint
        run: pre-commit run --all-files
  docs:
    runs-on: ubuntu-latest
    steps:
      - name: build docs
        run: sphinx-build -W docs docs/_build
  test:
    runs-on: ${{ matrix.platform }}
    strategy:
      matrix:
        python-version: [3.6, 3.7, 3.8]
        platform: [ubuntu-latest, windows-latest]
    steps:
      - name: run tests
        run: tox -e py
      - name: combine coverage
        run: coverage combine && coverage xml
`
	wf, err := config.Load(writeWorkflow(t, content))
	require.NoError(t, err)

	assert.Equal(t, "ci", wf.Name)
	require.Len(t, wf.Jobs, 3)

	// Jobs are sorted by name.
	names := []string{wf.Jobs[0].Name.String(), wf.Jobs[1].Name.String(), wf.Jobs[2].Name.String()}
	assert.Equal(t, []string{"docs", "lint", "test"}, names)

	// The trigger restricts execution to push/pull_request on master.
	assert.True(t, wf.Trigger.Matches(domain.Event{Kind: domain.EventPush, Branch: "master"}))
	assert.True(t, wf.Trigger.Matches(domain.Event{Kind: domain.EventPullRequest, Branch: "master"}))
	assert.False(t, wf.Trigger.Matches(domain.Event{Kind: domain.EventPush, Branch: "develop"}))

	// Matrix expansion: 3 versions x 2 platforms.
	test, ok := wf.Job("test")
	require.True(t, ok)
	assert.Equal(t, 6, test.Matrix.Size())
	require.Len(t, test.Steps, 2)
	assert.Equal(t, "run tests", test.Steps[0].Name)
}

func TestLoad_MatrixValuesKeepLiteralSpelling(t *testing.T) {
	// 3.6 would resolve as a YAML float; the loader must keep "3.6".
	content := `
on:
  push: {}
jobs:
  test:
    strategy:
      matrix:
        python-version: [3.6, 3.10]
    steps:
      - run: python --version
`
	wf, err := config.Load(writeWorkflow(t, content))
	require.NoError(t, err)

	job, ok := wf.Job("test")
	require.True(t, ok)
	axes := job.Matrix.Axes()
	require.Len(t, axes, 1)
	assert.Equal(t, []string{"3.6", "3.10"}, axes[0].Values)
}

func TestLoad_DefaultsNameToFilename(t *testing.T) {
	content := `
on:
  push: {}
jobs:
  lint:
    steps:
      - run: flake8
`
	wf, err := config.Load(writeWorkflow(t, content))
	require.NoError(t, err)
	assert.Equal(t, "relay.yaml", wf.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := config.Load(writeWorkflow(t, "jobs: ["))
	require.Error(t, err)
}

func TestLoad_NoTrigger(t *testing.T) {
	content := `
jobs:
  lint:
    steps:
      - run: flake8
`
	_, err := config.Load(writeWorkflow(t, content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoTrigger))
}

func TestLoad_JobWithoutSteps(t *testing.T) {
	content := `
on:
  push: {}
jobs:
  lint:
    steps: []
`
	_, err := config.Load(writeWorkflow(t, content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSteps))
}

func TestLoad_StepWithoutRun(t *testing.T) {
	content := `
on:
  push: {}
jobs:
  lint:
    steps:
      - name: no command
`
	_, err := config.Load(writeWorkflow(t, content))
	require.Error(t, err)
}

func TestLoad_EmptyMatrixAxis(t *testing.T) {
	content := `
on:
  push: {}
jobs:
  test:
    strategy:
      matrix:
        python-version: []
    steps:
      - run: tox
`
	_, err := config.Load(writeWorkflow(t, content))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyMatrixAxis))
}

func TestFileConfigLoader_Load(t *testing.T) {
	content := `
on:
  push: {}
jobs:
  lint:
    steps:
      - run: flake8
`
	loader := &config.FileConfigLoader{}
	wf, err := loader.Load(writeWorkflow(t, content))
	require.NoError(t, err)
	assert.Len(t, wf.Jobs, 1)
}
