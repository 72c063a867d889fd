package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/relay/internal/core/domain"
)

func TestMatrix_Size(t *testing.T) {
	m, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6", "3.7", "3.8"},
		"platform":       {"ubuntu-latest", "windows-latest"},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, m.Size())
	assert.Len(t, m.Combinations(), 6)
}

func TestMatrix_ZeroMatrixHasOneCombination(t *testing.T) {
	var m domain.Matrix

	assert.True(t, m.IsZero())
	assert.Equal(t, 1, m.Size())

	combos := m.Combinations()
	require.Len(t, combos, 1)
	assert.Empty(t, combos[0])
}

func TestMatrix_CombinationsAreDeterministic(t *testing.T) {
	m, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6", "3.7"},
		"platform":       {"ubuntu-latest", "windows-latest"},
	})
	require.NoError(t, err)

	// Axes are sorted by name: platform before python-version,
	// last axis varies fastest.
	want := []string{
		"platform=ubuntu-latest, python-version=3.6",
		"platform=ubuntu-latest, python-version=3.7",
		"platform=windows-latest, python-version=3.6",
		"platform=windows-latest, python-version=3.7",
	}
	got := make([]string, 0, 4)
	for _, c := range m.Combinations() {
		got = append(got, c.String())
	}
	assert.Equal(t, want, got)
}

func TestMatrix_EmptyAxisRejected(t *testing.T) {
	_, err := domain.NewMatrix(map[string][]string{
		"platform": {},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyMatrixAxis))
}

func TestCombination_Get(t *testing.T) {
	m, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6"},
	})
	require.NoError(t, err)

	combo := m.Combinations()[0]

	v, ok := combo.Get("python-version")
	assert.True(t, ok)
	assert.Equal(t, "3.6", v)

	_, ok = combo.Get("platform")
	assert.False(t, ok)
}

func TestCombination_Environ(t *testing.T) {
	m, err := domain.NewMatrix(map[string][]string{
		"python-version": {"3.6"},
		"platform":       {"ubuntu-latest"},
	})
	require.NoError(t, err)

	env := m.Combinations()[0].Environ()
	assert.Equal(t, []string{
		"MATRIX_PLATFORM=ubuntu-latest",
		"MATRIX_PYTHON_VERSION=3.6",
	}, env)
}
