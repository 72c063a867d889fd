package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Axis is a single named dimension of a job matrix with its enumerated
// values. Values keep their declared order.
type Axis struct {
	Name   string
	Values []string
}

// Matrix is a set of axes whose cartesian product generates concrete job
// instances. Axes are kept sorted by name so expansion order is
// deterministic regardless of declaration order.
type Matrix struct {
	axes []Axis
}

// NewMatrix creates a Matrix from a map of axis name to values.
// Every axis must have at least one value.
func NewMatrix(axes map[string][]string) (Matrix, error) {
	m := Matrix{axes: make([]Axis, 0, len(axes))}
	for name, values := range axes {
		if len(values) == 0 {
			return Matrix{}, zerr.With(ErrEmptyMatrixAxis, "axis", name)
		}
		m.axes = append(m.axes, Axis{Name: name, Values: slices.Clone(values)})
	}
	slices.SortFunc(m.axes, func(a, b Axis) int {
		return strings.Compare(a.Name, b.Name)
	})
	return m, nil
}

// IsZero reports whether the matrix has no axes.
func (m Matrix) IsZero() bool {
	return len(m.axes) == 0
}

// Axes returns a copy of the matrix axes in sorted order.
func (m Matrix) Axes() []Axis {
	return slices.Clone(m.axes)
}

// Size returns the number of combinations the matrix expands to.
// A matrix with no axes has exactly one (empty) combination.
func (m Matrix) Size() int {
	n := 1
	for _, a := range m.axes {
		n *= len(a.Values)
	}
	return n
}

// Combinations returns the cartesian product of all axes, in deterministic
// order: axes sorted by name, values in declared order, last axis varying
// fastest.
func (m Matrix) Combinations() []Combination {
	combos := []Combination{{}}
	for _, axis := range m.axes {
		next := make([]Combination, 0, len(combos)*len(axis.Values))
		for _, c := range combos {
			for _, v := range axis.Values {
				ext := make(Combination, len(c), len(c)+1)
				copy(ext, c)
				ext = append(ext, Variable{Key: axis.Name, Value: v})
				next = append(next, ext)
			}
		}
		combos = next
	}
	return combos
}

// Variable is a single matrix assignment within a combination.
type Variable struct {
	Key   string
	Value string
}

// Combination is one cell of an expanded matrix: an ordered list of
// variable assignments, one per axis.
type Combination []Variable

// Get returns the value assigned to the given key.
func (c Combination) Get(key string) (string, bool) {
	for _, v := range c {
		if v.Key == key {
			return v.Value, true
		}
	}
	return "", false
}

// String renders the combination as "key=value, key=value".
func (c Combination) String() string {
	if len(c) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.Key)
		sb.WriteByte('=')
		sb.WriteString(v.Value)
	}
	return sb.String()
}
