package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRewritesShortCircuitNodes(t *testing.T) {
	expr := ShortCircuitAnd(
		FieldEq("matric_number", "M001"),
		ShortCircuitAnd(
			FieldEq("department_id", "dep-1"),
			FieldEq("year_of_graduation", 2024),
		),
	)

	normalized := Normalize(expr)

	top, ok := normalized.(And)
	require.True(t, ok, "top node should be eager AND")
	assert.Equal(t, Eq{Column: "matric_number", Value: "M001"}, top.Left)

	inner, ok := top.Right.(And)
	require.True(t, ok, "nested short-circuit node should be rewritten")
	assert.Equal(t, Eq{Column: "department_id", Value: "dep-1"}, inner.Left)
	assert.Equal(t, Eq{Column: "year_of_graduation", Value: 2024}, inner.Right)
}

func TestNormalizeLeavesPassThrough(t *testing.T) {
	leaf := FieldEq("id", "abc")
	assert.Equal(t, leaf, Normalize(leaf))
}

func TestToSQLRejectsShortCircuitAnd(t *testing.T) {
	expr := ShortCircuitAnd(FieldEq("a", 1), FieldEq("b", 2))
	_, _, err := ToSQL(expr, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short-circuit")
}

func TestToSQLTranslatesNormalizedTree(t *testing.T) {
	expr := Normalize(ShortCircuitAnd(FieldEq("matric_number", "M001"), FieldEq("department_id", "dep-1")))

	sql, args, err := ToSQL(expr, 3)
	require.NoError(t, err)
	assert.Equal(t, "(matric_number = $3 AND department_id = $4)", sql)
	assert.Equal(t, []any{"M001", "dep-1"}, args)
}

func TestToSQLRejectsEmptyColumn(t *testing.T) {
	_, _, err := ToSQL(FieldEq(" ", 1), 1)
	require.Error(t, err)
}

// The short-circuit form and its eager rewrite must select the same records
// from any fixture dataset.
func TestNormalizationRoundTripSelectsSameRows(t *testing.T) {
	rows := []map[string]any{
		{"matric_number": "M001", "department_id": "dep-1"},
		{"matric_number": "M001", "department_id": "dep-2"},
		{"matric_number": "M002", "department_id": "dep-1"},
		{"matric_number": "M003", "department_id": "dep-3"},
	}

	shortCircuit := ShortCircuitAnd(FieldEq("matric_number", "M001"), FieldEq("department_id", "dep-1"))
	eager := Normalize(shortCircuit)

	var fromShort, fromEager []int
	for i, row := range rows {
		lookup := func(col string) any { return row[col] }
		if Matches(shortCircuit, lookup) {
			fromShort = append(fromShort, i)
		}
		if Matches(eager, lookup) {
			fromEager = append(fromEager, i)
		}
	}

	assert.Equal(t, fromShort, fromEager)
	assert.Equal(t, []int{0}, fromShort)
}
