// Package predicate models the portable boolean expressions accepted by the
// generic repository. A predicate is a small tagged-variant tree over entity
// columns: field-equality leaves combined with logical AND nodes. Keeping the
// representation this small is what makes it translatable to the store's
// query language.
package predicate

import (
	"fmt"
	"strings"
)

// Expr is a node in a predicate tree.
type Expr interface {
	node()
}

// Eq is a leaf asserting that a column equals a value.
type Eq struct {
	Column string
	Value  any
}

// And is the eager conjunction: both operands are always evaluated.
type And struct {
	Left  Expr
	Right Expr
}

// AndAlso is the short-circuit conjunction as written by callers. The store's
// query translator does not accept it; Normalize rewrites it to And before
// translation. Predicates must be side-effect free, so the rewrite preserves
// semantics.
type AndAlso struct {
	Left  Expr
	Right Expr
}

func (Eq) node()      {}
func (And) node()     {}
func (AndAlso) node() {}

// FieldEq builds an equality leaf.
func FieldEq(column string, value any) Expr {
	return Eq{Column: column, Value: value}
}

// ShortCircuitAnd builds the short-circuit conjunction of two expressions.
func ShortCircuitAnd(left, right Expr) Expr {
	return AndAlso{Left: left, Right: right}
}

// EagerAnd builds the eager conjunction of two expressions.
func EagerAnd(left, right Expr) Expr {
	return And{Left: left, Right: right}
}

// Normalize rewrites every short-circuit AND node into its eager counterpart,
// recursively over both subtrees. Leaves pass through unchanged.
func Normalize(e Expr) Expr {
	switch n := e.(type) {
	case AndAlso:
		return And{Left: Normalize(n.Left), Right: Normalize(n.Right)}
	case And:
		return And{Left: Normalize(n.Left), Right: Normalize(n.Right)}
	default:
		return e
	}
}

// ToSQL translates a normalized predicate into a SQL condition with
// positional placeholders starting at startArg. It rejects short-circuit
// nodes; callers are expected to Normalize first.
func ToSQL(e Expr, startArg int) (string, []any, error) {
	var sb strings.Builder
	var args []any
	next := startArg

	var walk func(Expr) error
	walk = func(e Expr) error {
		switch n := e.(type) {
		case Eq:
			if strings.TrimSpace(n.Column) == "" {
				return fmt.Errorf("predicate: empty column in equality")
			}
			fmt.Fprintf(&sb, "%s = $%d", n.Column, next)
			args = append(args, n.Value)
			next++
			return nil
		case And:
			sb.WriteString("(")
			if err := walk(n.Left); err != nil {
				return err
			}
			sb.WriteString(" AND ")
			if err := walk(n.Right); err != nil {
				return err
			}
			sb.WriteString(")")
			return nil
		case AndAlso:
			return fmt.Errorf("predicate: short-circuit AND is not supported by the query translator")
		default:
			return fmt.Errorf("predicate: unsupported node %T", e)
		}
	}

	if err := walk(e); err != nil {
		return "", nil, err
	}
	return sb.String(), args, nil
}

// Matches evaluates a predicate against a row presented as a column lookup.
// Short-circuit nodes stop at the first false operand; eager nodes evaluate
// both. Used for fixtures and tests rather than the live store.
func Matches(e Expr, lookup func(column string) any) bool {
	switch n := e.(type) {
	case Eq:
		return lookup(n.Column) == n.Value
	case And:
		left := Matches(n.Left, lookup)
		right := Matches(n.Right, lookup)
		return left && right
	case AndAlso:
		if !Matches(n.Left, lookup) {
			return false
		}
		return Matches(n.Right, lookup)
	default:
		return false
	}
}
