package builder

import (
	"fmt"
	"strings"
)

// Operator is the comparison a Predicate applies. The set is closed: only
// the constants below exist, so no operator text can come from input.
type Operator int

const (
	// OpEqual compares for equality.
	OpEqual Operator = iota
	// OpContains matches values containing the bound text anywhere.
	OpContains
	// OpAtLeast is an inclusive lower bound.
	OpAtLeast
)

var operatorSQL = [...]string{
	OpEqual:    "=",
	OpContains: "LIKE",
	OpAtLeast:  ">=",
}

func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(operatorSQL) {
		return fmt.Sprintf("Operator(%d)", int(o))
	}
	return operatorSQL[o]
}

// Predicate is one optional search condition. Column must be a constant
// chosen by code; Value only ever travels as a bound argument.
type Predicate struct {
	Column string
	Op     Operator
	Value  interface{}
}

// Equals builds a "column = value" predicate.
func Equals(column string, value interface{}) Predicate {
	return Predicate{Column: column, Op: OpEqual, Value: value}
}

// Contains builds a "column LIKE %value%" predicate.
func Contains(column, value string) Predicate {
	return Predicate{Column: column, Op: OpContains, Value: value}
}

// AtLeast builds a "column >= value" predicate.
func AtLeast(column string, value interface{}) Predicate {
	return Predicate{Column: column, Op: OpAtLeast, Value: value}
}

func (p Predicate) clause() string {
	return p.Column + " " + p.Op.String() + " ?"
}

func (p Predicate) bound() interface{} {
	if p.Op == OpContains {
		return fmt.Sprintf("%%%v%%", p.Value)
	}
	return p.Value
}

// Filtered appends each predicate to base as " AND <column> <op> ?" and
// returns the statement with positional placeholders plus the bound
// arguments in the same order. base must end in a tautological WHERE
// (e.g. "WHERE 1=1") and carry no "?" of its own. With no predicates the
// base is returned unchanged with no arguments.
func Filtered(base string, preds ...Predicate) (string, []interface{}) {
	if len(preds) == 0 {
		return base, []interface{}{}
	}

	var sb strings.Builder
	sb.WriteString(base)
	args := make([]interface{}, 0, len(preds))
	for _, p := range preds {
		sb.WriteString(" AND ")
		sb.WriteString(p.clause())
		args = append(args, p.bound())
	}

	query, _ := rebind(sb.String(), 1)
	return query, args
}
