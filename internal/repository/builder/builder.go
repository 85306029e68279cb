package builder

import (
	"fmt"
	"strings"
)

// SQLBuilder helps construct SQL queries dynamically.
// Conditions are written with "?" markers and rendered as $1..$N.
type SQLBuilder struct {
	table      string
	columns    []string
	values     []interface{}
	where      []string
	whereArgs  []interface{}
	joins      []string
	orderBy    []string
	limit      int
	offset     int
	updateCols []string
	updateArgs []interface{}
	isInsert   bool
	isUpdate   bool
	isDelete   bool
	isSelect   bool
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.isSelect = true
	b.columns = cols
	return b
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.isInsert = true
	b.table = table
	b.columns = cols
	return b
}

// Update specifies the table to update.
func (b *SQLBuilder) Update(table string) *SQLBuilder {
	b.isUpdate = true
	b.table = table
	return b
}

// Delete specifies the table to delete from.
func (b *SQLBuilder) Delete(table string) *SQLBuilder {
	b.isDelete = true
	b.table = table
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Set specifies the columns and values for update.
func (b *SQLBuilder) Set(col string, val interface{}) *SQLBuilder {
	b.updateCols = append(b.updateCols, col)
	b.updateArgs = append(b.updateArgs, val)
	return b
}

// Values specifies the values for insertion.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.values = vals
	return b
}

// Where adds a condition to the query. Conditions are combined with AND.
func (b *SQLBuilder) Where(condition string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition)
	b.whereArgs = append(b.whereArgs, args...)
	return b
}

// Filter adds each predicate as an AND condition, in order.
func (b *SQLBuilder) Filter(preds ...Predicate) *SQLBuilder {
	for _, p := range preds {
		b.Where(p.clause(), p.bound())
	}
	return b
}

// Join adds a JOIN clause.
func (b *SQLBuilder) Join(joinType, table, on string) *SQLBuilder {
	b.joins = append(b.joins, fmt.Sprintf("%s JOIN %s ON %s", joinType, table, on))
	return b
}

// OrderBy adds an ORDER BY clause.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Offset adds an OFFSET clause.
func (b *SQLBuilder) Offset(offset int) *SQLBuilder {
	b.offset = offset
	return b
}

// Build constructs the final SQL string and arguments.
// Build does not mutate the builder and may be called more than once.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}
	argIndex := 1

	switch {
	case b.isSelect:
		sb.WriteString("SELECT ")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(" FROM ")
		sb.WriteString(b.table)
		for _, join := range b.joins {
			sb.WriteString(" ")
			sb.WriteString(join)
		}
	case b.isInsert:
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		placeholders := make([]string, len(b.values))
		for i := range b.values {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			argIndex++
		}
		sb.WriteString(strings.Join(placeholders, ", "))
		sb.WriteString(")")
		return sb.String(), append(args, b.values...)
	case b.isUpdate:
		sb.WriteString("UPDATE ")
		sb.WriteString(b.table)
		sb.WriteString(" SET ")
		setClauses := make([]string, len(b.updateCols))
		for i, col := range b.updateCols {
			setClauses[i] = fmt.Sprintf("%s = $%d", col, argIndex)
			argIndex++
		}
		sb.WriteString(strings.Join(setClauses, ", "))
		args = append(args, b.updateArgs...)
	case b.isDelete:
		sb.WriteString("DELETE FROM ")
		sb.WriteString(b.table)
	}

	if len(b.where) > 0 {
		sb.WriteString(" WHERE ")
		var clause string
		clause, argIndex = rebind(strings.Join(b.where, " AND "), argIndex)
		sb.WriteString(clause)
		args = append(args, b.whereArgs...)
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}

	if b.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", b.offset))
	}

	return sb.String(), args
}

// rebind replaces every "?" in sql with a positional placeholder, numbering
// from start. It returns the rewritten text and the next free index.
func rebind(sql string, start int) (string, int) {
	if !strings.Contains(sql, "?") {
		return sql, start
	}
	var sb strings.Builder
	sb.Grow(len(sql) + 4)
	idx := start
	for _, r := range sql {
		if r == '?' {
			sb.WriteString(fmt.Sprintf("$%d", idx))
			idx++
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String(), idx
}
