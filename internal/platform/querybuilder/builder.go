// Package querybuilder renders the small set of PostgreSQL statements the
// repositories need, numbering bind parameters ($1, $2, ...) in the order
// they appear.
package querybuilder

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// binder collects bind arguments and hands out their placeholders.
type binder struct {
	args []any
}

func (b *binder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// expand replaces each '?' in expr with the next placeholder. Extra '?'
// characters without a matching argument are left as they are.
func (b *binder) expand(expr string, values []any) string {
	if len(values) == 0 {
		return expr
	}
	var out strings.Builder
	next := 0
	for _, r := range expr {
		if r == '?' && next < len(values) {
			out.WriteString(b.bind(values[next]))
			next++
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

type Condition interface {
	render(b *binder) string
}

type conditionFunc func(b *binder) string

func (f conditionFunc) render(b *binder) string { return f(b) }

func Eq(column string, value any) Condition {
	return conditionFunc(func(b *binder) string {
		return column + " = " + b.bind(value)
	})
}

// In matches nothing when values is empty.
func In(column string, values []any) Condition {
	return conditionFunc(func(b *binder) string {
		if len(values) == 0 {
			return "1=0"
		}
		marks := make([]string, len(values))
		for i, v := range values {
			marks[i] = b.bind(v)
		}
		return column + " IN (" + strings.Join(marks, ", ") + ")"
	})
}

func IsNull(column string) Condition {
	return conditionFunc(func(*binder) string {
		return column + " IS NULL"
	})
}

// Expr is raw SQL with '?' markers for args.
func Expr(expr string, args ...any) Condition {
	return conditionFunc(func(b *binder) string {
		return b.expand(expr, args)
	})
}

func whereSQL(b *binder, conditions []Condition) string {
	if len(conditions) == 0 {
		return ""
	}
	parts := make([]string, len(conditions))
	for i, c := range conditions {
		parts[i] = c.render(b)
	}
	return " WHERE " + strings.Join(parts, " AND ")
}

func requireTable(stmt, table string) error {
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("%s table is required", stmt)
	}
	return nil
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (s *SelectBuilder) From(table string) *SelectBuilder {
	s.table = table
	return s
}

func (s *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	s.where = append(s.where, conditions...)
	return s
}

func (s *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	s.orderBy = append(s.orderBy, parts...)
	return s
}

func (s *SelectBuilder) Limit(limit int) *SelectBuilder {
	s.limit = limit
	return s
}

func (s *SelectBuilder) ToSQL() (string, []any, error) {
	if len(s.columns) == 0 {
		return "", nil, errors.New("select columns are required")
	}
	if err := requireTable("select", s.table); err != nil {
		return "", nil, err
	}

	var b binder
	query := "SELECT " + strings.Join(s.columns, ", ") + " FROM " + s.table + whereSQL(&b, s.where)
	if len(s.orderBy) > 0 {
		query += " ORDER BY " + strings.Join(s.orderBy, ", ")
	}
	if s.limit > 0 {
		query += " LIMIT " + strconv.Itoa(s.limit)
	}
	return query, b.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (i *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	i.columns = append([]string(nil), columns...)
	return i
}

// Values adds one row; call it again for multi-row inserts.
func (i *InsertBuilder) Values(values ...any) *InsertBuilder {
	i.rows = append(i.rows, append([]any(nil), values...))
	return i
}

// Suffix is appended verbatim, e.g. an ON CONFLICT or RETURNING clause.
func (i *InsertBuilder) Suffix(sql string) *InsertBuilder {
	i.suffix = strings.TrimSpace(sql)
	return i
}

func (i *InsertBuilder) ToSQL() (string, []any, error) {
	if err := requireTable("insert", i.table); err != nil {
		return "", nil, err
	}
	if len(i.columns) == 0 {
		return "", nil, errors.New("insert columns are required")
	}
	if len(i.rows) == 0 {
		return "", nil, errors.New("insert values are required")
	}

	var b binder
	tuples := make([]string, len(i.rows))
	for n, row := range i.rows {
		if len(row) != len(i.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", n, len(row), len(i.columns))
		}
		marks := make([]string, len(row))
		for c, v := range row {
			marks[c] = b.bind(v)
		}
		tuples[n] = "(" + strings.Join(marks, ", ") + ")"
	}

	query := "INSERT INTO " + i.table + " (" + strings.Join(i.columns, ", ") + ") VALUES " + strings.Join(tuples, ", ")
	if i.suffix != "" {
		query += " " + i.suffix
	}
	return query, b.args, nil
}

type assignment struct {
	column string
	value  any
	expr   string
	raw    bool
}

type UpdateBuilder struct {
	table string
	sets  []assignment
	where []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (u *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, value: value})
	return u
}

// SetExpr assigns raw SQL such as NOW(); '?' markers bind args.
func (u *UpdateBuilder) SetExpr(column, expr string, args ...any) *UpdateBuilder {
	u.sets = append(u.sets, assignment{column: column, expr: expr, value: args, raw: true})
	return u
}

func (u *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	u.where = append(u.where, conditions...)
	return u
}

func (u *UpdateBuilder) ToSQL() (string, []any, error) {
	if err := requireTable("update", u.table); err != nil {
		return "", nil, err
	}
	if len(u.sets) == 0 {
		return "", nil, errors.New("update sets are required")
	}

	var b binder
	parts := make([]string, len(u.sets))
	for i, set := range u.sets {
		if set.raw {
			args, _ := set.value.([]any)
			parts[i] = set.column + " = " + b.expand(set.expr, args)
			continue
		}
		parts[i] = set.column + " = " + b.bind(set.value)
	}

	return "UPDATE " + u.table + " SET " + strings.Join(parts, ", ") + whereSQL(&b, u.where), b.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (d *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	d.where = append(d.where, conditions...)
	return d
}

// ToSQL refuses to build an unconditional delete; use Where(Expr("TRUE"))
// to clear a table on purpose.
func (d *DeleteBuilder) ToSQL() (string, []any, error) {
	if err := requireTable("delete", d.table); err != nil {
		return "", nil, err
	}
	if len(d.where) == 0 {
		return "", nil, errors.New("delete conditions are required")
	}

	var b binder
	return "DELETE FROM " + d.table + whereSQL(&b, d.where), b.args, nil
}
