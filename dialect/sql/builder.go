package sql

import (
	"strconv"
	"strings"

	enum "github.com/rossjcooper/laravel-enum"
	"github.com/rossjcooper/laravel-enum/dialect"
)

// Selector builds a SELECT statement with list predicates. It implements
// enum.Builder, so scope helpers can hand it normalized predicate values
// directly.
type Selector struct {
	dialect string
	table   string
	columns []string
	preds   []pred
}

// pred is a single accumulated list predicate.
type pred struct {
	column string
	negate bool
	or     bool
	args   []any
}

// Select returns a Selector for the given columns. No columns selects all.
func Select(columns ...string) *Selector {
	return &Selector{columns: columns}
}

// From sets the table to select from.
func (s *Selector) From(table string) *Selector {
	s.table = table
	return s
}

// Dialect sets the dialect the statement is rendered for. It controls the
// placeholder style; the zero value renders "?" placeholders.
func (s *Selector) Dialect(name string) *Selector {
	s.dialect = name
	return s
}

// WhereIn appends an AND-combined include-list predicate.
func (s *Selector) WhereIn(column string, vs ...any) enum.Builder {
	s.preds = append(s.preds, pred{column: column, args: vs})
	return s
}

// WhereNotIn appends an AND-combined exclude-list predicate.
func (s *Selector) WhereNotIn(column string, vs ...any) enum.Builder {
	s.preds = append(s.preds, pred{column: column, negate: true, args: vs})
	return s
}

// OrWhereIn appends an OR-combined include-list predicate.
func (s *Selector) OrWhereIn(column string, vs ...any) enum.Builder {
	s.preds = append(s.preds, pred{column: column, or: true, args: vs})
	return s
}

// OrWhereNotIn appends an OR-combined exclude-list predicate.
func (s *Selector) OrWhereNotIn(column string, vs ...any) enum.Builder {
	s.preds = append(s.preds, pred{column: column, negate: true, or: true, args: vs})
	return s
}

// Query renders the statement and its arguments.
func (s *Selector) Query() (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("SELECT ")
	if len(s.columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(s.columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(s.table)
	for i, p := range s.preds {
		switch {
		case i == 0:
			b.WriteString(" WHERE ")
		case p.or:
			b.WriteString(" OR ")
		default:
			b.WriteString(" AND ")
		}
		args = s.pred(&b, p, args)
	}
	return b.String(), args
}

// pred renders a single predicate and appends its arguments. An empty
// include list can match nothing and renders FALSE; an empty exclude list
// excludes nothing and renders TRUE.
func (s *Selector) pred(b *strings.Builder, p pred, args []any) []any {
	if len(p.args) == 0 {
		if p.negate {
			b.WriteString("TRUE")
		} else {
			b.WriteString("FALSE")
		}
		return args
	}
	b.WriteString(p.column)
	if p.negate {
		b.WriteString(" NOT IN (")
	} else {
		b.WriteString(" IN (")
	}
	for i, arg := range p.args {
		if i > 0 {
			b.WriteString(", ")
		}
		args = append(args, arg)
		if s.dialect == dialect.Postgres {
			b.WriteString("$" + strconv.Itoa(len(args)))
		} else {
			b.WriteString("?")
		}
	}
	b.WriteString(")")
	return args
}

var _ enum.Builder = (*Selector)(nil)
