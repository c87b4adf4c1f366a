package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one WHERE predicate, appending bound args as it goes.
type Condition interface {
	render(w *sqlWriter)
}

type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.buf.WriteString(" AND ")
		}
		c.render(w)
	}
}

// expr writes raw SQL replacing each ? with the next bound arg.
func (w *sqlWriter) expr(sql string, args []any) {
	next := 0
	for i := 0; i < len(sql); i++ {
		if sql[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.buf.WriteByte(sql[i])
	}
}

type eq struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eq{column: column, value: value}
}

func (c eq) render(w *sqlWriter) {
	w.buf.WriteString(c.column)
	w.buf.WriteString(" = ")
	w.bind(c.value)
}

type in struct {
	column string
	values []any
}

func In[T any](column string, values []T) Condition {
	boxed := make([]any, 0, len(values))
	for _, v := range values {
		boxed = append(boxed, v)
	}
	return in{column: column, values: boxed}
}

func (c in) render(w *sqlWriter) {
	if len(c.values) == 0 {
		w.buf.WriteString("1=0")
		return
	}
	w.buf.WriteString(c.column)
	w.buf.WriteString(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.buf.WriteString(", ")
		}
		w.bind(v)
	}
	w.buf.WriteString(")")
}

type nullCheck struct {
	column string
	not    bool
}

func IsNull(column string) Condition {
	return nullCheck{column: column}
}

func IsNotNull(column string) Condition {
	return nullCheck{column: column, not: true}
}

func (c nullCheck) render(w *sqlWriter) {
	w.buf.WriteString(c.column)
	if c.not {
		w.buf.WriteString(" IS NOT NULL")
		return
	}
	w.buf.WriteString(" IS NULL")
}

type rawExpr struct {
	sql  string
	args []any
}

func Expr(sql string, args ...any) Condition {
	return rawExpr{sql: sql, args: args}
}

func (c rawExpr) render(w *sqlWriter) {
	w.expr(c.sql, c.args)
}
