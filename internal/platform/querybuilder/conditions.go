package querybuilder

// Condition is one WHERE predicate. Multiple conditions passed to Where are ANDed.
type Condition interface {
	writeTo(w *sqlWriter)
}

type compare struct {
	column string
	op     string
	value  any
}

func Eq(column string, value any) Condition {
	return compare{column: column, op: "=", value: value}
}

// ILike matches column against a Postgres ILIKE pattern.
func ILike(column, pattern string) Condition {
	return compare{column: column, op: "ILIKE", value: pattern}
}

func (c compare) writeTo(w *sqlWriter) {
	w.raw(c.column, " ", c.op, " ")
	w.bind(c.value)
}

type inList struct {
	column string
	values []any
}

// InInt64 matches column against an id list. An empty list matches nothing.
func InInt64(column string, ids []int64) Condition {
	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	return inList{column: column, values: values}
}

func (c inList) writeTo(w *sqlWriter) {
	if len(c.values) == 0 {
		w.raw("1=0")
		return
	}
	w.raw(c.column, " IN (")
	for i, v := range c.values {
		if i > 0 {
			w.raw(", ")
		}
		w.bind(v)
	}
	w.raw(")")
}

type rawExpr struct {
	sql  string
	args []any
}

// Expr embeds raw SQL; each "?" consumes one of args.
func Expr(sql string, args ...any) Condition {
	return rawExpr{sql: sql, args: args}
}

func (c rawExpr) writeTo(w *sqlWriter) {
	w.expr(c.sql, c.args)
}

type anyOf []Condition

// Or joins conditions with OR inside parentheses. An empty Or matches nothing.
func Or(conditions ...Condition) Condition {
	return anyOf(conditions)
}

func (c anyOf) writeTo(w *sqlWriter) {
	if len(c) == 0 {
		w.raw("1=0")
		return
	}
	w.raw("(")
	w.joined(c, " OR ")
	w.raw(")")
}
