package querybuilder

import (
	"strconv"
	"strings"
)

// sqlWriter accumulates statement text and its positional ($n) arguments.
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) raw(parts ...string) {
	for _, p := range parts {
		w.buf.WriteString(p)
	}
}

// bind appends value as the next argument and writes its placeholder.
func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

func (w *sqlWriter) joined(conditions []Condition, sep string) {
	for i, c := range conditions {
		if i > 0 {
			w.raw(sep)
		}
		c.writeTo(w)
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.raw(" WHERE ")
	w.joined(conditions, " AND ")
}

func (w *sqlWriter) clause(keyword string, parts []string) {
	if len(parts) > 0 {
		w.raw(keyword, strings.Join(parts, ", "))
	}
}

func (w *sqlWriter) suffix(sql string) {
	if sql != "" {
		w.raw(" ", sql)
	}
}

// expr writes a raw fragment, binding one argument per "?". Extra question marks stay literal.
func (w *sqlWriter) expr(fragment string, args []any) {
	next := 0
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == '?' && next < len(args) {
			w.bind(args[next])
			next++
			continue
		}
		w.buf.WriteByte(fragment[i])
	}
}

func (w *sqlWriter) result() (string, []any, error) {
	if w.args == nil {
		w.args = []any{}
	}
	return w.buf.String(), w.args, nil
}
