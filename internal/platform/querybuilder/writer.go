package querybuilder

import (
	"strconv"
	"strings"
)

// sqlWriter accumulates SQL text and numbered ($n) bind arguments.
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) raw(s string) {
	w.buf.WriteString(s)
}

func (w *sqlWriter) bind(v any) {
	w.args = append(w.args, v)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// expr writes s replacing each '?' with the next bound value.
func (w *sqlWriter) expr(s string, values []any) {
	next := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '?' && next < len(values) {
			w.bind(values[next])
			next++
			continue
		}
		w.buf.WriteByte(s[i])
	}
}

func (w *sqlWriter) where(conds []Condition) {
	if len(conds) == 0 {
		return
	}
	w.raw(" WHERE ")
	for i, c := range conds {
		if i > 0 {
			w.raw(" AND ")
		}
		c.write(w)
	}
}

func (w *sqlWriter) result() (string, []any) {
	return w.buf.String(), w.args
}
