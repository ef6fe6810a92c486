package querybuilder

// Condition is one AND-ed predicate of a WHERE clause.
type Condition interface {
	write(w *sqlWriter)
}

type condFunc func(w *sqlWriter)

func (f condFunc) write(w *sqlWriter) { f(w) }

func Eq(column string, value any) Condition {
	return condFunc(func(w *sqlWriter) {
		w.raw(column + " = ")
		w.bind(value)
	})
}

func In[T any](column string, values []T) Condition {
	return condFunc(func(w *sqlWriter) {
		if len(values) == 0 {
			w.raw("1=0")
			return
		}
		w.raw(column + " IN (")
		for i, v := range values {
			if i > 0 {
				w.raw(", ")
			}
			w.bind(v)
		}
		w.raw(")")
	})
}

func IsNull(column string) Condition {
	return condFunc(func(w *sqlWriter) { w.raw(column + " IS NULL") })
}

// Expr is a raw predicate whose '?' markers are bound to args in order.
func Expr(expr string, args ...any) Condition {
	return condFunc(func(w *sqlWriter) { w.expr(expr, args) })
}
