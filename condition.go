package tablewise

// Cond is a single equality test against one column. Lists of conditions
// always combine with AND; no other predicate form is supported.
type Cond struct {
	Column string
	Value  any
}

// Eq builds an equality condition.
func Eq(column string, value any) Cond {
	return Cond{Column: column, Value: value}
}
