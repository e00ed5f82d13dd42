package database

import "strings"

// selectQuery assembles a SELECT statement from optional predicates. Each
// predicate is kept as a (fragment, bound value) pair and joined with AND
// in the order it was added; caller-supplied values are never written into
// the statement text.
type selectQuery struct {
	base  string
	conds []string
	args  []interface{}
	order string
	limit *int64
}

func newSelect(base string) *selectQuery {
	return &selectQuery{base: base}
}

// Where appends an AND-joined predicate. The fragment must contain exactly
// one ? placeholder.
func (q *selectQuery) Where(fragment string, value interface{}) *selectQuery {
	q.conds = append(q.conds, fragment)
	q.args = append(q.args, value)
	return q
}

func (q *selectQuery) OrderBy(clause string) *selectQuery {
	q.order = clause
	return q
}

// Limit caps the result count. The clause and its argument always render
// last regardless of when Limit is called.
func (q *selectQuery) Limit(n int64) *selectQuery {
	q.limit = &n
	return q
}

func (q *selectQuery) Build() (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(q.base)
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	if q.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.order)
	}
	args := q.args
	if q.limit != nil {
		sb.WriteString(" LIMIT ?")
		args = append(args, *q.limit)
	}
	return sb.String(), args
}

// updateQuery assembles an UPDATE statement touching only the columns that
// were explicitly set.
type updateQuery struct {
	table string
	sets  []string
	args  []interface{}
}

func newUpdate(table string) *updateQuery {
	return &updateQuery{table: table}
}

func (q *updateQuery) Set(column string, value interface{}) *updateQuery {
	q.sets = append(q.sets, column+" = ?")
	q.args = append(q.args, value)
	return q
}

// Empty reports whether no column has been set; an empty update must not
// be executed.
func (q *updateQuery) Empty() bool {
	return len(q.sets) == 0
}

// Build renders "UPDATE <table> SET ... WHERE <where>" with the WHERE
// arguments appended after the SET arguments.
func (q *updateQuery) Build(where string, whereArgs ...interface{}) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(q.table)
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(q.sets, ", "))
	sb.WriteString(" WHERE ")
	sb.WriteString(where)
	return sb.String(), append(q.args, whereArgs...)
}
