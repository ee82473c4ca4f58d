package store

import "strings"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ProductFilter describes the listing predicate. Zero values mean "filter
// not supplied" and are omitted from the WHERE clause entirely.
type ProductFilter struct {
	CategoryID int64
	ActiveOnly bool
	Search     string
	Page       int
	Limit      int
}

// Normalized clamps page and limit so offset math can never divide by zero
// or go negative.
func (f ProductFilter) Normalized() ProductFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	return f
}

func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// WhereClause assembles the conjunctive predicate shared by the count and
// page queries. Returns an empty string when no filter is supplied.
func (f ProductFilter) WhereClause() (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.ActiveOnly {
		clauses = append(clauses, "is_active = 1")
	}
	if f.CategoryID > 0 {
		clauses = append(clauses, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.Search != "" {
		clauses = append(clauses, "(name LIKE ? OR description LIKE ? OR box LIKE ?)")
		pattern := "%" + f.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
