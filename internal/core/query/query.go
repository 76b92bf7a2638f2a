// Package query implements the filter/paginate transformation shared by every
// listing endpoint. It is pure: the input slice is never mutated and relative
// order is always preserved.
package query

import (
	"strings"

	"github.com/edulab/lms-api/internal/core/domain"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Predicate is a boolean filter over a single entity.
type Predicate[T any] func(T) bool

// Page is one page of a filtered listing. Total counts the whole filtered
// set, so callers can derive the page count as ceil(Total/Limit).
type Page[T any] struct {
	Data  []T
	Total int64
	Page  int
	Limit int
}

// Run applies all predicates conjunctively, then slices out the requested
// page. A page past the end of the filtered set yields an empty Data slice,
// not an error. Non-positive page or limit values are rejected; the HTTP
// layer validates them first, this is a defensive backstop.
func Run[T any](items []T, predicates []Predicate[T], page, limit int) (*Page[T], error) {
	if page <= 0 || limit <= 0 {
		return nil, domain.ErrInvalidPagination
	}

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, predicates) {
			filtered = append(filtered, item)
		}
	}

	// Compare against the last page index instead of multiplying page*limit,
	// so an arbitrarily large page cannot overflow into a negative offset.
	if len(filtered) == 0 || page-1 > (len(filtered)-1)/limit {
		return &Page[T]{Data: []T{}, Total: int64(len(filtered)), Page: page, Limit: limit}, nil
	}

	start := (page - 1) * limit
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return &Page[T]{
		Data:  filtered[start:end],
		Total: int64(len(filtered)),
		Page:  page,
		Limit: limit,
	}, nil
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// TotalPages returns ceil(total/limit), the page count clients need to walk
// the full filtered set.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ContainsFold reports whether s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
