package domain

import "math"

// Pokemon is the aggregate root. It owns its reviews: deleting a Pokemon
// deletes every review attached to it.
type Pokemon struct {
	ID      int64
	Name    string
	Type    string
	Reviews []Review
}

// Review is a rating left on a single Pokemon.
type Review struct {
	ID        int64
	Title     string
	Content   string
	Rating    int
	PokemonID int64
}

// BelongsTo reports whether the review is owned by the given Pokemon.
func (r *Review) BelongsTo(pokemonID int64) bool {
	return r.PokemonID == pokemonID
}

// PageRequest selects a zero-based page of a fixed size.
type PageRequest struct {
	PageNo   int
	PageSize int
}

// Offset is the number of rows to skip to reach the requested page.
func (p PageRequest) Offset() int {
	return p.PageNo * p.PageSize
}

// Validate checks the page bounds.
func (p PageRequest) Validate() error {
	if p.PageNo < 0 {
		return NewValidationError("pageNo", "must be zero or greater")
	}
	if p.PageSize < 1 || p.PageSize > MaxPageSize {
		return NewValidationError("pageSize", "must be between 1 and 100")
	}
	// Offset must fit in an int.
	if p.PageNo > math.MaxInt/p.PageSize {
		return NewValidationError("pageNo", "is too large")
	}
	return nil
}

// Page is one page of results together with totals for the whole result set.
type Page[T any] struct {
	Items         []T
	PageNo        int
	PageSize      int
	TotalElements int64
}

// TotalPages is ceil(TotalElements / PageSize); zero for an empty result set.
func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// IsLast reports whether no page follows this one. An empty result set has
// a single, last page.
func (p Page[T]) IsLast() bool {
	return p.PageNo+1 >= p.TotalPages()
}
