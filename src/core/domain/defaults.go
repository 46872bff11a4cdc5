package domain

// DefaultPageNo is the page returned when the caller does not ask for one.
// Page numbers are zero-based.
const DefaultPageNo = 0

// DefaultPageSize is the number of items per page when the caller does not specify one.
const DefaultPageSize = 10

// MaxPageSize caps the page size a caller may request.
const MaxPageSize = 100

// MinReviewRating and MaxReviewRating bound a review's rating.
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)
