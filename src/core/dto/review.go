package dto

import "pokemonreview/src/core/domain"

// ReviewDto is the flat projection of a Review, without its owner.
type ReviewDto struct {
	ID      int64  `json:"id"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func ReviewFromDomain(r *domain.Review) ReviewDto {
	return ReviewDto{
		ID:      r.ID,
		Title:   r.Title,
		Content: r.Content,
		Rating:  r.Rating,
	}
}

func ReviewsFromDomain(reviews []domain.Review) []ReviewDto {
	out := make([]ReviewDto, 0, len(reviews))
	for i := range reviews {
		out = append(out, ReviewFromDomain(&reviews[i]))
	}
	return out
}

// ToDomain builds a review with the given id owned by pokemonID.
func (d ReviewDto) ToDomain(id, pokemonID int64) domain.Review {
	return domain.Review{
		ID:        id,
		Title:     d.Title,
		Content:   d.Content,
		Rating:    d.Rating,
		PokemonID: pokemonID,
	}
}
