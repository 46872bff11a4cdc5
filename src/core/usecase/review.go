package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pokemonreview/src/core/domain"
	"pokemonreview/src/core/dto"
	"pokemonreview/src/core/ports"
)

// ReviewService handles reviews nested under a Pokemon.
type ReviewService struct {
	pokemon ports.PokemonRepository
	reviews ports.ReviewRepository
	log     *slog.Logger
}

func NewReviewService(pokemon ports.PokemonRepository, reviews ports.ReviewRepository, log *slog.Logger) *ReviewService {
	return &ReviewService{pokemon: pokemon, reviews: reviews, log: log}
}

// CreateReview attaches a new review to the Pokemon with pokemonID.
func (s *ReviewService) CreateReview(ctx context.Context, pokemonID int64, in dto.ReviewDto) (dto.ReviewDto, error) {
	if err := validateReview(in); err != nil {
		return dto.ReviewDto{}, err
	}
	if _, err := s.pokemon.GetPokemonByID(ctx, pokemonID); err != nil {
		return dto.ReviewDto{}, err
	}

	created, err := s.reviews.CreateReview(ctx, in.ToDomain(0, pokemonID))
	if err != nil {
		return dto.ReviewDto{}, err
	}
	s.log.Info("review created", "pokemon_id", pokemonID, "review_id", created.ID)
	return dto.ReviewFromDomain(created), nil
}

func (s *ReviewService) GetReviewsByPokemonID(ctx context.Context, pokemonID int64) ([]dto.ReviewDto, error) {
	if _, err := s.pokemon.GetPokemonByID(ctx, pokemonID); err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListReviewsByPokemonID(ctx, pokemonID)
	if err != nil {
		return nil, err
	}
	return dto.ReviewsFromDomain(reviews), nil
}

func (s *ReviewService) GetReviewByID(ctx context.Context, pokemonID, reviewID int64) (dto.ReviewDto, error) {
	r, err := s.ownedReview(ctx, pokemonID, reviewID)
	if err != nil {
		return dto.ReviewDto{}, err
	}
	return dto.ReviewFromDomain(r), nil
}

// UpdateReview replaces title, content and rating. Ownership never changes.
func (s *ReviewService) UpdateReview(ctx context.Context, pokemonID, reviewID int64, in dto.ReviewDto) (dto.ReviewDto, error) {
	if err := validateReview(in); err != nil {
		return dto.ReviewDto{}, err
	}
	r, err := s.ownedReview(ctx, pokemonID, reviewID)
	if err != nil {
		return dto.ReviewDto{}, err
	}

	updated, err := s.reviews.UpdateReview(ctx, in.ToDomain(r.ID, r.PokemonID))
	if err != nil {
		return dto.ReviewDto{}, err
	}
	s.log.Info("review updated", "pokemon_id", pokemonID, "review_id", reviewID)
	return dto.ReviewFromDomain(updated), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, pokemonID, reviewID int64) error {
	if _, err := s.ownedReview(ctx, pokemonID, reviewID); err != nil {
		return err
	}
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	s.log.Info("review deleted", "pokemon_id", pokemonID, "review_id", reviewID)
	return nil
}

// ownedReview loads a review and checks it belongs to pokemonID.
func (s *ReviewService) ownedReview(ctx context.Context, pokemonID, reviewID int64) (*domain.Review, error) {
	if _, err := s.pokemon.GetPokemonByID(ctx, pokemonID); err != nil {
		return nil, err
	}
	r, err := s.reviews.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if !r.BelongsTo(pokemonID) {
		return nil, domain.NewValidationError("reviewId", "review does not belong to this pokemon")
	}
	return r, nil
}

func validateReview(in dto.ReviewDto) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.NewValidationError("title", "cannot be empty")
	}
	if strings.TrimSpace(in.Content) == "" {
		return domain.NewValidationError("content", "cannot be empty")
	}
	if in.Rating < domain.MinReviewRating || in.Rating > domain.MaxReviewRating {
		return domain.NewValidationError("rating",
			fmt.Sprintf("must be between %d and %d", domain.MinReviewRating, domain.MaxReviewRating))
	}
	return nil
}
