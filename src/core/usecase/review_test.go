package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemonreview/src/core/domain"
	"pokemonreview/src/core/dto"
	"pokemonreview/src/infra/logger"
	"pokemonreview/src/infra/repo"
)

type reviewFixture struct {
	pokemon *PokemonService
	reviews *ReviewService
}

func newReviewFixture() reviewFixture {
	store := repo.NewMemoryRepository()
	return reviewFixture{
		pokemon: NewPokemonService(store, logger.Discard()),
		reviews: NewReviewService(store, store, logger.Discard()),
	}
}

func (f reviewFixture) createPokemon(t *testing.T, name string) dto.PokemonDto {
	t.Helper()
	p, err := f.pokemon.CreatePokemon(context.Background(), dto.PokemonDto{Name: name, Type: "normal"})
	require.NoError(t, err)
	return p
}

func TestCreateReview_And_List(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	p := f.createPokemon(t, "pikachu")

	first, err := f.reviews.CreateReview(ctx, p.ID, dto.ReviewDto{ID: 55, Title: "zap", Content: "fast", Rating: 5})
	require.NoError(t, err)
	assert.NotEqual(t, int64(55), first.ID)
	_, err = f.reviews.CreateReview(ctx, p.ID, dto.ReviewDto{Title: "meh", Content: "ok", Rating: 3})
	require.NoError(t, err)

	list, err := f.reviews.GetReviewsByPokemonID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "zap", list[0].Title)
	assert.Equal(t, "meh", list[1].Title)
}

func TestCreateReview_MissingPokemon(t *testing.T) {
	f := newReviewFixture()

	_, err := f.reviews.CreateReview(context.Background(), 9, dto.ReviewDto{Title: "t", Content: "c", Rating: 1})

	assert.True(t, domain.IsNotFound(err))
}

func TestCreateReview_ValidatesRating(t *testing.T) {
	f := newReviewFixture()
	p := f.createPokemon(t, "pikachu")

	_, err := f.reviews.CreateReview(context.Background(), p.ID, dto.ReviewDto{Title: "t", Content: "c", Rating: 6})

	assert.True(t, domain.IsValidationError(err))
}

func TestReview_MustBelongToPokemon(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	owner := f.createPokemon(t, "pikachu")
	other := f.createPokemon(t, "eevee")

	r, err := f.reviews.CreateReview(ctx, owner.ID, dto.ReviewDto{Title: "zap", Content: "fast", Rating: 4})
	require.NoError(t, err)

	_, err = f.reviews.GetReviewByID(ctx, other.ID, r.ID)
	assert.True(t, domain.IsValidationError(err))

	_, err = f.reviews.UpdateReview(ctx, other.ID, r.ID, dto.ReviewDto{Title: "x", Content: "y", Rating: 1})
	assert.True(t, domain.IsValidationError(err))

	err = f.reviews.DeleteReview(ctx, other.ID, r.ID)
	assert.True(t, domain.IsValidationError(err))

	got, err := f.reviews.GetReviewByID(ctx, owner.ID, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "zap", got.Title)
}

func TestUpdateReview_OverwritesFields(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	p := f.createPokemon(t, "pikachu")
	r, err := f.reviews.CreateReview(ctx, p.ID, dto.ReviewDto{Title: "zap", Content: "fast", Rating: 4})
	require.NoError(t, err)

	updated, err := f.reviews.UpdateReview(ctx, p.ID, r.ID, dto.ReviewDto{Title: "ZAP", Content: "faster", Rating: 5})
	require.NoError(t, err)

	assert.Equal(t, dto.ReviewDto{ID: r.ID, Title: "ZAP", Content: "faster", Rating: 5}, updated)
}

func TestDeleteReview(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	p := f.createPokemon(t, "pikachu")
	r, err := f.reviews.CreateReview(ctx, p.ID, dto.ReviewDto{Title: "zap", Content: "fast", Rating: 4})
	require.NoError(t, err)

	require.NoError(t, f.reviews.DeleteReview(ctx, p.ID, r.ID))

	_, err = f.reviews.GetReviewByID(ctx, p.ID, r.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestReviews_MissingIDsAreNotFound(t *testing.T) {
	f := newReviewFixture()
	ctx := context.Background()
	p := f.createPokemon(t, "pikachu")

	_, err := f.reviews.GetReviewsByPokemonID(ctx, 404)
	assert.True(t, domain.IsNotFound(err))

	_, err = f.reviews.GetReviewByID(ctx, p.ID, 404)
	assert.True(t, domain.IsNotFound(err))

	_, err = f.reviews.GetReviewByID(ctx, 404, 1)
	assert.True(t, domain.IsNotFound(err))
}
