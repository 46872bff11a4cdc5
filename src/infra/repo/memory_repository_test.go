package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokemonreview/src/core/domain"
)

func TestMemoryRepository_CreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	first, err := r.CreatePokemon(ctx, domain.Pokemon{ID: 99, Name: "pikachu", Type: "electric"})
	require.NoError(t, err)
	second, err := r.CreatePokemon(ctx, domain.Pokemon{Name: "bulbasaur", Type: "grass"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryRepository_ListPokemonPages(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		_, err := r.CreatePokemon(ctx, domain.Pokemon{Name: name, Type: "normal"})
		require.NoError(t, err)
	}

	page, err := r.ListPokemon(ctx, domain.PageRequest{PageNo: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "c", page.Items[0].Name)
	assert.Equal(t, "d", page.Items[1].Name)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.False(t, page.IsLast())

	page, err = r.ListPokemon(ctx, domain.PageRequest{PageNo: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.IsLast())

	page, err = r.ListPokemon(ctx, domain.PageRequest{PageNo: 7, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.True(t, page.IsLast())
}

func TestMemoryRepository_DeletePokemonCascadesReviews(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	keep, err := r.CreatePokemon(ctx, domain.Pokemon{Name: "eevee", Type: "normal"})
	require.NoError(t, err)
	gone, err := r.CreatePokemon(ctx, domain.Pokemon{Name: "pikachu", Type: "electric"})
	require.NoError(t, err)

	kept, err := r.CreateReview(ctx, domain.Review{Title: "cute", Content: "very", Rating: 5, PokemonID: keep.ID})
	require.NoError(t, err)
	dropped, err := r.CreateReview(ctx, domain.Review{Title: "fast", Content: "zap", Rating: 4, PokemonID: gone.ID})
	require.NoError(t, err)

	require.NoError(t, r.DeletePokemon(ctx, gone.ID))

	_, err = r.GetPokemonByID(ctx, gone.ID)
	assert.True(t, domain.IsNotFound(err))
	_, err = r.GetReviewByID(ctx, dropped.ID)
	assert.True(t, domain.IsNotFound(err))

	_, err = r.GetReviewByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestMemoryRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	_, err := r.GetPokemonByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.UpdatePokemon(ctx, domain.Pokemon{ID: 1, Name: "x", Type: "y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.DeletePokemon(ctx, 1), domain.ErrNotFound)
	_, err = r.CreateReview(ctx, domain.Review{Title: "t", Content: "c", Rating: 3, PokemonID: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.DeleteReview(ctx, 1), domain.ErrNotFound)
}

func TestMemoryRepository_GetPokemonIncludesReviews(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	p, err := r.CreatePokemon(ctx, domain.Pokemon{Name: "snorlax", Type: "normal"})
	require.NoError(t, err)
	_, err = r.CreateReview(ctx, domain.Review{Title: "sleepy", Content: "zzz", Rating: 2, PokemonID: p.ID})
	require.NoError(t, err)

	got, err := r.GetPokemonByID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Reviews, 1)
	assert.Equal(t, "sleepy", got.Reviews[0].Title)
}
