package repo

import (
	"context"
	"sort"
	"sync"

	"pokemonreview/src/core/domain"
	"pokemonreview/src/core/ports"
)

var _ ports.Store = (*MemoryRepository)(nil)

// MemoryRepository is an in-process ports.Store. Ids start at 1 and are
// never reused, like a database sequence.
type MemoryRepository struct {
	mu            sync.RWMutex
	pokemon       map[int64]domain.Pokemon
	reviews       map[int64]domain.Review
	nextPokemonID int64
	nextReviewID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		pokemon: make(map[int64]domain.Pokemon),
		reviews: make(map[int64]domain.Review),
	}
}

func (r *MemoryRepository) Health(_ context.Context) error {
	return nil
}

// Pokemon

func (r *MemoryRepository) CreatePokemon(_ context.Context, p domain.Pokemon) (*domain.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextPokemonID++
	stored := domain.Pokemon{ID: r.nextPokemonID, Name: p.Name, Type: p.Type}
	r.pokemon[stored.ID] = stored
	return &stored, nil
}

func (r *MemoryRepository) GetPokemonByID(_ context.Context, id int64) (*domain.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pokemon[id]
	if !ok {
		return nil, domain.NewNotFoundError("pokemon", id)
	}
	p.Reviews = r.reviewsOf(id)
	return &p, nil
}

func (r *MemoryRepository) ListPokemon(_ context.Context, page domain.PageRequest) (*domain.Page[domain.Pokemon], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int64, 0, len(r.pokemon))
	for id := range r.pokemon {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := &domain.Page[domain.Pokemon]{
		Items:         []domain.Pokemon{},
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: int64(len(ids)),
	}
	start := page.Offset()
	if start >= len(ids) {
		return out, nil
	}
	end := min(start+page.PageSize, len(ids))
	for _, id := range ids[start:end] {
		out.Items = append(out.Items, r.pokemon[id])
	}
	return out, nil
}

func (r *MemoryRepository) UpdatePokemon(_ context.Context, p domain.Pokemon) (*domain.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.pokemon[p.ID]
	if !ok {
		return nil, domain.NewNotFoundError("pokemon", p.ID)
	}
	stored.Name = p.Name
	stored.Type = p.Type
	r.pokemon[p.ID] = stored
	return &stored, nil
}

func (r *MemoryRepository) DeletePokemon(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pokemon[id]; !ok {
		return domain.NewNotFoundError("pokemon", id)
	}
	for reviewID, rv := range r.reviews {
		if rv.PokemonID == id {
			delete(r.reviews, reviewID)
		}
	}
	delete(r.pokemon, id)
	return nil
}

// Reviews

func (r *MemoryRepository) CreateReview(_ context.Context, rv domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pokemon[rv.PokemonID]; !ok {
		return nil, domain.NewNotFoundError("pokemon", rv.PokemonID)
	}
	r.nextReviewID++
	rv.ID = r.nextReviewID
	r.reviews[rv.ID] = rv
	return &rv, nil
}

func (r *MemoryRepository) GetReviewByID(_ context.Context, id int64) (*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rv, ok := r.reviews[id]
	if !ok {
		return nil, domain.NewNotFoundError("review", id)
	}
	return &rv, nil
}

func (r *MemoryRepository) ListReviewsByPokemonID(_ context.Context, pokemonID int64) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.reviewsOf(pokemonID), nil
}

func (r *MemoryRepository) UpdateReview(_ context.Context, rv domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.reviews[rv.ID]
	if !ok {
		return nil, domain.NewNotFoundError("review", rv.ID)
	}
	stored.Title = rv.Title
	stored.Content = rv.Content
	stored.Rating = rv.Rating
	r.reviews[rv.ID] = stored
	return &stored, nil
}

func (r *MemoryRepository) DeleteReview(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return domain.NewNotFoundError("review", id)
	}
	delete(r.reviews, id)
	return nil
}

// reviewsOf returns the Pokemon's reviews ordered by id. Callers hold the lock.
func (r *MemoryRepository) reviewsOf(pokemonID int64) []domain.Review {
	out := []domain.Review{}
	for _, rv := range r.reviews {
		if rv.PokemonID == pokemonID {
			out = append(out, rv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
