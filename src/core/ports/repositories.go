// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"pokemonreview/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// PokemonRepository persists Pokemon aggregates keyed by numeric id.
// Every method returning a single Pokemon fails with a domain not found
// error when the id does not exist.
type PokemonRepository interface {
	Repository

	// CreatePokemon inserts p, ignoring p.ID, and returns the stored row with its assigned id.
	CreatePokemon(ctx context.Context, p domain.Pokemon) (*domain.Pokemon, error)
	// GetPokemonByID returns the Pokemon with Reviews filled, ordered by id ascending.
	GetPokemonByID(ctx context.Context, id int64) (*domain.Pokemon, error)
	// ListPokemon returns a page ordered by id ascending.
	ListPokemon(ctx context.Context, page domain.PageRequest) (*domain.Page[domain.Pokemon], error)
	// UpdatePokemon overwrites name and type of the Pokemon with p.ID.
	UpdatePokemon(ctx context.Context, p domain.Pokemon) (*domain.Pokemon, error)
	// DeletePokemon removes the Pokemon and all of its reviews atomically.
	DeletePokemon(ctx context.Context, id int64) error
}

// ReviewRepository persists reviews. Reviews are always addressed through
// their owning Pokemon by the service layer.
type ReviewRepository interface {
	Repository

	// CreateReview inserts r, ignoring r.ID, and returns the stored row.
	CreateReview(ctx context.Context, r domain.Review) (*domain.Review, error)
	GetReviewByID(ctx context.Context, id int64) (*domain.Review, error)
	// ListReviewsByPokemonID returns the Pokemon's reviews ordered by id ascending.
	ListReviewsByPokemonID(ctx context.Context, pokemonID int64) ([]domain.Review, error)
	// UpdateReview overwrites title, content and rating of the review with r.ID.
	UpdateReview(ctx context.Context, r domain.Review) (*domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// Store bundles every repository the application needs. Both the Postgres
// and in-memory adapters satisfy it.
type Store interface {
	PokemonRepository
	ReviewRepository
}
