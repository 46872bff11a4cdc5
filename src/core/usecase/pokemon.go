package usecase

import (
	"context"
	"log/slog"
	"strings"

	"pokemonreview/src/core/domain"
	"pokemonreview/src/core/dto"
	"pokemonreview/src/core/ports"
)

// PokemonService handles Pokemon CRUD and list pagination.
type PokemonService struct {
	repo ports.PokemonRepository
	log  *slog.Logger
}

func NewPokemonService(repo ports.PokemonRepository, log *slog.Logger) *PokemonService {
	return &PokemonService{repo: repo, log: log}
}

// CreatePokemon stores a new Pokemon. Any id supplied by the caller is ignored.
func (s *PokemonService) CreatePokemon(ctx context.Context, in dto.PokemonDto) (dto.PokemonDto, error) {
	if err := validatePokemon(in); err != nil {
		return dto.PokemonDto{}, err
	}

	created, err := s.repo.CreatePokemon(ctx, in.ToDomain(0))
	if err != nil {
		return dto.PokemonDto{}, err
	}
	s.log.Info("pokemon created", "pokemon_id", created.ID)
	return dto.PokemonFromDomain(created), nil
}

// GetAllPokemon returns the zero-based page pageNo of size pageSize, ordered by id.
func (s *PokemonService) GetAllPokemon(ctx context.Context, pageNo, pageSize int) (dto.PokemonResponse, error) {
	req := domain.PageRequest{PageNo: pageNo, PageSize: pageSize}
	if err := req.Validate(); err != nil {
		return dto.PokemonResponse{}, err
	}

	page, err := s.repo.ListPokemon(ctx, req)
	if err != nil {
		return dto.PokemonResponse{}, err
	}
	return dto.PokemonResponseFromPage(page), nil
}

func (s *PokemonService) GetPokemonByID(ctx context.Context, id int64) (dto.PokemonDto, error) {
	p, err := s.repo.GetPokemonByID(ctx, id)
	if err != nil {
		return dto.PokemonDto{}, err
	}
	return dto.PokemonFromDomain(p), nil
}

// UpdatePokemon replaces name and type of an existing Pokemon. The stored id is kept.
func (s *PokemonService) UpdatePokemon(ctx context.Context, in dto.PokemonDto, id int64) (dto.PokemonDto, error) {
	if err := validatePokemon(in); err != nil {
		return dto.PokemonDto{}, err
	}

	existing, err := s.repo.GetPokemonByID(ctx, id)
	if err != nil {
		return dto.PokemonDto{}, err
	}
	existing.Name = in.Name
	existing.Type = in.Type

	updated, err := s.repo.UpdatePokemon(ctx, *existing)
	if err != nil {
		return dto.PokemonDto{}, err
	}
	s.log.Info("pokemon updated", "pokemon_id", updated.ID)
	return dto.PokemonFromDomain(updated), nil
}

// DeletePokemonID removes the Pokemon and its reviews.
func (s *PokemonService) DeletePokemonID(ctx context.Context, id int64) error {
	if _, err := s.repo.GetPokemonByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeletePokemon(ctx, id); err != nil {
		return err
	}
	s.log.Info("pokemon deleted", "pokemon_id", id)
	return nil
}

func validatePokemon(in dto.PokemonDto) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("name", "cannot be empty")
	}
	if strings.TrimSpace(in.Type) == "" {
		return domain.NewValidationError("type", "cannot be empty")
	}
	return nil
}
