package dto

import "pokemonreview/src/core/domain"

// PokemonDto is the flat projection of a Pokemon.
type PokemonDto struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// PokemonFromDomain copies id, name and type. Reviews are not projected.
func PokemonFromDomain(p *domain.Pokemon) PokemonDto {
	return PokemonDto{
		ID:   p.ID,
		Name: p.Name,
		Type: p.Type,
	}
}

// ToDomain builds an entity carrying the given id. The DTO's own id is ignored.
func (d PokemonDto) ToDomain(id int64) domain.Pokemon {
	return domain.Pokemon{
		ID:   id,
		Name: d.Name,
		Type: d.Type,
	}
}

// PokemonResponse is the pagination envelope returned by the list endpoint.
type PokemonResponse struct {
	Content       []PokemonDto `json:"content"`
	PageNo        int          `json:"pageNo"`
	PageSize      int          `json:"pageSize"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int          `json:"totalPages"`
	Last          bool         `json:"last"`
}

// PokemonResponseFromPage maps every entity of the page and copies its metadata.
func PokemonResponseFromPage(page *domain.Page[domain.Pokemon]) PokemonResponse {
	content := make([]PokemonDto, 0, len(page.Items))
	for i := range page.Items {
		content = append(content, PokemonFromDomain(&page.Items[i]))
	}
	return PokemonResponse{
		Content:       content,
		PageNo:        page.PageNo,
		PageSize:      page.PageSize,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		Last:          page.IsLast(),
	}
}
