// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Parsing and validating HTTP requests
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/app/http/response"
	"pokemonreview/src/app/middleware"
	"pokemonreview/src/core/dto"
)

// PokemonService is the use case surface the Pokemon endpoints depend on.
type PokemonService interface {
	CreatePokemon(ctx context.Context, in dto.PokemonDto) (dto.PokemonDto, error)
	GetAllPokemon(ctx context.Context, pageNo, pageSize int) (dto.PokemonResponse, error)
	GetPokemonByID(ctx context.Context, id int64) (dto.PokemonDto, error)
	UpdatePokemon(ctx context.Context, in dto.PokemonDto, id int64) (dto.PokemonDto, error)
	DeletePokemonID(ctx context.Context, id int64) error
}

// PokemonHandler handles /api/pokemon endpoints.
type PokemonHandler struct {
	pokemonService PokemonService
}

func NewPokemonHandler(pokemonService PokemonService) *PokemonHandler {
	return &PokemonHandler{pokemonService: pokemonService}
}

// Create handles POST /api/pokemon/create.
func (h *PokemonHandler) Create(c *gin.Context) {
	var req dto.PokemonDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	created, err := h.pokemonService.CreatePokemon(c.Request.Context(), req)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, created)
}

// List handles GET /api/pokemon?pageNo=&pageSize=.
func (h *PokemonHandler) List(c *gin.Context) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "invalid paging parameters", middleware.GetRequestID(c))
		return
	}

	page, err := h.pokemonService.GetAllPokemon(c.Request.Context(), q.PageNo, q.PageSize)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, page)
}

// Get handles GET /api/pokemon/:id.
func (h *PokemonHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	p, err := h.pokemonService.GetPokemonByID(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, p)
}

// Update handles PUT /api/pokemon/:id/update.
func (h *PokemonHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PokemonDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	updated, err := h.pokemonService.UpdatePokemon(c.Request.Context(), req, id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, updated)
}

// Delete handles DELETE /api/pokemon/:id/delete.
func (h *PokemonHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.pokemonService.DeletePokemonID(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Deleted(c, "pokemon deleted")
}
