package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"pokemonreview/src/app/http/response"
	"pokemonreview/src/app/middleware"
	"pokemonreview/src/core/dto"
)

// ReviewService is the use case surface the review endpoints depend on.
type ReviewService interface {
	CreateReview(ctx context.Context, pokemonID int64, in dto.ReviewDto) (dto.ReviewDto, error)
	GetReviewsByPokemonID(ctx context.Context, pokemonID int64) ([]dto.ReviewDto, error)
	GetReviewByID(ctx context.Context, pokemonID, reviewID int64) (dto.ReviewDto, error)
	UpdateReview(ctx context.Context, pokemonID, reviewID int64, in dto.ReviewDto) (dto.ReviewDto, error)
	DeleteReview(ctx context.Context, pokemonID, reviewID int64) error
}

// ReviewHandler handles /api/pokemon/:id/reviews endpoints.
type ReviewHandler struct {
	reviewService ReviewService
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	pokemonID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	created, err := h.reviewService.CreateReview(c.Request.Context(), pokemonID, req)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, created)
}

func (h *ReviewHandler) List(c *gin.Context) {
	pokemonID, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.GetReviewsByPokemonID(c.Request.Context(), pokemonID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, reviews)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	pokemonID, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	r, err := h.reviewService.GetReviewByID(c.Request.Context(), pokemonID, reviewID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, r)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	pokemonID, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}
	var req dto.ReviewDto
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid payload", middleware.GetRequestID(c))
		return
	}

	updated, err := h.reviewService.UpdateReview(c.Request.Context(), pokemonID, reviewID, req)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, updated)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	pokemonID, ok := parseID(c, "id")
	if !ok {
		return
	}
	reviewID, ok := parseID(c, "reviewId")
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), pokemonID, reviewID); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Deleted(c, "review deleted")
}
