package handlers

import (
	"net/http"

	"scholarstream/internal/app"
	"scholarstream/internal/http/response"
)

const reviewsPrefix = "/reviews/"

type ReviewHandler struct {
	reviews *app.ReviewService
}

func NewReviewHandler(reviews *app.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type reviewUpdateRequest struct {
	RatingPoint   any `json:"ratingPoint"`
	ReviewComment any `json:"reviewComment"`
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req app.ReviewInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.reviews.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.reviews.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ReviewHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, reviewsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	items, err := h.reviews.ListByUser(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, reviewsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	var req reviewUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.reviews.Update(r.Context(), id, req.RatingPoint, req.ReviewComment)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, reviewsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.reviews.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
