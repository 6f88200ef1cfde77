package handlers

import (
	"net/http"

	"scholarstream/internal/app"
	"scholarstream/internal/domain/scholarship"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/http/response"
)

const scholarshipsPrefix = "/scholarships/"

type ScholarshipHandler struct {
	scholarships *app.ScholarshipService
}

func NewScholarshipHandler(scholarships *app.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{scholarships: scholarships}
}

func (h *ScholarshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := decodeJSON(r, &doc); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.scholarships.Create(r.Context(), doc)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ScholarshipHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := scholarship.Filter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	}
	items, err := h.scholarships.List(r.Context(), filter, scholarship.Order(query.Get("order")))
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ScholarshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, scholarshipsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	doc, err := h.scholarships.Get(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, doc)
}

func (h *ScholarshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, scholarshipsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	var doc store.Document
	if err := decodeJSON(r, &doc); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.scholarships.Update(r.Context(), id, doc)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ScholarshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, scholarshipsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.scholarships.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
