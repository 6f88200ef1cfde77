package handlers

import (
	"net/http"

	"scholarstream/internal/app"
	"scholarstream/internal/common"
	"scholarstream/internal/domain/store"
	"scholarstream/internal/http/response"
)

const usersPrefix = "/users/"

type UserHandler struct {
	users *app.UserService
}

func NewUserHandler(users *app.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type roleRequest struct {
	Role any `json:"role"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var doc store.Document
	if err := decodeJSON(r, &doc); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.users.Create(r.Context(), doc)
	if err != nil {
		if common.Is(err, common.CodeConflict) {
			response.Message(w, http.StatusOK, "User already exists")
			return
		}
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, usersPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	doc, err := h.users.Get(r.Context(), email)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, doc)
}

func (h *UserHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, usersPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.users.SetRole(r.Context(), email, req.Role)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email, err := pathParam(r, usersPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.users.Delete(r.Context(), email)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
