package handlers

import (
	"net/http"

	"scholarstream/internal/app"
	"scholarstream/internal/common"
	"scholarstream/internal/domain/application"
	"scholarstream/internal/http/response"
)

const applicationsPrefix = "/applications/"

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applicationCreated struct {
	Success    bool      `json:"success"`
	InsertedID common.ID `json:"insertedId"`
}

type applicantRequest struct {
	UserName  any `json:"userName"`
	UserEmail any `json:"userEmail"`
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req app.ApplicationInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.applications.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, applicationCreated{Success: true, InsertedID: result.InsertedID})
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.applications.List(r.Context())
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, applicationsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	items, err := h.applications.ListByUser(r.Context(), userID)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, applicationsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	var req applicantRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.applications.UpdateApplicant(r.Context(), id, application.ApplicantUpdate{
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, applicationsPrefix)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	result, err := h.applications.Delete(r.Context(), id)
	if err != nil {
		response.Error(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, result)
}
