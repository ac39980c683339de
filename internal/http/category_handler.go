package http

import (
	"net/http"

	"github.com/tuanvumaihuynh/catalog-service/internal/service"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

type categoryHandler struct {
	categorySvc service.CategoryService
	respond     responder
}

func newCategoryHandler(categorySvc service.CategoryService, respond responder) *categoryHandler {
	return &categoryHandler{
		categorySvc: categorySvc,
		respond:     respond,
	}
}

func (h *categoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListCategories(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, categories)
}

func (h *categoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	category, err := h.categorySvc.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusCreated, category)
}
