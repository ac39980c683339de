package http

import (
	"net/http"

	"github.com/tuanvumaihuynh/catalog-service/internal/service"
)

type updateVariantRequest struct {
	Name           *string `json:"name"`
	Sku            *string `json:"sku"`
	PriceCents     *int64  `json:"price_cents"`
	InventoryCount *int    `json:"inventory_count"`
}

type variantHandler struct {
	variantSvc service.VariantService
	respond    responder
}

func newVariantHandler(variantSvc service.VariantService, respond responder) *variantHandler {
	return &variantHandler{
		variantSvc: variantSvc,
		respond:    respond,
	}
}

func (h *variantHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	variant, err := h.variantSvc.GetVariant(r.Context(), id)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, variant)
}

func (h *variantHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	var req updateVariantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	variant, err := h.variantSvc.UpdateVariant(r.Context(), id, service.UpdateVariantParams{
		Name:           req.Name,
		Sku:            req.Sku,
		PriceCents:     req.PriceCents,
		InventoryCount: req.InventoryCount,
	})
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, variant)
}

func (h *variantHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	if err := h.variantSvc.DeleteVariant(r.Context(), id); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, successResponse{Success: true})
}
