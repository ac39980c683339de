package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tuanvumaihuynh/catalog-service/internal/model"
	"github.com/tuanvumaihuynh/catalog-service/internal/service"
	"github.com/tuanvumaihuynh/catalog-service/pkg/validator"
	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

var errInvalidCategoryID = zerror.NewBadRequest("INVALID_CATEGORY_ID", "Invalid category_id")

type createProductRequest struct {
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	CategoryID  *uuid.UUID             `json:"category_id"`
	Status      *model.ProductStatus   `json:"status" validate:"omitempty,enum"`
	Variants    []createVariantRequest `json:"variants"`
}

type createVariantRequest struct {
	Sku            string  `json:"sku"`
	Name           *string `json:"name"`
	PriceCents     *int64  `json:"price_cents"`
	InventoryCount *int    `json:"inventory_count"`
}

type updateProductRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	CategoryID  *uuid.UUID           `json:"category_id"`
	Status      *model.ProductStatus `json:"status" validate:"omitempty,enum"`
}

type productHandler struct {
	productSvc service.ProductService
	validator  validator.Validator
	respond    responder
}

func newProductHandler(productSvc service.ProductService, v validator.Validator, respond responder) *productHandler {
	return &productHandler{
		productSvc: productSvc,
		validator:  v,
		respond:    respond,
	}
}

func (h *productHandler) list(w http.ResponseWriter, r *http.Request) {
	params := service.ListProductsParams{}

	if search := r.URL.Query().Get("search"); search != "" {
		params.Search = &search
	}
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			h.respond.Error(w, r, errInvalidCategoryID.WrapParent(err))
			return
		}
		params.CategoryID = &categoryID
	}

	summaries, err := h.productSvc.ListProducts(r.Context(), params)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, summaries)
}

func (h *productHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), id)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, product)
}

func (h *productHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	params := service.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	}
	for _, v := range req.Variants {
		params.Variants = append(params.Variants, service.CreateVariantParams{
			Sku:            v.Sku,
			Name:           v.Name,
			PriceCents:     v.PriceCents,
			InventoryCount: v.InventoryCount,
		})
	}

	product, err := h.productSvc.CreateProduct(r.Context(), params)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusCreated, product)
}

func (h *productHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if err := h.validator.Validate(req); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), id, service.UpdateProductParams{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Status:      req.Status,
	})
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, product)
}

func (h *productHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	if err := h.productSvc.SoftDeleteProduct(r.Context(), id); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, r, http.StatusOK, successResponse{Success: true})
}
