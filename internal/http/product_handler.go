package http

import (
	"net/http"
	"strconv"

	"github.com/fjod/storefront/internal/catalog"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalog catalog.Catalog
}

func NewProductHandler(c catalog.Catalog) *ProductHandler {
	return &ProductHandler{catalog: c}
}

// GET /api/products[?category=]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		respondJSON(w, http.StatusOK, h.catalog.FindByCategory(category))
		return
	}
	respondJSON(w, http.StatusOK, h.catalog.All())
}

// GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	p, ok := h.catalog.FindByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// GET /api/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}
