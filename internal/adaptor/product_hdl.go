package adaptor

import (
	"net/http"

	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// ListProducts handles GET /api/products?category=...
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	// An empty category param means no filter.
	var category *string
	if c := r.URL.Query().Get("category"); c != "" {
		category = &c
	}

	products, err := h.service.ListProducts(r.Context(), category)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, products)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseSuccess(w, product)
}

// InitProducts handles POST /api/init-products
func (h *ProductHandler) InitProducts(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.service.SeedSampleCatalog(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "seed products")
		return
	}

	if !seeded {
		utils.ResponseMessage(w, "Products already initialized")
		return
	}
	utils.ResponseMessage(w, "Sample products initialized")
}
