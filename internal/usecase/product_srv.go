package usecase

import (
	"context"
	"fmt"
	"time"

	"rk-commerce/internal/data/entity"
	"rk-commerce/internal/data/repository"
	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/dto/response"
	"rk-commerce/pkg/metrics"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context, category *string) ([]response.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*response.ProductResponse, error)
	// CreateProduct is reachable without authentication; see DESIGN.md.
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error)
	// SeedSampleCatalog inserts the sample catalog unless any product exists.
	// It reports whether it inserted anything.
	SeedSampleCatalog(ctx context.Context) (bool, error)
}

type productService struct {
	productRepo repository.ProductRepository
	listLimit   int
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, listLimit int, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		listLimit:   listLimit,
		log:         log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListProducts(ctx context.Context, category *string) ([]response.ProductResponse, error) {
	products, err := s.productRepo.FindActive(ctx, category, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return response.ProductsToResponse(products), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*response.ProductResponse, error) {
	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, notFound("Product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, invalid(errs)
	}

	product := &entity.Product{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: time.Now().UTC(),
		},
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsActive:    true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	metrics.ProductsCreated.Inc()
	s.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("category", product.Category))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) SeedSampleCatalog(ctx context.Context) (bool, error) {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		s.log.Info("Catalog already populated, skipping seed", zap.Int64("products", count))
		return false, nil
	}

	products := sampleCatalog(time.Now().UTC())
	if err := s.productRepo.CreateMany(ctx, products); err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}

	metrics.ProductsCreated.Add(float64(len(products)))
	s.log.Info("Sample catalog seeded", zap.Int("products", len(products)))
	return true, nil
}
