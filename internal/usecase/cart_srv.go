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

type CartService interface {
	// AddItem merges into the user's existing row for the product, if any.
	AddItem(ctx context.Context, userID string, req *request.AddToCartRequest) (*response.CartItemResponse, error)
	ListCart(ctx context.Context, userID string) ([]response.CartEntryResponse, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	log         *zap.Logger
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, log *zap.Logger) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) AddItem(ctx context.Context, userID string, req *request.AddToCartRequest) (*response.CartItemResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to cart validation failed", zap.Any("errors", errs))
		return nil, invalid(errs)
	}
	quantity := req.QuantityOrDefault()

	product, err := s.productRepo.FindActiveByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}
	if product == nil {
		return nil, notFound("Product not found")
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	if existing != nil {
		updated, err := s.cartRepo.IncrementQuantity(ctx, existing.ID, quantity)
		if err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
		// The row can vanish between the read and the update (checkout or
		// delete from another request); fall through and create a new one.
		if updated != nil {
			metrics.RecordCartAdd(true)
			s.log.Info("Cart item quantity increased",
				zap.String("user_id", userID),
				zap.String("cart_item_id", updated.ID),
				zap.Int("quantity", updated.Quantity))

			resp := response.CartItemToResponse(updated)
			return &resp, nil
		}
	}

	item := &entity.CartItem{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}

	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}

	metrics.RecordCartAdd(false)
	s.log.Info("Cart item added",
		zap.String("user_id", userID),
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", quantity))

	resp := response.CartItemToResponse(item)
	return &resp, nil
}

// ListCart joins each row with the product as it is now. Rows whose product
// is gone or inactive are left out.
func (s *cartService) ListCart(ctx context.Context, userID string) ([]response.CartEntryResponse, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	entries := make([]response.CartEntryResponse, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.FindActiveByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("load cart product %s: %w", item.ProductID, err)
		}
		if product == nil {
			s.log.Debug("Skipping cart item with missing product",
				zap.String("cart_item_id", item.ID),
				zap.String("product_id", item.ProductID))
			continue
		}

		entries = append(entries, response.CartEntryResponse{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  response.ProductToResponse(product),
		})
	}

	return entries, nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	deleted, err := s.cartRepo.DeleteByIDAndUser(ctx, itemID, userID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	if !deleted {
		return notFound("Cart item not found")
	}

	s.log.Info("Cart item removed",
		zap.String("user_id", userID),
		zap.String("cart_item_id", itemID))
	return nil
}
