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

type OrderService interface {
	// PlaceOrder stores the order exactly as submitted and then empties the
	// user's whole cart.
	PlaceOrder(ctx context.Context, userID string, req *request.PlaceOrderRequest) (*response.OrderResponse, error)
	ListOrders(ctx context.Context, userID string) ([]response.OrderResponse, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	listLimit int
	log       *zap.Logger
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, listLimit int, log *zap.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		listLimit: listLimit,
		log:       log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID string, req *request.PlaceOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Place order validation failed", zap.Any("errors", errs))
		return nil, invalid(errs)
	}

	items := make([]entity.OrderItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       *it.Price,
		}
	}

	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:          userID,
		Items:           items,
		TotalAmount:     *req.TotalAmount,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// Not atomic with the insert above: if this fails the order stands and
	// the cart keeps its rows.
	cleared, err := s.cartRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("clear cart after order %s: %w", order.ID, err)
	}

	metrics.OrdersPlaced.Inc()
	s.log.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Int("item_count", len(items)),
		zap.Float64("total_amount", order.TotalAmount),
		zap.Int64("cart_items_cleared", cleared))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]response.OrderResponse, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return response.OrdersToResponse(orders), nil
}
