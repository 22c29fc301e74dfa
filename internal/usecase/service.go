package usecase

import (
	"rk-commerce/internal/data/repository"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
	Cart    CartService
	Order   OrderService
}

func NewService(repo *repository.Repository, tokens *token.Manager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		User:    NewUserService(repo.User, log),
		Product: NewProductService(repo.Product, config.Limits.CatalogList, log),
		Cart:    NewCartService(repo.Cart, repo.Product, log),
		Order:   NewOrderService(repo.Order, repo.Cart, config.Limits.OrderList, log),
	}
}
