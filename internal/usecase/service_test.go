package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"rk-commerce/internal/data/repository"
	"rk-commerce/internal/data/repository/repotest"
	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/dto/response"
	"rk-commerce/internal/usecase"
	"rk-commerce/pkg/token"
	"rk-commerce/pkg/utils"
)

const testSecret = "test-secret"

func testConfig() *utils.Config {
	return &utils.Config{
		JWT:    utils.JWTConfig{Secret: testSecret, Expiry: 30 * time.Minute},
		Limits: utils.LimitsConfig{CatalogList: 1000, OrderList: 1000},
	}
}

func newTestService(t *testing.T) (*usecase.Service, *repository.Repository, *token.Manager) {
	t.Helper()

	repo := repotest.New()
	tokens, err := token.NewManager(testSecret, 30*time.Minute)
	require.NoError(t, err)

	return usecase.NewService(repo, tokens, testConfig(), zap.NewNop()), repo, tokens
}

func registerUser(t *testing.T, svc *usecase.Service, email string) *response.UserResponse {
	t.Helper()

	user, err := svc.Auth.Register(context.Background(), &request.RegisterRequest{
		Email:    email,
		Password: "pw",
		FullName: "Test User",
	})
	require.NoError(t, err)
	return user
}

func seedCatalog(t *testing.T, svc *usecase.Service) []response.ProductResponse {
	t.Helper()

	_, err := svc.Product.SeedSampleCatalog(context.Background())
	require.NoError(t, err)

	products, err := svc.Product.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.NotEmpty(t, products)
	return products
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
