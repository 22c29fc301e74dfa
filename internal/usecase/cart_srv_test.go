package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rk-commerce/internal/data/repository/repotest"
	"rk-commerce/internal/dto/request"
	"rk-commerce/internal/usecase"
)

func TestAddItemMergesQuantities(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	products := seedCatalog(t, svc)
	user := registerUser(t, svc, "a@x.com")
	ctx := context.Background()

	first, err := svc.Cart.AddItem(ctx, user.ID, &request.AddToCartRequest{ProductID: products[0].ID, Quantity: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.Cart.AddItem(ctx, user.ID, &request.AddToCartRequest{ProductID: products[0].ID, Quantity: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	entries, err := svc.Cart.ListCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
	assert.Equal(t, products[0].ID, entries[0].Product.ID)
}

func TestAddItemDefaultsToOne(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	products := seedCatalog(t, svc)
	user := registerUser(t, svc, "a@x.com")

	item, err := svc.Cart.AddItem(context.Background(), user.ID, &request.AddToCartRequest{ProductID: products[1].ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, user.ID, item.UserID)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	products := seedCatalog(t, svc)
	user := registerUser(t, svc, "a@x.com")

	for _, qty := range []int{0, -2} {
		_, err := svc.Cart.AddItem(context.Background(), user.ID, &request.AddToCartRequest{ProductID: products[0].ID, Quantity: intPtr(qty)})
		assert.ErrorIs(t, err, usecase.ErrBadRequest, "quantity %d", qty)
	}
}

func TestAddItemRequiresActiveProduct(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	products := seedCatalog(t, svc)
	user := registerUser(t, svc, "a@x.com")
	ctx := context.Background()

	_, err := svc.Cart.AddItem(ctx, user.ID, &request.AddToCartRequest{ProductID: "missing"})
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	repo.Product.(*repotest.Products).Deactivate(products[0].ID)
	_, err = svc.Cart.AddItem(ctx, user.ID, &request.AddToCartRequest{ProductID: products[0].ID})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestListCartSkipsInactiveProducts(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	products := seedCatalog(t, svc)
	user := registerUser(t, svc, "a@x.com")
	ctx := context.Background()

	for _, p := range products[:2] {
		_, err := svc.Cart.AddItem(ctx, user.ID, &request.AddToCartRequest{ProductID: p.ID})
		require.NoError(t, err)
	}

	repo.Product.(*repotest.Products).Deactivate(products[0].ID)

	entries, err := svc.Cart.ListCart(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, products[1].ID, entries[0].Product.ID)
}

func TestListCartIsPerUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	products := seedCatalog(t, svc)
	alice := registerUser(t, svc, "a@x.com")
	bob := registerUser(t, svc, "b@x.com")
	ctx := context.Background()

	_, err := svc.Cart.AddItem(ctx, alice.ID, &request.AddToCartRequest{ProductID: products[0].ID})
	require.NoError(t, err)

	entries, err := svc.Cart.ListCart(ctx, bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestRemoveItemChecksOwnership(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	products := seedCatalog(t, svc)
	alice := registerUser(t, svc, "a@x.com")
	bob := registerUser(t, svc, "b@x.com")
	ctx := context.Background()

	item, err := svc.Cart.AddItem(ctx, alice.ID, &request.AddToCartRequest{ProductID: products[0].ID})
	require.NoError(t, err)

	err = svc.Cart.RemoveItem(ctx, bob.ID, item.ID)
	require.ErrorIs(t, err, usecase.ErrNotFound)

	entries, err := svc.Cart.ListCart(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, svc.Cart.RemoveItem(ctx, alice.ID, item.ID))

	err = svc.Cart.RemoveItem(ctx, alice.ID, item.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
