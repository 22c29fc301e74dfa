// Package repotest provides in-memory repositories for service and router tests.
package repotest

import (
	"context"
	"sort"
	"sync"

	"rk-commerce/internal/data/entity"
	"rk-commerce/internal/data/repository"
)

// New returns a Repository whose four stores share nothing but live in memory.
func New() *repository.Repository {
	return &repository.Repository{
		User:    &Users{},
		Product: &Products{},
		Cart:    &Cart{},
		Order:   &Orders{},
	}
}

type Users struct {
	mu    sync.Mutex
	users []entity.User
}

func (u *Users) Create(_ context.Context, user *entity.User) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.users = append(u.users, *user)
	return nil
}

func (u *Users) FindByID(_ context.Context, id string) (*entity.User, error) {
	return u.find(func(user entity.User) bool { return user.ID == id }), nil
}

func (u *Users) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return u.find(func(user entity.User) bool { return user.Email == email }), nil
}

// Delete removes a user; used to check that tokens of deleted users stop working.
func (u *Users) Delete(id string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for i, user := range u.users {
		if user.ID == id {
			u.users = append(u.users[:i], u.users[i+1:]...)
			return
		}
	}
}

func (u *Users) find(match func(entity.User) bool) *entity.User {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if match(user) {
			found := user
			return &found
		}
	}
	return nil
}

type Products struct {
	mu       sync.Mutex
	products []entity.Product
}

func (p *Products) Create(_ context.Context, product *entity.Product) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.products = append(p.products, *product)
	return nil
}

func (p *Products) CreateMany(ctx context.Context, products []*entity.Product) error {
	for _, product := range products {
		if err := p.Create(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

func (p *Products) FindActiveByID(_ context.Context, id string) (*entity.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, product := range p.products {
		if product.ID == id && product.IsActive {
			found := product
			return &found, nil
		}
	}
	return nil, nil
}

func (p *Products) FindActive(_ context.Context, category *string, limit int) ([]*entity.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	result := make([]*entity.Product, 0)
	for _, product := range p.products {
		if len(result) >= limit {
			break
		}
		if !product.IsActive || (category != nil && product.Category != *category) {
			continue
		}
		found := product
		result = append(result, &found)
	}
	return result, nil
}

func (p *Products) Count(_ context.Context) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return int64(len(p.products)), nil
}

// Deactivate clears the active flag, as a soft delete would.
func (p *Products) Deactivate(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.products {
		if p.products[i].ID == id {
			p.products[i].IsActive = false
		}
	}
}

type Cart struct {
	mu    sync.Mutex
	items []entity.CartItem
}

func (c *Cart) Create(_ context.Context, item *entity.CartItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, *item)
	return nil
}

func (c *Cart) FindByUserAndProduct(_ context.Context, userID, productID string) (*entity.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.UserID == userID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (c *Cart) IncrementQuantity(_ context.Context, id string, delta int) (*entity.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity += delta
			found := c.items[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (c *Cart) FindByUserID(_ context.Context, userID string) ([]*entity.CartItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]*entity.CartItem, 0)
	for _, item := range c.items {
		if item.UserID == userID {
			found := item
			result = append(result, &found)
		}
	}
	return result, nil
}

func (c *Cart) DeleteByIDAndUser(_ context.Context, id, userID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID == id && item.UserID == userID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (c *Cart) DeleteByUserID(_ context.Context, userID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	var deleted int64
	for _, item := range c.items {
		if item.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	return deleted, nil
}

type Orders struct {
	mu     sync.Mutex
	orders []entity.Order
}

func (o *Orders) Create(_ context.Context, order *entity.Order) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	stored := *order
	stored.Items = append([]entity.OrderItem(nil), order.Items...)
	o.orders = append(o.orders, stored)
	return nil
}

func (o *Orders) FindByUserID(_ context.Context, userID string, limit int) ([]*entity.Order, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	result := make([]*entity.Order, 0)
	for _, order := range o.orders {
		if order.UserID == userID {
			found := order
			result = append(result, &found)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
