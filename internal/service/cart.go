package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/storefront/internal/models"
)

type CartRepo interface {
	GetCart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, productID uint) (*models.CartLine, error)
	SetCartQuantity(ctx context.Context, productID uint, quantity int) (bool, error)
	RemoveFromCart(ctx context.Context, productID uint) (bool, error)
}

type CartService struct {
	Repo   CartRepo
	Events EventPublisher
}

type CartSummary struct {
	Lines    int             `json:"lines"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (s *CartService) GetCart(ctx context.Context) ([]models.CartItem, error) {
	return s.Repo.GetCart(ctx)
}

// AddToCart adds one unit of productID, creating the line on first add.
func (s *CartService) AddToCart(ctx context.Context, productID uint) (*models.CartLine, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product id is required: %w", ErrValidation)
	}
	if !storable(productID) {
		return nil, fmt.Errorf("product %d: %w", productID, ErrNotFound)
	}

	line, err := s.Repo.AddToCart(ctx, productID)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("product %d", productID))
	}

	s.publish(ctx, EventCartItemAdded, productID, line.Quantity)
	return line, nil
}

// SetQuantity overwrites the quantity of an existing line; quantity <= 0
// removes it. A line that does not exist yet is left absent.
func (s *CartService) SetQuantity(ctx context.Context, productID uint, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}
	if !storable(productID) {
		return nil
	}

	updated, err := s.Repo.SetCartQuantity(ctx, productID, quantity)
	if err != nil {
		return err
	}
	if updated {
		s.publish(ctx, EventCartItemUpdated, productID, quantity)
	}
	return nil
}

// Remove deletes the line for productID; removing an absent line is a no-op.
func (s *CartService) Remove(ctx context.Context, productID uint) error {
	if !storable(productID) {
		return nil
	}
	removed, err := s.Repo.RemoveFromCart(ctx, productID)
	if err != nil {
		return err
	}
	if removed {
		s.publish(ctx, EventCartItemRemoved, productID, 0)
	}
	return nil
}

func (s *CartService) Summary(ctx context.Context) (*CartSummary, error) {
	items, err := s.Repo.GetCart(ctx)
	if err != nil {
		return nil, err
	}
	return Summarize(items), nil
}

func Summarize(items []models.CartItem) *CartSummary {
	sum := &CartSummary{Lines: len(items), Subtotal: decimal.Zero}
	for _, it := range items {
		sum.Count += it.Quantity
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		sum.Subtotal = sum.Subtotal.Add(line)
	}
	return sum
}
