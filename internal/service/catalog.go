package service

import (
	"context"
	"fmt"

	"github.com/Skotchmaster/storefront/internal/models"
)

type CatalogRepo interface {
	ListProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type CatalogService struct {
	Repo CatalogRepo
}

func (s *CatalogService) ListProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, f)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	if id == 0 || !storable(id) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	p, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("product %d", id))
	}
	return p, nil
}

// Categories lists the distinct catalog categories, led by the "All" sentinel.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return append([]string{models.AllCategories}, cats...), nil
}
