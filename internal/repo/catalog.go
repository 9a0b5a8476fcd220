package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/storefront/internal/models"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a search term into a LIKE pattern that matches the
// term literally anywhere in the value.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func (r *GormRepo) ListProducts(ctx context.Context, f models.ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if f.HasCategory() {
		q = q.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\'`, containsPattern(f.Search))
	}

	items := make([]models.Product, 0)
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) ListCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	if err := r.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
