package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/storefront/internal/models"
)

func (r *GormRepo) GetCart(ctx context.Context) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0)
	if err := r.DB.WithContext(ctx).
		Table("cart").
		Select("products.*, cart.quantity").
		Joins("JOIN products ON products.id = cart.product_id").
		Order("cart.id ASC").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetCartLine(ctx context.Context, productID uint) (*models.CartLine, error) {
	var line models.CartLine
	if err := r.DB.WithContext(ctx).Where("product_id = ?", productID).First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// AddToCart creates the line for productID with quantity 1 or bumps an
// existing one by 1 in a single INSERT ... ON CONFLICT statement. The unique
// index on cart.product_id keeps concurrent adds from producing two lines.
// gorm.ErrRecordNotFound is returned when the product does not exist.
func (r *GormRepo) AddToCart(ctx context.Context, productID uint) (*models.CartLine, error) {
	line := models.CartLine{ProductID: productID, Quantity: 1}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.Select("id").Where("id = ?", productID).First(&product).Error; err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"quantity": gorm.Expr("cart.quantity + 1"),
			}),
		}).Create(&line).Error; err != nil {
			return err
		}

		var saved models.CartLine
		if err := tx.Where("product_id = ?", productID).First(&saved).Error; err != nil {
			return err
		}
		line = saved
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// SetCartQuantity overwrites the quantity of an existing line. It never
// inserts; the returned bool reports whether a line was touched.
func (r *GormRepo) SetCartQuantity(ctx context.Context, productID uint, quantity int) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.CartLine{}).
		Where("product_id = ?", productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) RemoveFromCart(ctx context.Context, productID uint) (bool, error) {
	res := r.DB.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.CartLine{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
