package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/models"
)

// SeedProducts is the catalog inserted into an empty products table.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Title:       "Apple iPhone 15 (128 GB) - Black",
			Description: "DYNAMIC ISLAND COMES TO IPHONE 15 — Dynamic Island bubbles up alerts and Live Activities — so you don’t miss them while you’re doing something else. You can see who’s calling, check your flight status, and so much more.",
			Price:       79900,
			Category:    "Mobiles",
			Image:       "https://m.media-amazon.com/images/I/71657TiFeHL._SX679_.jpg",
			Rating:      4.6,
			Reviews:     1245,
		},
		{
			Title:       "Samsung Galaxy S24 Ultra 5G AI Smartphone",
			Description: "Meet Galaxy S24 Ultra, the ultimate form of Galaxy Ultra with a new titanium exterior and a 17.25cm (6.8\") flat display. It's an absolute marvel of design.",
			Price:       129999,
			Category:    "Mobiles",
			Image:       "https://m.media-amazon.com/images/I/71CXhVhpM0L._SX679_.jpg",
			Rating:      4.5,
			Reviews:     890,
		},
		{
			Title:       "Sony WH-1000XM5 Wireless Noise Cancelling Headphones",
			Description: "Industry Leading noise cancellation-two processors control 8 microphones for unprecedented noise cancellation. With Auto NC Optimizer, noise canceling is automatically optimized based on your wearing conditions and environment.",
			Price:       26990,
			Category:    "Electronics",
			Image:       "https://m.media-amazon.com/images/I/51SKmu2G9FL._SX679_.jpg",
			Rating:      4.4,
			Reviews:     3400,
		},
		{
			Title:       "Nike Men's Air Max SC Sneaker",
			Description: "With its easygoing lines, heritage track look and of course, visible Air cushioning, the Nike Air Max SC is the perfect finish to any outfit.",
			Price:       4599,
			Category:    "Fashion",
			Image:       "https://m.media-amazon.com/images/I/61-r9zJ4ZpL._SY695_.jpg",
			Rating:      4.1,
			Reviews:     560,
		},
		{
			Title:       "Puma Men's T-Shirt",
			Description: "Style Name:-T-Shirt; Model Name:-Ess Small Logo Tee; Brand Color:-Puma Black; Activity Group:-Basics; Collection:-Essentials",
			Price:       899,
			Category:    "Fashion",
			Image:       "https://m.media-amazon.com/images/I/51uGECDrBQL._SX679_.jpg",
			Rating:      4.0,
			Reviews:     210,
		},
		{
			Title:       "Dell G15 5530 Gaming Laptop",
			Description: "Processor: Intel Core i5-13450HX 13th Gen | RAM: 16GB DDR5 | Storage: 512GB SSD | Graphics: NVIDIA GeForce RTX 3050 6GB GDDR6",
			Price:       76990,
			Category:    "Laptops",
			Image:       "https://m.media-amazon.com/images/I/51j9L5aKk+L._SX679_.jpg",
			Rating:      4.2,
			Reviews:     150,
		},
		{
			Title:       "Logitech MX Master 3S Wireless Mouse",
			Description: "Any-surface tracking - now 8K DPI: Use MX Master 3S cordless computer mouse to work on any surface - even glass - with the upgraded 8000 DPI sensor with customizable sensitivity.",
			Price:       9495,
			Category:    "Electronics",
			Image:       "https://m.media-amazon.com/images/I/61ni3t1ryQL._SX679_.jpg",
			Rating:      4.7,
			Reviews:     5600,
		},
		{
			Title:       "Kindle Paperwhite (16 GB)",
			Description: "Now with a 6.8” display and thinner borders, adjustable warm light, up to 10 weeks of battery life, and 20% faster page turns.",
			Price:       14999,
			Category:    "Electronics",
			Image:       "https://m.media-amazon.com/images/I/51p4-eX4g3L._SX679_.jpg",
			Rating:      4.5,
			Reviews:     9000,
		},
	}
}

// SeedCatalog fills the products table when it is empty and reports how many
// rows were inserted.
func SeedCatalog(ctx context.Context, db *gorm.DB) (int, error) {
	var seeded int
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Product{}).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 {
			return nil
		}

		products := SeedProducts()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		seeded = len(products)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return seeded, nil
}
