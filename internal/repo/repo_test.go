package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	ctx := context.Background()

	gdb, err := db.Open(ctx, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, db.Migrate(ctx, gdb))
	_, err = db.SeedCatalog(ctx, gdb)
	require.NoError(t, err)

	return New(gdb)
}

func titles(items []models.Product) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Title)
	}
	return out
}

func TestListProductsFilters(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter models.ProductFilter
		want   int
		check  func(t *testing.T, p models.Product)
	}{
		{name: "no filter", filter: models.ProductFilter{}, want: 8},
		{name: "all sentinel", filter: models.ProductFilter{Category: "All"}, want: 8},
		{
			name:   "category",
			filter: models.ProductFilter{Category: "Electronics"},
			want:   3,
			check:  func(t *testing.T, p models.Product) { require.Equal(t, "Electronics", p.Category) },
		},
		{
			name:   "search is case insensitive",
			filter: models.ProductFilter{Search: "GALAXY"},
			want:   1,
			check:  func(t *testing.T, p models.Product) { require.Contains(t, p.Title, "Galaxy") },
		},
		{
			name:   "category and search",
			filter: models.ProductFilter{Category: "Fashion", Search: "men"},
			want:   2,
			check:  func(t *testing.T, p models.Product) { require.Equal(t, "Fashion", p.Category) },
		},
		{name: "conjunction excludes", filter: models.ProductFilter{Category: "Laptops", Search: "iPhone"}, want: 0},
		{name: "unknown category", filter: models.ProductFilter{Category: "Books"}, want: 0},
		{name: "wildcards are literal", filter: models.ProductFilter{Search: "%"}, want: 0},
		{name: "injection is data", filter: models.ProductFilter{Category: "x' OR '1'='1"}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := r.ListProducts(ctx, tc.filter)
			require.NoError(t, err)
			require.Len(t, items, tc.want, titles(items))
			for _, p := range items {
				if tc.check != nil {
					tc.check(t, p)
				}
			}
		})
	}
}

func TestListProductsOrderedByID(t *testing.T) {
	r := newTestRepo(t)

	items, err := r.ListProducts(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	for i := 1; i < len(items); i++ {
		require.Less(t, items[i-1].ID, items[i].ID)
	}
}

func TestGetProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	p, err := r.GetProduct(ctx, 3)
	require.NoError(t, err)
	require.EqualValues(t, 3, p.ID)
	require.Equal(t, "Sony WH-1000XM5 Wireless Noise Cancelling Headphones", p.Title)

	_, err = r.GetProduct(ctx, 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListCategories(t *testing.T) {
	r := newTestRepo(t)

	cats, err := r.ListCategories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Electronics", "Fashion", "Laptops", "Mobiles"}, cats)
}

func TestAddToCartIncrements(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	line, err := r.AddToCart(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 1, line.Quantity)

	line, err = r.AddToCart(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 2, line.Quantity)

	var count int64
	require.NoError(t, r.DB.Model(&models.CartLine{}).Where("product_id = ?", 2).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.AddToCart(context.Background(), 404)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	items, err := r.GetCart(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestAddToCartConcurrent(t *testing.T) {
	r := newTestRepo(t)

	const n = 25
	g, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < n; i++ {
		g.Go(func() error {
			_, err := r.AddToCart(ctx, 5)
			return err
		})
	}
	require.NoError(t, g.Wait())

	items, err := r.GetCart(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.EqualValues(t, 5, items[0].ID)
	require.Equal(t, n, items[0].Quantity)
}

func TestSetCartQuantity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	touched, err := r.SetCartQuantity(ctx, 1, 4)
	require.NoError(t, err)
	require.False(t, touched, "set must not create a line")

	_, err = r.AddToCart(ctx, 1)
	require.NoError(t, err)

	touched, err = r.SetCartQuantity(ctx, 1, 4)
	require.NoError(t, err)
	require.True(t, touched)

	line, err := r.GetCartLine(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 4, line.Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	removed, err := r.RemoveFromCart(ctx, 7)
	require.NoError(t, err)
	require.False(t, removed)

	_, err = r.AddToCart(ctx, 7)
	require.NoError(t, err)

	removed, err = r.RemoveFromCart(ctx, 7)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = r.GetCartLine(ctx, 7)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetCartJoinsProducts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.AddToCart(ctx, 4)
	require.NoError(t, err)
	_, err = r.AddToCart(ctx, 1)
	require.NoError(t, err)
	_, err = r.AddToCart(ctx, 4)
	require.NoError(t, err)

	items, err := r.GetCart(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.EqualValues(t, 4, items[0].ID)
	require.Equal(t, "Nike Men's Air Max SC Sneaker", items[0].Title)
	require.Equal(t, 4599.0, items[0].Price)
	require.Equal(t, 2, items[0].Quantity)

	require.EqualValues(t, 1, items[1].ID)
	require.Equal(t, 1, items[1].Quantity)
}

func TestContainsPattern(t *testing.T) {
	require.Equal(t, "%tee%", containsPattern("Tee"))
	require.Equal(t, `%50\%\_off\\%`, containsPattern(`50%_off\`))
}
