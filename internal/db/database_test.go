package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
)

func TestIsPostgres(t *testing.T) {
	cases := []struct {
		dsn  string
		want bool
	}{
		{"postgres://u:p@localhost:5432/shop?sslmode=disable", true},
		{"postgresql://localhost/shop", true},
		{"host=localhost user=postgres dbname=shop", true},
		{"  POSTGRES://upper/case", true},
		{"file:storefront.db", false},
		{"file::memory:", false},
		{"storefront.db", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, IsPostgres(tc.dsn), tc.dsn)
	}
}

func TestOpenRejectsEmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	gdb, err := Open(ctx, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })
	require.NoError(t, Migrate(ctx, gdb))
	require.NoError(t, Ping(ctx, gdb))

	n, err := SeedCatalog(ctx, gdb)
	require.NoError(t, err)
	require.Equal(t, 8, n)

	n, err = SeedCatalog(ctx, gdb)
	require.NoError(t, err)
	require.Zero(t, n)

	var total int64
	require.NoError(t, gdb.Model(&models.Product{}).Count(&total).Error)
	require.EqualValues(t, 8, total)

	var first models.Product
	require.NoError(t, gdb.First(&first).Error)
	require.EqualValues(t, 1, first.ID)
	require.Equal(t, "Mobiles", first.Category)
}

func TestSeedProductsAreValid(t *testing.T) {
	for _, p := range SeedProducts() {
		require.NotEmpty(t, p.Title)
		require.GreaterOrEqual(t, p.Price, 0.0)
		require.GreaterOrEqual(t, p.Rating, 0.0)
		require.LessOrEqual(t, p.Rating, 5.0)
		require.NotEmpty(t, p.Category)
	}
}
