package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/service"
)

const msgProductNotFound = "Product not found"

type ProductHandler struct {
	Svc *service.CatalogService
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	filter := models.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	items, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		return failure(c, l, "get_products_error", err, msgProductNotFound)
	}

	l.Debug("get_products_success", "count", len(items), "category", filter.Category, "search", filter.Search)
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	// A non-numeric id can never match a product.
	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", http.StatusNotFound, "reason", "id is not an integer", "error", err)
		return errorResponse(c, http.StatusNotFound, msgProductNotFound)
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return failure(c, l, "get_product_failed", err, msgProductNotFound)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_categories")

	cats, err := h.Svc.Categories(ctx)
	if err != nil {
		return failure(c, l, "get_categories_error", err, msgProductNotFound)
	}
	return c.JSON(http.StatusOK, cats)
}
