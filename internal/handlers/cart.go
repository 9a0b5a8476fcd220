package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/service"
	"github.com/Skotchmaster/storefront/internal/transport"
)

type CartHandler struct {
	Svc *service.CartService
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.GetCart(ctx)
	if err != nil {
		return failure(c, l, "get_cart_error", err, msgProductNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_summary")

	sum, err := h.Svc.Summary(ctx)
	if err != nil {
		return failure(c, l, "get_cart_summary_error", err, msgProductNotFound)
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}

	line, err := h.Svc.AddToCart(ctx, req.ProductID)
	if err != nil {
		return failure(c, l, "add_to_cart_error", err, msgProductNotFound)
	}

	l.Info("add_to_cart_success", "product_id", line.ProductID, "quantity", line.Quantity)
	return c.JSON(http.StatusOK, transport.OK)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update")

	var req transport.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_cart_error", "status", http.StatusBadRequest, "reason", "invalid body", "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid body")
	}
	if req.ID == nil || req.Quantity == nil {
		l.Warn("update_cart_error", "status", http.StatusBadRequest, "reason", "id and quantity required")
		return errorResponse(c, http.StatusBadRequest, "id and quantity required")
	}

	if err := h.Svc.SetQuantity(ctx, *req.ID, *req.Quantity); err != nil {
		return failure(c, l, "update_cart_error", err, msgProductNotFound)
	}

	l.Info("update_cart_success", "product_id", *req.ID, "quantity", *req.Quantity)
	return c.JSON(http.StatusOK, transport.OK)
}

func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove")

	id, err := parseID(c.Param("id"))
	if err != nil {
		l.Warn("remove_from_cart_error", "status", http.StatusBadRequest, "reason", "id is not an integer", "error", err)
		return errorResponse(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.Svc.Remove(ctx, id); err != nil {
		return failure(c, l, "remove_from_cart_error", err, msgProductNotFound)
	}

	l.Info("remove_from_cart_success", "product_id", id)
	return c.JSON(http.StatusOK, transport.OK)
}
