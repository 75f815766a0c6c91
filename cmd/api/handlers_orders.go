package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mardiana36/anemone-outlet-system/internal/httpx"
	ord "github.com/mardiana36/anemone-outlet-system/internal/order"
)

// createOrderHandler places an order for the authenticated outlet. The whole
// placement is one transaction: stock validation, decrement and the order
// write either all happen or none do.
//
// @Summary  Place an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body ord.CreateOrderRequest true "requested lines"
// @Success  201 {object} map[string]any
// @Failure  403 {object} map[string]any
// @Failure  422 {object} map[string]any
// @Failure  500 {object} map[string]any
// @Router   /orders [post]
func createOrderHandler(engine *ord.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}

		var req ord.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "invalid json"})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "items are required"})
			return
		}
		lines := make([]ord.Line, 0, len(req.Items))
		for _, it := range req.Items {
			if it.ProductID == "" || it.Quantity < 1 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "each item needs a product_id and a quantity of at least 1"})
				return
			}
			lines = append(lines, ord.Line{ProductID: it.ProductID, Quantity: it.Quantity})
		}

		o, err := engine.Place(c.Request.Context(), id.UserID, lines)
		if err != nil {
			if errors.Is(err, ord.ErrInvalidRequest) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": err.Error()})
				return
			}
			// business-rule failures (stock, unknown product) surface with
			// their reason; anything else is logged as a system failure
			var ise *ord.InsufficientStockError
			var pnf *ord.ProductNotFoundError
			if !errors.As(err, &ise) && !errors.As(err, &pnf) {
				log.Printf("[orders] placement failed: %v", err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create order: " + err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order created successfully", "data": o})
	}
}

// listOrdersHandler returns every order for HO and only the caller's own for
// an outlet, newest first in both cases.
//
// @Summary  List orders
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Router   /orders [get]
func listOrdersHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}

		var (
			orders []ord.Order
			err    error
		)
		if id.IsHO() {
			orders, err = repo.ListAll(c.Request.Context())
		} else {
			orders, err = repo.ListByOutlet(c.Request.Context(), id.UserID)
		}
		if err != nil {
			log.Printf("[orders] list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list orders"})
			return
		}
		if orders == nil {
			orders = []ord.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

// updateOrderStatusHandler sets an order's status (HO only). Any known status
// may be set regardless of the current one.
//
// @Summary  Update order status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string                  true "order id"
// @Param    body body ord.UpdateStatusRequest true "new status"
// @Success  200 {object} map[string]any
// @Failure  403 {object} map[string]any
// @Failure  404 {object} map[string]any
// @Failure  422 {object} map[string]any
// @Router   /orders/{id}/status [put]
func updateOrderStatusHandler(repo ord.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ord.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "invalid json"})
			return
		}
		if !ord.ValidStatus(req.Status) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "status must be one of pending, paid, shipped"})
			return
		}

		o, err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, ord.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
				return
			}
			log.Printf("[orders] status update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Status updated successfully", "data": o})
	}
}
