package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mardiana36/anemone-outlet-system/internal/product"
)

// @Summary  List the catalog
// @Tags     products
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Router   /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			log.Printf("[products] list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list products"})
			return
		}
		if items == nil {
			items = []product.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
	}
}

// createProductHandler adds a product to the catalog (HO only).
//
// @Summary  Create a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body product.CreateProductRequest true "product"
// @Success  201 {object} map[string]any
// @Failure  403 {object} map[string]any
// @Failure  422 {object} map[string]any
// @Router   /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "invalid json"})
			return
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "name is required"})
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "price must be a non-negative number"})
			return
		}
		if req.Stock < 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "stock must be non-negative"})
			return
		}

		p := &product.Product{
			ID:    uuid.NewString(),
			Name:  req.Name,
			Price: price.StringFixed(2),
			Stock: req.Stock,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			log.Printf("[products] create failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully", "data": p})
	}
}
