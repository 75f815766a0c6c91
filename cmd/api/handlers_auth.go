package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	"github.com/mardiana36/anemone-outlet-system/internal/httpx"
	"github.com/mardiana36/anemone-outlet-system/internal/user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginHandler exchanges email+password for a bearer token.
//
// @Summary  Log in
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body loginRequest true "credentials"
// @Success  200 {object} map[string]any
// @Failure  401 {object} map[string]any
// @Failure  422 {object} map[string]any
// @Router   /login [post]
func loginHandler(users user.Repository, store auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "invalid json"})
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "message": "email and password are required"})
			return
		}

		u, err := users.GetByEmail(c.Request.Context(), req.Email)
		if err != nil || !user.CheckPassword(u.PasswordHash, req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}

		token, err := store.Issue(c.Request.Context(), auth.Identity{
			UserID: u.ID, Name: u.Name, Role: u.Role,
		})
		if err != nil {
			log.Printf("[auth] token issue failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to log in"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"token": token, "user": u}})
	}
}

// @Summary  Log out
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Router   /logout [post]
func logoutHandler(store auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := httpx.TokenFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		if err := store.Revoke(c.Request.Context(), token); err != nil {
			log.Printf("[auth] token revoke failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to log out"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
	}
}

// @Summary  Current user
// @Tags     auth
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} map[string]any
// @Router   /me [get]
func meHandler(users user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.IdentityFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		u, err := users.GetByID(c.Request.Context(), id.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": u})
	}
}
