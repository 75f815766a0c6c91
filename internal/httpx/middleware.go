package httpx

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mardiana36/anemone-outlet-system/internal/auth"
	"github.com/mardiana36/anemone-outlet-system/internal/metrics"
)

const (
	identityKey = "identity"
	tokenKey    = "token"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// Authenticate resolves the bearer token and stores the identity in the
// context. Requests without a resolvable token are rejected before any
// handler logic runs.
func Authenticate(store auth.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		id, err := store.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		c.Set(identityKey, *id)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireRole gates a route on the authenticated role. Must run after
// Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthenticated"})
			return
		}
		if id.Role != role {
			msg := "Unauthorized. HO only."
			if role == auth.RoleOutlet {
				msg = "Unauthorized. Outlet only."
			}
			c.AbortWithStatusJSON(403, gin.H{"success": false, "message": msg})
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func TokenFrom(c *gin.Context) (string, bool) {
	v, ok := c.Get(tokenKey)
	if !ok {
		return "", false
	}
	t, ok := v.(string)
	return t, ok
}
