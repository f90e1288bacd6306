package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// CORSConfig represents CORS configuration
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           int
}

// DefaultCORSConfig allows the methods and headers the v1 API uses. An empty
// origins list allows any origin.
func DefaultCORSConfig(origins ...string) CORSConfig {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return CORSConfig{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Accept", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader, "X-Total-Count", "Content-Disposition"},
		MaxAge:        3600,
	}
}

// CORS returns a CORS middleware with the given configuration. Preflight
// requests are answered with 204 and never reach the handlers.
func CORS(config CORSConfig) gin.HandlerFunc {
	anyOrigin := lo.Contains(config.AllowOrigins, "*")
	allowed := lo.SliceToMap(config.AllowOrigins, func(o string) (string, struct{}) {
		return strings.TrimSuffix(o, "/"), struct{}{}
	})

	static := map[string]string{}
	if len(config.AllowMethods) > 0 {
		static["Access-Control-Allow-Methods"] = strings.Join(config.AllowMethods, ", ")
	}
	if len(config.AllowHeaders) > 0 {
		static["Access-Control-Allow-Headers"] = strings.Join(config.AllowHeaders, ", ")
	}
	if len(config.ExposeHeaders) > 0 {
		static["Access-Control-Expose-Headers"] = strings.Join(config.ExposeHeaders, ", ")
	}
	if config.AllowCredentials {
		static["Access-Control-Allow-Credentials"] = "true"
	}
	if config.MaxAge > 0 {
		static["Access-Control-Max-Age"] = strconv.Itoa(config.MaxAge)
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		switch {
		case anyOrigin && !config.AllowCredentials:
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "":
			if _, ok := allowed[origin]; ok || anyOrigin {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		for k, v := range static {
			c.Header(k, v)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
