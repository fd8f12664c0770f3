package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets the browser frontend call the API. Without an
// explicit origin every origin is allowed, as the original service did.
func CORSMiddleware(originURL string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
	}

	if originURL != "" {
		cfg.AllowOrigins = []string{originURL}
	} else {
		cfg.AllowAllOrigins = true
	}

	return cors.New(cfg)
}
