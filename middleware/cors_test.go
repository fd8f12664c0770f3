package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(router *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("any origin by default", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware(""))

		w := preflight(router, "http://localhost:8080")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("configured origin only", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware("https://desk.example.com"))

		w := preflight(router, "https://desk.example.com")
		assert.Equal(t, "https://desk.example.com", w.Header().Get("Access-Control-Allow-Origin"))

		w = preflight(router, "https://evil.example.com")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
