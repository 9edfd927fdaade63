package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(limiter *LoginLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func TestLoginLimiterAllowsUpToLimit(t *testing.T) {
	router := limitedRouter(NewLoginLimiter(3, time.Minute, nil))

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code, "over the limit is a redirect, not an error body")
	assert.Equal(t, TooFastPath, w.Header().Get("Location"))
}

func TestLoginLimiterIsolatesClients(t *testing.T) {
	router := limitedRouter(NewLoginLimiter(1, time.Minute, nil))

	first := httptest.NewRecorder()
	reqA := httptest.NewRequest("POST", "/login", nil)
	reqA.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(first, reqA)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	reqB := httptest.NewRequest("POST", "/login", nil)
	reqB.RemoteAddr = "10.0.0.2:1234"
	router.ServeHTTP(second, reqB)
	assert.Equal(t, http.StatusOK, second.Code, "a different IP has its own window")
}

func TestLoginLimiterWindowReset(t *testing.T) {
	limiter := NewLoginLimiter(1, 10*time.Millisecond, nil)
	router := limitedRouter(limiter)

	send := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusSeeOther, send())

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, http.StatusOK, send(), "a fresh window admits the client again")
}
