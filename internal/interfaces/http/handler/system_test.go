package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeHealthChecker struct {
	err error
}

func (f *fakeHealthChecker) Ping() error { return f.err }

func TestSystemHandler(t *testing.T) {
	t.Run("health always reports ok", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&fakeHealthChecker{err: errors.New("db down")}).RegisterRootRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("ready succeeds when database responds", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&fakeHealthChecker{}).RegisterRootRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ready fails when database is unreachable", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&fakeHealthChecker{err: errors.New("dial tcp: refused")}).RegisterRootRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_READY")
	})
}
