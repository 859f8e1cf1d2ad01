package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Aashutosh2004011/TaskManagement-Backend/config"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)

	mw := New(nopLogger{}, &config.Config{RateLimit: cfg})
	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestRateLimit(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		r := newTestRouter(config.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             3,
		})

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
			}
		}
	})

	t.Run("Rejects Over Burst", func(t *testing.T) {
		r := newTestRouter(config.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 1,
			Burst:             2,
		})

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}
		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Fatalf("first two codes = %v, want 200", codes[:2])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third code = %d, want 429", codes[2])
		}
	})

	t.Run("Fractional Rate Still Admits Requests", func(t *testing.T) {
		// burst unset: int(0.5) would truncate to 0 and reject everything.
		r := newTestRouter(config.RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 0.5,
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("Disabled Passes Everything", func(t *testing.T) {
		r := newTestRouter(config.RateLimitConfig{Enabled: false})

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: status = %d, want 200", i+1, w.Code)
			}
		}
	})
}
