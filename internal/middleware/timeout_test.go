package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mariyaselvam/service-booking-BE/internal/pkg"
)

func TestTimeout(t *testing.T) {
	tests := []struct {
		name         string
		d            time.Duration
		wantDeadline bool
	}{
		{"sets deadline", 50 * time.Millisecond, true},
		{"zero disables", 0, false},
		{"negative disables", -time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hasDeadline bool
			var remaining time.Duration
			r := gin.New()
			r.Use(Timeout(tt.d))
			r.GET("/test", func(c *gin.Context) {
				var dl time.Time
				dl, hasDeadline = c.Request.Context().Deadline()
				remaining = time.Until(dl)
				c.Status(http.StatusOK)
			})

			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			if hasDeadline != tt.wantDeadline {
				t.Fatalf("deadline set = %v; want %v", hasDeadline, tt.wantDeadline)
			}
			if hasDeadline && remaining > tt.d {
				t.Errorf("remaining = %v; want at most %v", remaining, tt.d)
			}
		})
	}
}

func TestTimeout_CancelsSlowHandler(t *testing.T) {
	r := gin.New()
	r.Use(Timeout(10 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		select {
		case <-c.Request.Context().Done():
		case <-time.After(time.Second):
			c.Status(http.StatusOK)
		}
	})
	r.GET("/unavailable", func(c *gin.Context) {
		<-c.Request.Context().Done()
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "request canceled"})
	})

	tests := []struct {
		path string
		want int
	}{
		{"/slow", http.StatusRequestTimeout},
		{"/unavailable", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.want {
				t.Errorf("status = %d; want %d", w.Code, tt.want)
			}
		})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != http.StatusRequestTimeout || resp.Message != "request timeout" || resp.Data != nil {
		t.Errorf("response = %+v", resp)
	}
}
