package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func authRouter(apiKeys []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(apiKeys))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, OwnerIDFromContext(c))
	})
	router.OPTIONS("/ping", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	router := authRouter(nil)

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthGuestHeader(t *testing.T) {
	router := authRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Guest-Id", "g1")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "guest:g1" {
		t.Errorf("owner = %q, want guest:g1", resp.Body.String())
	}
}

func TestAuthAPIKey(t *testing.T) {
	router := authRouter([]string{"secret-key"})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer secret-key")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	owner := resp.Body.String()
	if len(owner) != len("firm:")+16 || owner[:5] != "firm:" {
		t.Errorf("owner = %q, want firm:<16 hex chars>", owner)
	}
}

func TestAuthRejections(t *testing.T) {
	tests := []struct {
		name    string
		apiKeys []string
		setup   func(*http.Request)
	}{
		{"no identity", nil, func(*http.Request) {}},
		{"wrong key", []string{"secret-key"}, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer wrong")
		}},
		{"malformed header", []string{"secret-key"}, func(r *http.Request) {
			r.Header.Set("Authorization", "Token secret-key")
		}},
		{"empty bearer", []string{"secret-key"}, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer ")
		}},
		{"key configured but guest missing", []string{"secret-key"}, func(r *http.Request) {
			r.Header.Set("X-Guest-Id", "   ")
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := authRouter(tc.apiKeys)
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			tc.setup(req)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
		})
	}
}
