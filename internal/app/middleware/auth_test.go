package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/testutil"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(am *AuthMiddleware, users *testutil.Users) *gin.Engine {
	r := gin.New()
	api := r.Group("/api", am.WithAuthCheck(), CurrentTechnician(users))
	api.GET("/whoami", func(c *gin.Context) {
		name := ""
		if tech := GetTechnician(c); tech != nil {
			name = tech.Name
		}
		c.JSON(http.StatusOK, gin.H{"user": GetUserID(c), "technician": name})
	})
	r.GET("/app", am.WithPageAuth(), func(c *gin.Context) { c.String(http.StatusOK, "app") })
	return r
}

func TestWithAuthCheck(t *testing.T) {
	blacklist := testutil.NewBlacklist()
	am := NewAuthMiddleware(blacklist, testutil.Config())
	users := &testutil.Users{Technicians: []ds.Technician{*testutil.Technician()}}
	r := newRouter(am, users)

	valid := testutil.Token(t, testutil.UserID, time.Hour)
	revoked := testutil.Token(t, "someone-else", 2*time.Hour)
	blacklist.WriteJWTToBlacklist(context.Background(), revoked, time.Hour)

	tests := []struct {
		name   string
		header string
		cookie string
		want   int
	}{
		{"header", "Bearer " + valid, "", http.StatusOK},
		{"header without prefix", valid, "", http.StatusOK},
		{"cookie", "", valid, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"expired", "Bearer " + testutil.Token(t, testutil.UserID, -time.Minute), "", http.StatusUnauthorized},
		{"garbage", "Bearer abc.def.ghi", "", http.StatusUnauthorized},
		{"revoked", "Bearer " + revoked, "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AuthCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestCurrentTechnician(t *testing.T) {
	am := NewAuthMiddleware(testutil.NewBlacklist(), testutil.Config())
	users := &testutil.Users{Technicians: []ds.Technician{*testutil.Technician()}}
	r := newRouter(am, users)

	req := httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, testutil.UserID, time.Hour))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Jan de Vries") {
		t.Errorf("technician not resolved: %d %s", w.Code, w.Body.String())
	}

	// users without a technician may still pass
	req = httptest.NewRequest(http.MethodGet, "/api/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+testutil.Token(t, "no-technician", time.Hour))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"technician":""`) {
		t.Errorf("unexpected response: %d %s", w.Code, w.Body.String())
	}

	users.Err = errors.New("db down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestWithPageAuthRedirects(t *testing.T) {
	am := NewAuthMiddleware(testutil.NewBlacklist(), testutil.Config())
	r := newRouter(am, &testutil.Users{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
		t.Errorf("got %d to %q", w.Code, w.Header().Get("Location"))
	}
}
