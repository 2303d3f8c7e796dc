package handler

import (
	"errors"
	"net/http"
	"testing"

	"werkbon/internal/app/dto"
	"werkbon/internal/app/middleware"
	"werkbon/internal/app/testutil"
)

var errInjected = errors.New("connection reset by peer")

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	w := s.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "jan@example.com", Password: "geheim123"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp dto.LoginResponse
	decode(t, w, &resp)
	if resp.Token == "" || resp.User.TechnicianID != testutil.TechnicianID {
		t.Errorf("login = %+v", resp)
	}

	var cookieSet bool
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AuthCookie && c.Value == resp.Token {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Errorf("auth cookie not set")
	}

	s.token = resp.Token
	var me dto.UserResponse
	decode(t, s.do(t, http.MethodGet, "/api/auth/me", nil), &me)
	if me.Email != "jan@example.com" || me.TechnicianName != "Jan de Vries" {
		t.Errorf("me = %+v", me)
	}
}

func TestLoginRejected(t *testing.T) {
	s := newTestServer(t)
	s.token = ""

	expectError(t, s.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "jan@example.com", Password: "fout"}), http.StatusUnauthorized, msgBadCredentials)
	expectError(t, s.do(t, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: "piet@example.com", Password: "geheim123"}), http.StatusUnauthorized, msgBadCredentials)
	expectError(t, s.do(t, http.MethodPost, "/api/auth/login", map[string]string{"email": "geen-email"}), http.StatusBadRequest, msgBadRequest)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)

	if w := s.do(t, http.MethodPost, "/api/auth/logout", nil); w.Code != http.StatusOK {
		t.Fatalf("logout = %d: %s", w.Code, w.Body.String())
	}
	if ttl, ok := s.blacklist.TTL(s.token); !ok || ttl <= 0 {
		t.Errorf("token not blacklisted: %v %v", ttl, ok)
	}
	if w := s.do(t, http.MethodGet, "/api/auth/me", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("revoked token still accepted: %d", w.Code)
	}
}
