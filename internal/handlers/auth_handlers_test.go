package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func login(t *testing.T, app *testApp, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return app.do(t, req)
}

func TestLoginSuccess(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t)

	w := login(t, app, "admin", "admin123")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	if data["token"] == "" || data["token"] == nil {
		t.Error("response should carry the token for bearer clients")
	}
	if data["username"] != "admin" {
		t.Errorf("expected user summary, got %v", data)
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=") {
		t.Errorf("session cookie not set: %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Errorf("session cookie must be HTTP-only: %q", cookie)
	}
	if !strings.Contains(cookie, "SameSite=Strict") {
		t.Errorf("session cookie must be SameSite=Strict: %q", cookie)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t)

	w := login(t, app, "admin", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["message"] != "Invalid credentials" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	app := newTestApp(t)
	app.seedAdmin(t)

	w := login(t, app, "ghost", "admin123")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	// Same message as a bad password so account existence never leaks.
	if body := decodeBody(t, w); body["message"] != "Invalid credentials" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestMeWithCookie(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := app.do(t, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]interface{})
	if data["username"] != "admin" {
		t.Errorf("unexpected user: %v", data)
	}
}

func TestMeWithBearerFallback(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := app.do(t, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRejections(t *testing.T) {
	app := newTestApp(t)
	token := app.seedAdmin(t)

	tests := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{"no token", func(req *http.Request) {}},
		{"tampered cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "token", Value: token[:len(token)-2] + "xx"})
		}},
		{"garbage bearer", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not.a.token")
		}},
		{"wrong scheme", func(req *http.Request) {
			req.Header.Set("Authorization", "Basic "+token)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			tt.setup(req)
			if w := app.do(t, req); w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := app.do(t, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "token=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("logout should expire the cookie: %q", cookie)
	}
}
