package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/product-catalog/internal/http/handlers"
)

func TestAccountLoginForm(t *testing.T) {
	r := newRouter()

	w := getAs(r, "/account/login?return=%2Fproducts%2Fcreate")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `action="/account/login"`) {
		t.Error("expected login form")
	}
	if !strings.Contains(body, `name="return" value="/products/create"`) {
		t.Error("expected return path to be carried by the form")
	}
}

func TestAccountLogin(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name         string
		form         url.Values
		expectCode   int
		expectTarget string
	}{
		{"valid", url.Values{"username": {"admin"}, "password": {"secret"}, "return": {"/products/edit/2"}}, http.StatusSeeOther, "/products/edit/2"},
		{"no return path", url.Values{"username": {"admin"}, "password": {"secret"}}, http.StatusSeeOther, "/products"},
		{"offsite return path", url.Values{"username": {"admin"}, "password": {"secret"}, "return": {"//evil.example"}}, http.StatusSeeOther, "/products"},
		{"wrong password", url.Values{"username": {"admin"}, "password": {"nope"}}, http.StatusUnauthorized, ""},
		{"empty form", url.Values{}, http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := submitForm(r, "/account/login", tt.form)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}

			var session *http.Cookie
			for _, c := range w.Result().Cookies() {
				if c.Name == handler.SessionCookie {
					session = c
				}
			}

			if tt.expectCode != http.StatusSeeOther {
				if session != nil {
					t.Error("failed login must not set a session cookie")
				}
				if !strings.Contains(w.Body.String(), "Invalid username or password.") {
					t.Error("expected error message on the form")
				}
				return
			}

			if loc := w.Header().Get("Location"); loc != tt.expectTarget {
				t.Errorf("expected redirect to %q, got %q", tt.expectTarget, loc)
			}
			if session == nil {
				t.Fatal("expected session cookie")
			}
			if !session.HttpOnly || session.SameSite != http.SameSiteLaxMode {
				t.Errorf("session cookie must be HttpOnly and SameSite=Lax, got %+v", session)
			}
			if _, err := tokens.ParseToken(session.Value); err != nil {
				t.Errorf("session token does not verify: %v", err)
			}
		})
	}
}

func TestSessionCookieAuthorizesPages(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	login := submitForm(r, "/account/login", url.Values{"username": {"admin"}, "password": {"secret"}})
	cookies := login.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie from login")
	}

	w := submitForm(r, "/products/delete/1", url.Values{"id": {"1"}}, cookies...)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/products" {
		t.Fatalf("expected redirect to list, got %d %q", w.Code, w.Header().Get("Location"))
	}
	if _, err := productRepo.GetByID(t.Context(), 1); err == nil {
		t.Error("expected product 1 to be deleted")
	}

	page := getAs(r, "/products", cookies...).Body.String()
	if !strings.Contains(page, "Signed in as admin") {
		t.Error("expected the layout to show the signed-in user")
	}

	logout := submitForm(r, "/account/logout", nil, cookies...)
	if logout.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 from logout, got %d", logout.Code)
	}
	cleared := logout.Result().Cookies()
	if len(cleared) != 1 || cleared[0].Name != handler.SessionCookie || cleared[0].MaxAge >= 0 {
		t.Errorf("expected the session cookie to be cleared, got %+v", cleared)
	}
}

func TestSessionCookieDoesNotAuthorizeAPI(t *testing.T) {
	t.Cleanup(clearAllProducts)
	seedProducts()
	r := newRouter()

	req := httptest.NewRequest(http.MethodDelete, "/api/products/1", nil)
	req.AddCookie(sessionCookie())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	if _, err := productRepo.GetByID(t.Context(), 1); err != nil {
		t.Errorf("product 1 should still exist: %v", err)
	}
}
