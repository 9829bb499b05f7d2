package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/azamatb/notekeeper/internal/domain"
	"github.com/azamatb/notekeeper/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	signup  func(ctx context.Context, email, password string) (string, error)
	login   func(ctx context.Context, email, password string) (string, string, error)
	refresh func(refreshToken string) (string, error)
}

func (f *fakeAuthUsecase) Signup(ctx context.Context, email, password string) (string, error) {
	return f.signup(ctx, email, password)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, string, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthUsecase) Refresh(refreshToken string) (string, error) {
	return f.refresh(refreshToken)
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAuthHandler(uc, logger)

	r := gin.New()
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/refresh", h.Refresh)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

// ---- Signup ----

func TestSignup_MissingFields_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{}
	for _, body := range []string{
		`{}`,
		`{"email":"a@x.com"}`,
		`{"password":"secret"}`,
		`{bad json}`,
	} {
		w := postJSON(t, newAuthEngine(uc), "/signup", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, w.Code)
		}
	}
}

func TestSignup_Success_ReturnsID(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, email, password string) (string, error) {
			if email != "a@x.com" || password != "secret" {
				t.Errorf("usecase called with (%q, %q)", email, password)
			}
			return "user-1", nil
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/signup", `{"email":"a@x.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["_id"] != "user-1" {
		t.Errorf("_id = %v, want user-1", body["_id"])
	}
	if body["message"] == "" {
		t.Error("missing message")
	}
}

func TestSignup_DuplicateEmail_Returns400(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _ string) (string, error) {
			return "", domain.ErrEmailTaken
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/signup", `{"email":"a@x.com","password":"secret"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if decodeBody(t, w)["error"] != "Email already exists" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestSignup_StoreError_Returns500(t *testing.T) {
	uc := &fakeAuthUsecase{
		signup: func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db down")
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/signup", `{"email":"a@x.com","password":"secret"}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

// ---- Login ----

func TestLogin_InvalidCredentials_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, string, error) {
			return "", "", domain.ErrInvalidCredentials
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/login", `{"email":"a@x.com","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if decodeBody(t, w)["error"] != "Invalid credentials" {
		t.Errorf("unexpected error body: %s", w.Body.String())
	}
}

func TestLogin_Success_ReturnsTokenPair(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, string, error) {
			return "access-tok", "refresh-tok", nil
		},
	}

	w := postJSON(t, newAuthEngine(uc), "/login", `{"email":"a@x.com","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["access_token"] != "access-tok" || body["refresh_token"] != "refresh-tok" {
		t.Errorf("unexpected tokens in body: %s", w.Body.String())
	}
}

// ---- Refresh ----

func TestRefresh_MissingHeader_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{}
	w := postJSON(t, newAuthEngine(uc), "/refresh", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRefresh_InvalidToken_Returns401(t *testing.T) {
	uc := &fakeAuthUsecase{
		refresh: func(_ string) (string, error) {
			return "", domain.ErrTokenInvalid
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer not-a-refresh-token")
	newAuthEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestRefresh_Success_ReturnsAccessToken(t *testing.T) {
	uc := &fakeAuthUsecase{
		refresh: func(raw string) (string, error) {
			if raw != "refresh-tok" {
				t.Errorf("usecase called with %q", raw)
			}
			return "new-access", nil
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "Bearer refresh-tok")
	newAuthEngine(uc).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if decodeBody(t, w)["access_token"] != "new-access" {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
