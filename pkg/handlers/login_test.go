package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"noticias-service/pkg/models"
)

func TestLogin_Success(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/login",
		models.LoginRequest{Username: "alice", Password: "secret"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resp := decodeBody[models.LoginResponse](t, rec)
	if resp.Token == "" {
		t.Error("expected non-empty token")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/login",
		models.LoginRequest{Username: "alice", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogin_UnknownUserSameAnswerAsWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	unknown := env.doJSON(t, http.MethodPost, "/login",
		models.LoginRequest{Username: "nobody", Password: "secret"})
	wrong := env.doJSON(t, http.MethodPost, "/login",
		models.LoginRequest{Username: "alice", Password: "wrong"})

	if unknown.Code != http.StatusUnauthorized || wrong.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, wrong.Code)
	}
	if unknown.Body.String() != wrong.Body.String() {
		t.Error("response must not reveal whether the username exists")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/login", map[string]string{"username": "alice"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSession_WithBearerToken(t *testing.T) {
	env := newTestEnv(t)
	login := decodeBody[models.LoginResponse](t, env.doJSON(t, http.MethodPost, "/login",
		models.LoginRequest{Username: "alice", Password: "secret"}))

	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody[map[string]string](t, rec)
	if body["username"] != "alice" {
		t.Errorf("username: got %q", body["username"])
	}
}

func TestSession_WithoutToken(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodGet, "/session", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	rec := env.doJSON(t, http.MethodPost, "/logout", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
