package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "stockroom/internal/http"
	handler "stockroom/internal/http/handlers"
)

func login(r http.Handler, creds handler.CredentialsRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(creds)
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Valid(t *testing.T) {
	r := api.NewRouter()

	w := login(r, handler.CredentialsRequest{Username: "admin", Password: "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a token")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	r := api.NewRouter()

	w := login(r, handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	r := api.NewRouter()

	w := login(r, handler.CredentialsRequest{Username: "nobody", Password: "secret"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginHandler_MissingCredentials(t *testing.T) {
	r := api.NewRouter()

	w := login(r, handler.CredentialsRequest{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
