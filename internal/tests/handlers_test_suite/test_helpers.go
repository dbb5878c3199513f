package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"golang.org/x/crypto/bcrypt"

	api "stockroom/internal/http"
	handler "stockroom/internal/http/handlers"
	rl "stockroom/internal/http/rate_limiter"
	"stockroom/internal/models"
	"stockroom/internal/repo"
	"stockroom/internal/store"
)

var (
	token        string
	itemRepo     *repo.InMemoryItemRepository
	movementRepo *repo.InMemoryMovementRepository
)

func init() {
	rl.Configure(10000, 10000)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	itemRepo = repo.NewInMemoryItemRepository(store.NewMemoryStore())
	handler.SetItemRepo(itemRepo)

	movementRepo = repo.NewInMemoryMovementRepository()
	handler.SetMovementRepo(movementRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})
}

func generateToken(r http.Handler, username, password string) (string, error) {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", w.Code)
	}
	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Token, nil
}

func clearAllItems() {
	itemRepo.Clear()
	movementRepo.Clear()
	rl.CleanupAllVisitors()
}

func doJSON(r http.Handler, method, url string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, url, &body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItem(r http.Handler, payload handler.ItemRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/items", payload)
}

func widgetRequest() handler.ItemRequest {
	return handler.ItemRequest{
		Name:     "Widget",
		SKU:      "wd-1",
		Category: "Tools",
		Quantity: 5,
		MinStock: 10,
		Price:    9.999,
	}
}
