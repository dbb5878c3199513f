package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "stockroom/internal/http"
	handler "stockroom/internal/http/handlers"
)

func TestCreateItemHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest())

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.ItemResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.SKU != "WD-1" {
		t.Errorf("expected upper-cased sku 'WD-1', got %q", resp.SKU)
	}
	if resp.Price != 10.00 {
		t.Errorf("expected price rounded to 10.00, got %v", resp.Price)
	}
	if resp.Status != "low" {
		t.Errorf("expected status 'low' (5 <= 10), got %q", resp.Status)
	}
	if resp.Id == "" || resp.CreatedAt == "" {
		t.Error("expected assigned id and createdAt")
	}
}

func TestCreateItemHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	tests := []struct {
		name          string
		payload       handler.ItemRequest
		expectedField string
	}{
		{
			name:          "Missing name",
			payload:       handler.ItemRequest{SKU: "A-1", Category: "Tools", Price: 1},
			expectedField: "name",
		},
		{
			name:          "Whitespace-only sku",
			payload:       handler.ItemRequest{Name: "Bolt", SKU: "   ", Category: "Tools"},
			expectedField: "sku",
		},
		{
			name:          "Missing category",
			payload:       handler.ItemRequest{Name: "Bolt", SKU: "A-1"},
			expectedField: "category",
		},
		{
			name: "Fractional quantity",
			payload: handler.ItemRequest{
				Name: "Bolt", SKU: "A-1", Category: "Tools", Quantity: 1.5,
			},
			expectedField: "quantity",
		},
		{
			name: "Negative price",
			payload: handler.ItemRequest{
				Name: "Bolt", SKU: "A-1", Category: "Tools", Price: -2,
			},
			expectedField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createItem(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}

			var resp struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if resp.Field != tt.expectedField {
				t.Errorf("expected error on field %q, got %q (%s)", tt.expectedField, resp.Field, resp.Message)
			}
		})
	}
}

func TestCreateItemHandler_DuplicateSKUIsCaseInsensitive(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	first := widgetRequest()
	first.SKU = "A-1"
	if w := createItem(r, first); w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	second := widgetRequest()
	second.Name = "Other"
	second.SKU = "a-1"
	w := createItem(r, second)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestCreateItemHandler_RequiresAuth(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUpdateItemHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest())
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	update := widgetRequest()
	update.Name = "Widget v2"
	update.Quantity = 20
	w = doJSON(r, http.MethodPut, "/items/"+created.Id, update)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.Name != "Widget v2" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Status != "ok" {
		t.Errorf("expected status ok after restock, got %q", updated.Status)
	}
	if updated.CreatedAt != created.CreatedAt {
		t.Error("update must not change createdAt")
	}
}

func TestUpdateItemHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := doJSON(r, http.MethodPut, "/items/no-such-id", widgetRequest())
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestDeleteItemHandler_RequiresConfirmation(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest())
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodDelete, "/items/"+created.Id, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without confirm, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/items/"+created.Id+"?confirm=true", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	// Deleting a stale id is a no-op, not an error.
	w = doJSON(r, http.MethodDelete, "/items/"+created.Id+"?confirm=true", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for stale id, got %d", w.Code)
	}
}

func TestAdjustQuantityHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest()) // quantity 5
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPost, "/items/"+created.Id+"/quantity", handler.QuantityAdjustmentRequest{Delta: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var adjusted handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&adjusted)
	if adjusted.Quantity != 8 {
		t.Errorf("expected quantity 8, got %d", adjusted.Quantity)
	}
}

func TestAdjustQuantityHandler_RejectsNegativeResult(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest()) // quantity 5
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	w = doJSON(r, http.MethodPost, "/items/"+created.Id+"/quantity", handler.QuantityAdjustmentRequest{Delta: -100})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/items/"+created.Id, nil)
	var after handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&after)
	if after.Quantity != 5 {
		t.Errorf("rejected adjustment must be a no-op, quantity is %d", after.Quantity)
	}
	if after.UpdatedAt != created.UpdatedAt {
		t.Error("rejected adjustment must not touch updatedAt")
	}
}

func TestSearchItemsHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	items := []handler.ItemRequest{
		{Name: "Wrench", SKU: "WR-1", Category: "Tools", Quantity: 12, MinStock: 3, Price: 8},
		{Name: "Bolt", SKU: "BL-1", Category: "Hardware", Quantity: 2, MinStock: 5, Price: 0.1},
		{Name: "Anvil", SKU: "AN-1", Category: "Tools", Quantity: 1, MinStock: 1, Price: 120},
	}
	for _, item := range items {
		if w := createItem(r, item); w.Code != http.StatusCreated {
			t.Fatalf("setup create failed with %d", w.Code)
		}
	}

	w := doJSON(r, http.MethodGet, "/items", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var all handler.ItemsSearchResult
	json.NewDecoder(w.Body).Decode(&all)
	if all.Meta.TotalCount != 3 {
		t.Fatalf("expected 3 items, got %d", all.Meta.TotalCount)
	}
	if all.Data[0].Name != "Anvil" || all.Data[1].Name != "Bolt" || all.Data[2].Name != "Wrench" {
		t.Errorf("expected name-sorted view, got %v %v %v", all.Data[0].Name, all.Data[1].Name, all.Data[2].Name)
	}

	w = doJSON(r, http.MethodGet, "/items?status=low", nil)
	var low handler.ItemsSearchResult
	json.NewDecoder(w.Body).Decode(&low)
	if low.Meta.TotalCount != 2 {
		t.Errorf("expected 2 low-stock items, got %d", low.Meta.TotalCount)
	}

	w = doJSON(r, http.MethodGet, "/items?search=hard", nil)
	var hardware handler.ItemsSearchResult
	json.NewDecoder(w.Body).Decode(&hardware)
	if hardware.Meta.TotalCount != 1 || hardware.Data[0].Name != "Bolt" {
		t.Errorf("expected only Bolt for search=hard, got %+v", hardware.Data)
	}

	w = doJSON(r, http.MethodGet, "/items?status=bogus", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid status, got %d", w.Code)
	}
}

func TestItemMovementsHandler(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest())
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	doJSON(r, http.MethodPost, "/items/"+created.Id+"/quantity", handler.QuantityAdjustmentRequest{Delta: 3})
	doJSON(r, http.MethodPost, "/items/"+created.Id+"/quantity", handler.QuantityAdjustmentRequest{Delta: -2})

	w = doJSON(r, http.MethodGet, "/items/"+created.Id+"/movements", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var movements handler.MovementsSearchResult
	json.NewDecoder(w.Body).Decode(&movements)
	if movements.Meta.TotalCount != 2 {
		t.Fatalf("expected 2 movements, got %d", movements.Meta.TotalCount)
	}
	if movements.Data[0].Delta != 3 || movements.Data[1].Delta != -2 {
		t.Errorf("unexpected deltas: %+v", movements.Data)
	}

	w = doJSON(r, http.MethodGet, "/items/no-such-id/movements", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown item, got %d", w.Code)
	}
}

func TestItemMovementsHandler_MalformedQuery(t *testing.T) {
	t.Cleanup(clearAllItems)
	r := api.NewRouter()

	w := createItem(r, widgetRequest())
	var created handler.ItemResponse
	json.NewDecoder(w.Body).Decode(&created)

	// Unparsable filter values must not be silently ignored.
	for _, query := range []string{
		"?limit=abc",
		"?offset=abc",
		"?since=notatime",
		"?until=2024-13-99",
	} {
		w = doJSON(r, http.MethodGet, "/items/"+created.Id+"/movements"+query, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %s, got %d", query, w.Code)
		}
	}

	w = doJSON(r, http.MethodGet, "/items/"+created.Id+"/movements?limit=1&since=2020-01-01T00:00:00Z", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for well-formed query, got %d", w.Code)
	}
}
