package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stockroom/internal/catalog"
	"stockroom/internal/repo"
)

func payloadFromRequest(req ItemRequest) catalog.Payload {
	return catalog.Payload{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Quantity: req.Quantity,
		MinStock: req.MinStock,
		Price:    req.Price,
	}.Normalize()
}

// CreateItemHandler godoc
// @Summary Create a new inventory item
// @Description Validates the payload and adds an item to the catalog
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body ItemRequest true "Item to add"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} catalog.ValidationError
// @Failure 409 {object} map[string]string
// @Router /items [post]
func CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	payload := payloadFromRequest(req)
	if verr := catalog.Validate(payload); verr != nil {
		writeJSONOrLog(w, http.StatusBadRequest, verr)
		return
	}

	created, err := itemRepo.Create(payload)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateSKU) {
			writeJSONOrLog(w, http.StatusConflict, map[string]string{"error": "sku already exists"})
			return
		}
		http.Error(w, "could not create item", http.StatusInternalServerError)
		return
	}

	writeJSONOrLog(w, http.StatusCreated, toItemResponse(created))
}

// SearchItemsHandler godoc
// @Summary List items, filtered and sorted by name
// @Tags items
// @Produce json
// @Param search query string false "Substring matched against name, sku and category"
// @Param status query string false "Stock status filter (all|ok|low)"
// @Success 200 {object} ItemsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /items [get]
func SearchItemsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := q.Get("status")
	switch status {
	case "", catalog.StatusAll, catalog.StatusOK, catalog.StatusLow:
	default:
		http.Error(w, "status must be one of all, ok, low", http.StatusBadRequest)
		return
	}

	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}

	view := catalog.Query(items, catalog.Filter{Search: q.Get("search"), Status: status})

	resp := ItemsSearchResult{
		Data: make([]ItemResponse, len(view)),
		Meta: Meta{TotalCount: len(view)},
	}
	for i, item := range view {
		resp.Data[i] = toItemResponse(item)
	}
	writeJSONOrLog(w, http.StatusOK, resp)
}

// GetItemByIDHandler godoc
// @Summary Get item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {string} string "Not found"
// @Router /items/{id} [get]
func GetItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	item, err := itemRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	writeJSONOrLog(w, http.StatusOK, toItemResponse(item))
}

// UpdateItemHandler godoc
// @Summary Update an existing item
// @Description Replaces all fields except id and createdAt
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body ItemRequest true "New field values"
// @Success 200 {object} ItemResponse
// @Failure 400 {object} catalog.ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {object} map[string]string
// @Router /items/{id} [put]
func UpdateItemHandler(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	payload := payloadFromRequest(req)
	if verr := catalog.Validate(payload); verr != nil {
		writeJSONOrLog(w, http.StatusBadRequest, verr)
		return
	}

	updated, err := itemRepo.Update(chi.URLParam(r, "id"), payload)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicateSKU):
			writeJSONOrLog(w, http.StatusConflict, map[string]string{"error": "sku already exists"})
		default:
			http.Error(w, "could not update item", http.StatusInternalServerError)
		}
		return
	}

	writeJSONOrLog(w, http.StatusOK, toItemResponse(updated))
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Description Requires an explicit confirmation; deleting an absent id is a no-op
// @Tags items
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param confirm query bool true "Must be true; the caller confirms the destructive action"
// @Success 204 {string} string "Deleted"
// @Failure 400 {string} string "Confirmation required"
// @Router /items/{id} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "confirmation required", http.StatusBadRequest)
		return
	}

	err := itemRepo.Delete(chi.URLParam(r, "id"))
	if err != nil && !errors.Is(err, repo.ErrItemNotFound) {
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	// A stale id is not a caller mistake; answer as if deleted.
	w.WriteHeader(http.StatusNoContent)
}

// AdjustQuantityHandler godoc
// @Summary Adjust an item's quantity by a delta
// @Description Rejects adjustments that would drive the quantity below zero
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param adjustment body QuantityAdjustmentRequest true "Delta to apply"
// @Success 200 {object} ItemResponse
// @Failure 400 {string} string "Invalid adjustment"
// @Failure 404 {string} string "Not found"
// @Router /items/{id}/quantity [post]
func AdjustQuantityHandler(w http.ResponseWriter, r *http.Request) {
	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	item, err := itemRepo.AdjustQuantity(id, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrItemNotFound):
			http.Error(w, "item not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantityChange):
			http.Error(w, "quantity cannot go below zero", http.StatusBadRequest)
		default:
			http.Error(w, "could not adjust quantity", http.StatusInternalServerError)
		}
		return
	}

	if err := movementRepo.Log(id, req.Delta); err != nil {
		log.Error().Err(err).Str("item_id", id).Msg("failed to log movement")
	}

	writeJSONOrLog(w, http.StatusOK, toItemResponse(item))
}

func writeJSONOrLog(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
