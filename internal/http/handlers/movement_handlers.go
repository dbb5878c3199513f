package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"stockroom/internal/repo"
)

func parseIntPtr(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseTimePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetItemMovementsHandler godoc
// @Summary Movement history for an item
// @Tags movements
// @Produce json
// @Param id path string true "Item ID"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} MovementsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 404 {string} string "Not found"
// @Router /items/{id}/movements [get]
func GetItemMovementsHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := itemRepo.GetByID(id); err != nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	q := r.URL.Query()
	var mf repo.MovementFilter
	var err error
	if mf.Since, err = parseTimePtr(q.Get("since")); err != nil {
		http.Error(w, "since must be an RFC3339 timestamp", http.StatusBadRequest)
		return
	}
	if mf.Until, err = parseTimePtr(q.Get("until")); err != nil {
		http.Error(w, "until must be an RFC3339 timestamp", http.StatusBadRequest)
		return
	}
	if mf.Offset, err = parseIntPtr(q.Get("offset")); err != nil {
		http.Error(w, "offset must be an integer", http.StatusBadRequest)
		return
	}
	if mf.Limit, err = parseIntPtr(q.Get("limit")); err != nil {
		http.Error(w, "limit must be an integer", http.StatusBadRequest)
		return
	}

	if mf.Limit != nil && *mf.Limit <= 0 {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}
	if mf.Offset != nil && *mf.Offset < 0 {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}

	movements, total, err := movementRepo.GetByItemID(id, mf)
	if err != nil {
		http.Error(w, "could not fetch movements", http.StatusInternalServerError)
		return
	}

	resp := MovementsSearchResult{
		Data: make([]MovementResponse, len(movements)),
		Meta: Meta{TotalCount: total},
	}
	for i, m := range movements {
		resp.Data[i] = MovementResponse{
			ID:        m.ID,
			ItemID:    m.ItemID,
			Delta:     m.Delta,
			CreatedAt: time.UnixMilli(m.CreatedAt).UTC().Format(time.RFC3339),
		}
	}
	writeJSONOrLog(w, http.StatusOK, resp)
}
