package handlers

import (
	"net/http"

	"stockroom/internal/catalog"
)

// GetSummaryHandler godoc
// @Summary Aggregate catalog statistics
// @Description Item count, total units, low-stock count and total stock value
// @Tags summary
// @Produce json
// @Success 200 {object} catalog.Summary
// @Failure 500 {string} string "Internal error"
// @Router /summary [get]
func GetSummaryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	writeJSONOrLog(w, http.StatusOK, catalog.Summarize(items))
}
