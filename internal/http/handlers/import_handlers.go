package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"stockroom/internal/catalog"
	"stockroom/internal/repo"
)

type csvRow struct {
	Name     string
	SKU      string
	Category string
	Quantity string
	MinStock string
	Price    string
}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "sku", "category", "quantity", "minstock", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing CSV column %q", required)
		}
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:     record[index["name"]],
			SKU:      record[index["sku"]],
			Category: record[index["category"]],
			Quantity: record[index["quantity"]],
			MinStock: record[index["minstock"]],
			Price:    record[index["price"]],
		})
	}
	return rows, nil
}

// parseNumber keeps malformed input visible to the validator instead of
// silently zeroing it.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ImportItemsHandler godoc
// @Summary Import items via CSV
// @Description Each row is validated like a create; bad rows are reported, not imported
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file with name,sku,category,quantity,minStock,price columns"
// @Param mode query string false "Duplicate-SKU handling (skip|update)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Router /items/import [post]
// @Security BearerAuth
func ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ImportItemsResult{Errors: []ImportRowError{}}
	for i, row := range rows {
		rowNum := i + 1

		payload := catalog.Payload{
			Name:     row.Name,
			SKU:      row.SKU,
			Category: row.Category,
			Quantity: parseNumber(row.Quantity),
			MinStock: parseNumber(row.MinStock),
			Price:    parseNumber(row.Price),
		}.Normalize()

		if verr := catalog.Validate(payload); verr != nil {
			result.Errors = append(result.Errors, ImportRowError{
				Row: rowNum, Field: verr.Field, Message: verr.Message,
			})
			continue
		}

		_, err := itemRepo.Create(payload)
		if err == nil {
			result.Imported++
			continue
		}
		if !errors.Is(err, repo.ErrDuplicateSKU) {
			result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Message: "could not create item"})
			continue
		}

		if mode == "update" {
			if id, ok := idForSKU(payload.SKU); ok {
				if _, err := itemRepo.Update(id, payload); err == nil {
					result.Imported++
					continue
				}
			}
			result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Field: "sku", Message: "could not update existing sku"})
			continue
		}

		result.Errors = append(result.Errors, ImportRowError{Row: rowNum, Field: "sku", Message: "sku already exists"})
	}

	writeJSONOrLog(w, http.StatusOK, result)
}

func idForSKU(sku string) (string, bool) {
	items, err := itemRepo.GetAll()
	if err != nil {
		return "", false
	}
	for _, item := range items {
		if strings.EqualFold(item.SKU, sku) {
			return item.ID, true
		}
	}
	return "", false
}
