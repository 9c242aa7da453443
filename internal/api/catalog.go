package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motorwala/motorwala/internal/catalog"
)

type CatalogHandler struct {
	table *catalog.Table
}

func NewCatalogHandler(t *catalog.Table) *CatalogHandler {
	return &CatalogHandler{table: t}
}

// Summary handles GET /api/v1/catalog/summary.
func (h *CatalogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Summarize(h.table))
}

// Cars handles GET /api/v1/catalog/cars?limit=&offset=.
func (h *CatalogHandler) Cars(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)
	if limit < 0 || offset < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit and offset must be non-negative"})
		return
	}
	if limit > 500 {
		limit = 500
	}

	total := h.table.Len()
	var idx []int
	for i := offset; i < total && len(idx) < limit; i++ {
		idx = append(idx, i)
	}
	page := h.table.Select(idx)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":  total,
		"offset": offset,
		"cars":   page.Records(),
	})
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
