package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"purrfect-cats/internal/app"
	"purrfect-cats/internal/domain"
)

// APIHandler serves the read-only JSON endpoints.
type APIHandler struct {
	service        *app.ViewService
	defaultCatalog string
}

func NewAPIHandler(service *app.ViewService, defaultCatalog string) *APIHandler {
	return &APIHandler{service: service, defaultCatalog: defaultCatalog}
}

type factBody struct {
	Text string `json:"text"`
}

// Catalog returns the answer-free catalog used for the info panels.
func (h *APIHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	catalogID := r.URL.Query().Get("catalogId")
	if catalogID == "" {
		catalogID = h.defaultCatalog
	}
	catalog, err := h.service.Catalog(r.Context(), catalogID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalog)
}

// Fact returns one display-ready fact; failures degrade to the fallback text.
func (h *APIHandler) Fact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, factBody{Text: h.service.Fact(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write json: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCatalog):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Printf("request failed: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
