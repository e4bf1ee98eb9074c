package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cardvault/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

// ListProductLinesHandler handles GET /api/v1/product-lines
func (h *Handlers) ListProductLinesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines, err := h.deps.Repo.Registry.ListProductLines(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list product lines")
			return
		}
		respondWithSuccess(w, http.StatusOK, &lines)
	}
}

// CreateProductLineHandler handles POST /api/v1/product-lines. The brand is
// found or created by name.
func (h *Handlers) CreateProductLineHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateProductLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Brand == "" || req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "Brand and name are required")
			return
		}

		brand, err := h.deps.Repo.Registry.FindOrCreateBrand(r.Context(), req.Brand)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve brand")
			return
		}
		line, err := h.deps.Repo.Registry.FindOrCreateProductLine(r.Context(), brand.ID, req.Name, req.Year)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create product line")
			return
		}
		respondWithSuccess(w, http.StatusCreated, line)
	}
}

// ListChecklistsHandler handles GET /api/v1/product-lines/{id}/checklists
func (h *Handlers) ListChecklistsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productLineID := chi.URLParam(r, "id")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		checklists, err := h.deps.Repo.Checklists.ListByProductLine(r.Context(), productLineID, limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list checklists")
			return
		}
		respondWithSuccess(w, http.StatusOK, &checklists)
	}
}

// GetChecklistHandler handles GET /api/v1/checklists/{id}
func (h *Handlers) GetChecklistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checklist, err := h.deps.Repo.Checklists.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Checklist not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, checklist)
	}
}

// SearchPlayersHandler handles GET /api/v1/players?q=
func (h *Handlers) SearchPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		players, err := h.deps.Repo.Players.Search(r.Context(), query, limit)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to search players")
			return
		}
		respondWithSuccess(w, http.StatusOK, &players)
	}
}

// GetPlayerHandler handles GET /api/v1/players/{id}
func (h *Handlers) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		player, err := h.deps.Repo.Players.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Player not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, player)
	}
}

// CollectionStatsHandler handles GET /api/v1/collection/stats
func (h *Handlers) CollectionStatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.deps.Services.Stats.GetStats(r.Context())
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
			return
		}
		respondWithSuccess(w, http.StatusOK, stats)
	}
}
