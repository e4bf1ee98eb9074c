package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cardvault/internal/models/dtos"
	gormModels "cardvault/internal/models/gorm"

	"github.com/go-chi/chi/v5"
)

// ListInventoryHandler handles GET /api/v1/inventory?status=
func (h *Handlers) ListInventoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		items, err := h.deps.Repo.Inventory.List(r.Context(), r.URL.Query().Get("status"), limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list inventory")
			return
		}
		respondWithSuccess(w, http.StatusOK, &items)
	}
}

// CreateInventoryItemHandler handles POST /api/v1/inventory
func (h *Handlers) CreateInventoryItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateInventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ChecklistID == "" {
			respondWithError(w, http.StatusBadRequest, "checklist_id is required")
			return
		}
		if _, err := h.deps.Repo.Checklists.GetByID(r.Context(), req.ChecklistID); err != nil {
			respondWithError(w, http.StatusNotFound, "Checklist not found")
			return
		}

		item := &gormModels.InventoryItem{
			ChecklistID:   req.ChecklistID,
			Condition:     req.Condition,
			Grade:         req.Grade,
			Status:        gormModels.InventoryOwned,
			PurchasePrice: req.PurchasePrice,
			PurchasedAt:   req.PurchasedAt,
			Source:        req.Source,
			Location:      req.Location,
			Notes:         req.Notes,
		}
		if err := h.deps.Repo.Inventory.Create(r.Context(), item); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create inventory item")
			return
		}
		respondWithSuccess(w, http.StatusCreated, item)
	}
}

// GetInventoryItemHandler handles GET /api/v1/inventory/{id}
func (h *Handlers) GetInventoryItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.deps.Repo.Inventory.GetByID(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		respondWithSuccess(w, http.StatusOK, item)
	}
}

// DeleteInventoryItemHandler handles DELETE /api/v1/inventory/{id}
func (h *Handlers) DeleteInventoryItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.deps.Repo.Inventory.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}
		msg := "deleted"
		respondWithSuccess(w, http.StatusOK, &msg)
	}
}

// ListSalesHandler handles GET /api/v1/sales
func (h *Handlers) ListSalesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		sales, err := h.deps.Repo.Sales.List(r.Context(), limit, offset)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list sales")
			return
		}
		respondWithSuccess(w, http.StatusOK, &sales)
	}
}

// CreateGradingSubmissionHandler handles POST /api/v1/grading
func (h *Handlers) CreateGradingSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateGradingSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := h.deps.Repo.Inventory.GetByID(r.Context(), req.InventoryItemID)
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}

		sub := &gormModels.GradingSubmission{
			InventoryItemID: item.ID,
			Company:         req.Company,
			Status:          gormModels.SubmissionPending,
			Cost:            req.Cost,
			SubmittedAt:     req.SubmittedAt,
		}
		if err := h.deps.Repo.Grading.CreateSubmission(r.Context(), sub); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create submission")
			return
		}

		item.Status = gormModels.InventorySubmitted
		if err := h.deps.Repo.Inventory.Update(r.Context(), item); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update inventory item")
			return
		}
		respondWithSuccess(w, http.StatusCreated, sub)
	}
}

// UpdateGradingSubmissionHandler handles PUT /api/v1/grading/{id}
func (h *Handlers) UpdateGradingSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateGradingSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		sub, err := h.deps.Repo.Grading.GetSubmission(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Submission not found")
			return
		}

		if req.Status != "" {
			sub.Status = gormModels.SubmissionStatus(req.Status)
		}
		if req.ReturnedAt != nil {
			sub.ReturnedAt = req.ReturnedAt
		}
		if req.GradeReceived != nil {
			sub.GradeReceived = req.GradeReceived
		}
		if err := h.deps.Repo.Grading.UpdateSubmission(r.Context(), sub); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update submission")
			return
		}

		// A returned card carries its grade on the item itself.
		if sub.Status == gormModels.SubmissionReturned && sub.GradeReceived != nil {
			item, err := h.deps.Repo.Inventory.GetByID(r.Context(), sub.InventoryItemID)
			if err == nil {
				item.Grade = sub.GradeReceived
				item.Status = gormModels.InventoryOwned
				_ = h.deps.Repo.Inventory.Update(r.Context(), item)
			}
		}
		respondWithSuccess(w, http.StatusOK, sub)
	}
}

// ListGradingSubmissionsHandler handles GET /api/v1/grading?status=
func (h *Handlers) ListGradingSubmissionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := h.deps.Repo.Grading.ListSubmissions(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list submissions")
			return
		}
		respondWithSuccess(w, http.StatusOK, &subs)
	}
}

// CreateConsignmentHandler handles POST /api/v1/consignments
func (h *Handlers) CreateConsignmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateConsignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		item, err := h.deps.Repo.Inventory.GetByID(r.Context(), req.InventoryItemID)
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Inventory item not found")
			return
		}

		consignment := &gormModels.Consignment{
			InventoryItemID: item.ID,
			Consignee:       req.Consignee,
			Status:          gormModels.ConsignmentActive,
			ListedPrice:     req.ListedPrice,
			CommissionPct:   req.CommissionPct,
			StartedAt:       req.StartedAt,
		}
		if err := h.deps.Repo.Grading.CreateConsignment(r.Context(), consignment); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to create consignment")
			return
		}

		item.Status = gormModels.InventoryConsigned
		if err := h.deps.Repo.Inventory.Update(r.Context(), item); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update inventory item")
			return
		}
		respondWithSuccess(w, http.StatusCreated, consignment)
	}
}

// UpdateConsignmentHandler handles PUT /api/v1/consignments/{id}
func (h *Handlers) UpdateConsignmentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdateConsignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		consignment, err := h.deps.Repo.Grading.GetConsignment(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondWithError(w, http.StatusNotFound, "Consignment not found")
			return
		}

		if req.Status != "" {
			consignment.Status = gormModels.ConsignmentStatus(req.Status)
		}
		if !req.ListedPrice.IsZero() {
			consignment.ListedPrice = req.ListedPrice
		}
		if req.EndedAt != nil {
			consignment.EndedAt = req.EndedAt
		}
		if err := h.deps.Repo.Grading.UpdateConsignment(r.Context(), consignment); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to update consignment")
			return
		}

		// An item returned off consignment goes back to owned; a consignment
		// sale is recorded through the sales import, not here.
		if consignment.Status == gormModels.ConsignmentReturned {
			item, err := h.deps.Repo.Inventory.GetByID(r.Context(), consignment.InventoryItemID)
			if err == nil {
				item.Status = gormModels.InventoryOwned
				_ = h.deps.Repo.Inventory.Update(r.Context(), item)
			}
		}
		respondWithSuccess(w, http.StatusOK, consignment)
	}
}

// ListConsignmentsHandler handles GET /api/v1/consignments?status=
func (h *Handlers) ListConsignmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		consignments, err := h.deps.Repo.Grading.ListConsignments(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to list consignments")
			return
		}
		respondWithSuccess(w, http.StatusOK, &consignments)
	}
}
