package api

import (
	"net/http"

	"cardvault/internal/constants"
	"cardvault/internal/importer"
	"cardvault/internal/logging"
	"cardvault/internal/models/dtos"
)

const maxUploadBytes = 32 << 20

// ImportChecklistHandler handles POST /api/v1/imports/checklist.
// Multipart form: "file" (xlsx/csv/pdf) and "product_line_id". Row failures
// come back inside a 200 response; file-level failures are a 400.
func (h *Handlers) ImportChecklistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		defer file.Close()

		productLineID := r.FormValue("product_line_id")
		if productLineID == "" {
			respondWithError(w, http.StatusBadRequest, constants.MsgProductLineRequired)
			return
		}

		result, err := h.deps.Services.Import.ImportChecklist(r.Context(), file, header.Filename, productLineID)
		if err != nil {
			if importer.IsFileError(err) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			logging.Error("Checklist import failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Import failed")
			return
		}

		respondWithSuccess(w, http.StatusOK, dtos.NewImportSummary(result))
	}
}

// PreviewChecklistHandler handles POST /api/v1/imports/checklist/preview.
// Same decoding as a committed import, nothing persisted.
func (h *Handlers) PreviewChecklistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		defer file.Close()

		preview, err := h.deps.Services.Import.PreviewChecklist(r.Context(), file, header.Filename)
		if err != nil {
			if importer.IsFileError(err) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			logging.Error("Checklist preview failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Preview failed")
			return
		}

		respondWithSuccess(w, http.StatusOK, dtos.NewImportPreview(preview))
	}
}

// ImportSalesHandler handles POST /api/v1/imports/sales.
func (h *Handlers) ImportSalesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, constants.MsgMissingFile)
			return
		}
		defer file.Close()

		result, err := h.deps.Services.SalesImport.ImportSalesReport(r.Context(), file)
		if err != nil {
			if importer.IsFileError(err) {
				respondWithError(w, http.StatusBadRequest, err.Error())
				return
			}
			logging.Error("Sales import failed", "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Import failed")
			return
		}

		respondWithSuccess(w, http.StatusOK, dtos.NewImportSummary(result))
	}
}
