package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"cardvault/internal/constants"
	"cardvault/internal/models/dtos"
	"cardvault/internal/services"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// LoginHandler handles POST /api/v1/auth/login
func (h *Handlers) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := h.deps.Services.Auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				respondWithError(w, http.StatusUnauthorized, constants.MsgInvalidCredentials)
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Login failed")
			return
		}

		respondWithSuccess(w, http.StatusOK, &dtos.LoginResponse{Token: token})
	}
}

// RegisterHandler handles POST /api/v1/auth/register
func (h *Handlers) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, err := h.deps.Services.Auth.Register(r.Context(), req.Email, req.Password, req.DisplayName)
		if err != nil {
			respondWithError(w, http.StatusConflict, "Unable to create user")
			return
		}

		respondWithSuccess(w, http.StatusCreated, user)
	}
}
