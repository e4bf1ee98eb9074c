package middleware

import (
	"net/http"
	"strings"

	"cardvault/internal/auth"
	"cardvault/internal/constants"
	"cardvault/internal/db/repositories"
	"cardvault/internal/services"
)

// AuthMiddleware accepts either a bearer JWT or an X-API-Key header.
func AuthMiddleware(authSvc *services.AuthService, keysRepo *repositories.KeysRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				token := strings.TrimPrefix(authHeader, "Bearer ")
				userID, err := authSvc.ValidateToken(token)
				if err != nil {
					http.Error(w, constants.MsgUnauthorized, http.StatusUnauthorized)
					return
				}
				claims = &auth.JWTClaims{UserUUID: userID}

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid API Key", http.StatusUnauthorized)
					return
				}
				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}
				claims = &auth.APIKeyClaims{KeyID: keyRes.ApiKey, Label: keyRes.Label}

			default:
				http.Error(w, constants.MsgUnauthorized, http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
