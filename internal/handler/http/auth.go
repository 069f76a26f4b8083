package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/brewboard/brewboard/internal/models"
)

// GateService exchanges the staff passcode for a capability token.
type GateService interface {
	Authenticate(code string) (string, error)
}

// AuthHandler represents HTTP handler for passcode authentication
type AuthHandler struct {
	svc GateService
	ttl time.Duration
}

// NewAuthHandler creates new AuthHandler instance
func NewAuthHandler(svc GateService, ttl time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, ttl: ttl}
}

type authReq struct {
	Passcode string `json:"passcode"`
}

type authResp struct {
	Capability string `json:"capability"`
}

// Authenticate exchanges the shared passcode for a capability
// 200 — capability issued, also set as a cookie;
// 400 — malformed body;
// 401 — wrong passcode;
// 500 — internal error.
func (ah *AuthHandler) Authenticate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		token, err := ah.svc.Authenticate(req.Passcode)
		if err != nil {
			if errors.Is(err, models.ErrAccessDenied) {
				http.Error(w, "access denied", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CapabilityCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(ah.ttl),
			HttpOnly: true,
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(authResp{Capability: token})
	}
}
