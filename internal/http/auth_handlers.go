package http

import (
	"encoding/json"
	"net/http"

	"request-analytics/internal/auth"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerHandler struct {
	authService auth.AuthService
}

func NewRegisterHandler(authService auth.AuthService) AppHttpHandler {
	return &registerHandler{authService: authService}
}

// Handle processes POST /register requests.
func (h *registerHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errInvalidRequestBody(err)
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusCreated, map[string]string{"username": user.Username})
}

type tokenHandler struct {
	authService auth.AuthService
}

func NewTokenHandler(authService auth.AuthService) AppHttpHandler {
	return &tokenHandler{authService: authService}
}

// Handle processes POST /token requests, exchanging credentials for a
// bearer token.
func (h *tokenHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return errInvalidRequestBody(err)
	}

	token, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

type generateKeyHandler struct {
	authService auth.AuthService
}

func NewGenerateKeyHandler(authService auth.AuthService) AppHttpHandler {
	return &generateKeyHandler{authService: authService}
}

// Handle processes POST /generate_key requests for a logged-in user.
func (h *generateKeyHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	username, err := h.authService.VerifyToken(bearerToken(r))
	if err != nil {
		return err
	}

	key, err := h.authService.GenerateKey(r.Context(), username)
	if err != nil {
		return err
	}

	return writeJSON(w, http.StatusOK, map[string]string{"api_key": key})
}
