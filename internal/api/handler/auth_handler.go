package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"cafe/internal/api/util"
	"cafe/internal/core/service"
)

type AuthHandler struct {
	authService service.AuthService
	tokens      *util.TokenIssuer
}

func NewAuthHandler(authService service.AuthService, tokens *util.TokenIssuer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		tokens:      tokens,
	}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.authService.Signup(r.Context(), req.Name, req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserExists):
		util.WriteMessage(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, service.ErrValidation):
		util.WriteMessage(w, http.StatusBadRequest, "Name, email and password are required")
	case err != nil:
		util.WriteError(w, r, http.StatusInternalServerError, "Error creating user", err, false)
	default:
		util.WriteMessage(w, http.StatusCreated, "User created successfully")
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		util.WriteMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Login failed", err, false)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		util.WriteError(w, r, http.StatusInternalServerError, "Login failed", err, false)
		return
	}

	util.WriteJSON(w, http.StatusOK, loginResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		Token: token,
	})
}
