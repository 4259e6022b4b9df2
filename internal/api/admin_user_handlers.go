package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/saveloop/saveloop/internal/auth"
)

func (s *Server) handleAdminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers()
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to retrieve users")
		return
	}
	RespondWithJSON(w, http.StatusOK, users)
}

func (s *Server) handleAdminCreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	if payload.Role != "admin" && payload.Role != "user" {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Role must be 'user' or 'admin'")
		return
	}
	if err := auth.ValidateRegistration(payload.Username, payload.Email, payload.Password); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	passwordHash, err := auth.HashPassword(payload.Password)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to hash password")
		return
	}

	user, err := s.store.CreateUser(payload.Username, payload.Email, passwordHash, payload.Role)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			RespondWithError(w, http.StatusConflict, "conflict", "Username or email already exists")
			return
		}
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to create user")
		return
	}
	RespondWithJSON(w, http.StatusCreated, user)
}

func (s *Server) handleAdminUpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Role     string `json:"role"`
		Password string `json:"password,omitempty"` // Password is optional
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}

	// Update basic info
	if err := s.store.UpdateUser(userID, payload.Username, payload.Email, payload.Role); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to update user")
		return
	}

	// Update password if provided
	if payload.Password != "" {
		passwordHash, err := auth.HashPassword(payload.Password)
		if err != nil {
			RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to hash password")
			return
		}
		if err := s.store.UpdateUserPassword(userID, passwordHash); err != nil {
			RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to update password")
			return
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)

	// You might want to prevent an admin from deleting themselves
	currentUser := getUserFromContext(r)
	if currentUser.ID == userID {
		RespondWithError(w, http.StatusBadRequest, "invalid_request", "Cannot delete your own account")
		return
	}

	if err := s.store.DeleteUser(userID); err != nil {
		RespondWithError(w, http.StatusInternalServerError, "server_error", "Failed to delete user")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
