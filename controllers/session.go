package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"thrift-rizz/services"
	"thrift-rizz/utils"
)

// SessionController handles the admin login stub
type SessionController struct {
	Session *services.Session
}

// NewSessionController creates a new SessionController
func NewSessionController(session *services.Session) *SessionController {
	return &SessionController{Session: session}
}

// Login accepts any non-empty credential pair and returns a session token.
// This is a demo stub, not authentication.
func (sc *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	err := json.NewDecoder(r.Body).Decode(&creds)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	identity, err := sc.Session.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			http.Error(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Error logging in", http.StatusInternalServerError)
		return
	}

	token, err := utils.GenerateSessionToken(identity.Email)
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token": token,
		"user":  identity,
	})
}

// Logout clears the session identity
func (sc *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := sc.Session.Logout(r.Context()); err != nil {
		http.Error(w, "Error logging out", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
