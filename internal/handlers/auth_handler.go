package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
)

const adminTokenTTL = 12 * time.Hour

// AuthHandler guards the back-office with the single shared passphrase.
// Only its bcrypt hash is kept in memory after startup.
type AuthHandler struct {
	passphraseHash []byte
	secret         string
}

func NewAuthHandler(cfg *config.Config) (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassphrase), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin passphrase: %w", err)
	}
	return &AuthHandler{passphraseHash: hash, secret: cfg.JWTSecret}, nil
}

// --------- Requests ---------

type AdminLoginRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passphraseHash, []byte(req.Passphrase)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Senha incorreta.")
		return
	}

	token, err := middleware.IssueToken(h.secret, middleware.RoleAdmin, middleware.RoleAdmin, adminTokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
