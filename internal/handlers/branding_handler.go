package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/branding"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
)

// BrandingHandler covers the logo and the AI-assisted copy.
type BrandingHandler struct {
	logo      *repository.LogoRepository
	ai        *ai.Service
	optimizer *branding.Optimizer // nil disables optimization
	audit     *audit.Dispatcher
}

func NewBrandingHandler(
	logo *repository.LogoRepository,
	aiService *ai.Service,
	optimizer *branding.Optimizer,
	audit *audit.Dispatcher,
) *BrandingHandler {
	return &BrandingHandler{
		logo:      logo,
		ai:        aiService,
		optimizer: optimizer,
		audit:     audit,
	}
}

// --------- Requests ---------

type SaveLogoRequest struct {
	Logo string `json:"logo" binding:"required"`
}

type GenerateCopyRequest struct {
	Type     string `json:"type" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Keywords string `json:"keywords"`
}

type GenerateLogoRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// --------- Logo ---------

func (h *BrandingHandler) GetLogo(c *gin.Context) {
	logo, ok, err := h.logo.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"logo": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logo": logo})
}

func (h *BrandingHandler) SaveLogo(c *gin.Context) {
	var req SaveLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if _, _, err := branding.ParseDataURI(req.Logo); err != nil {
		code := "invalid_logo"
		if errors.Is(err, branding.ErrNotImage) {
			code = "logo_not_image"
		}
		httperr.BadRequest(c, code, "Envie uma imagem válida.")
		return
	}

	logo := req.Logo
	if h.optimizer != nil {
		logo = h.optimizer.OptimizeOrKeep(logo)
	}

	if err := h.logo.Save(c.Request.Context(), logo); err != nil {
		writeError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    c.GetString(middleware.ContextSubject),
		Action:   "logo_updated",
		Entity:   "logo",
		Metadata: map[string]any{"bytes": len(logo)},
	})
	c.JSON(http.StatusOK, gin.H{"logo": logo})
}

// --------- AI ---------

func (h *BrandingHandler) GenerateCopy(c *gin.Context) {
	var req GenerateCopyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	kind := ai.Kind(req.Type)
	if !kind.ValidCopy() {
		httperr.BadRequest(c, "invalid_type", "Tipo deve ser service ou bio.")
		return
	}

	text := h.ai.GenerateCopy(c.Request.Context(), kind, req.Name, req.Keywords)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// GenerateLogo only returns the image; saving it is a separate PUT.
func (h *BrandingHandler) GenerateLogo(c *gin.Context) {
	var req GenerateLogoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	logo, ok := h.ai.GenerateLogo(c.Request.Context(), req.Prompt)
	if !ok {
		httperr.ServiceUnavailable(c, "logo_generation_failed", "Não foi possível gerar o logo.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"logo": logo})
}
