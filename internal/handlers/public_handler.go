package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barberpro/internal/domain/appointment"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

type PublicHandler struct {
	repos        *repository.Repositories
	book         *ucAppointment.BookAppointment
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(
	repos *repository.Repositories,
	book *ucAppointment.BookAppointment,
	availability *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repos:        repos,
		book:         book,
		availability: availability,
	}
}

// --------- Requests ---------

type BookAppointmentRequest struct {
	ClientName     string `json:"clientName" binding:"required"`
	ClientPhone    string `json:"clientPhone" binding:"required"`
	ClientCpf      string `json:"clientCpf"`
	ServiceID      string `json:"serviceId" binding:"required"`
	ProfessionalID string `json:"professionalId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
}

// --------- Catalog ---------

func (h *PublicHandler) ListServices(c *gin.Context) {
	items, err := h.repos.Services.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	items, err := h.repos.Professionals.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *PublicHandler) ListProducts(c *gin.Context) {
	items, err := h.repos.Products.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *PublicHandler) GetLogo(c *gin.Context) {
	logo, ok, err := h.repos.Logo.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		httperr.NotFound(c, "logo_not_found", "Logo não configurado.")
		return
	}
	httpresp.OK(c, gin.H{"logo": logo})
}

// --------- Booking ---------

func (h *PublicHandler) Availability(c *gin.Context) {
	professionalID := c.Query("professional_id")
	date := c.Query("date")
	if professionalID == "" || date == "" {
		httperr.BadRequest(c, "missing_params", "professional_id e date são obrigatórios.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		ProfessionalID: professionalID,
		Date:           date,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		ClientCpf:      req.ClientCpf,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Time:           req.Time,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, ap)
}
