package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/httperr"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

const clientTokenTTL = 7 * 24 * time.Hour

// PortalHandler serves the client self-service area. Clients identify
// themselves by cpf only.
type PortalHandler struct {
	clients      *repository.ClientRepository
	appointments *repository.AppointmentRepository
	list         *ucAppointment.ListAppointments
	audit        *audit.Dispatcher
	config       *config.Config
}

func NewPortalHandler(
	repos *repository.Repositories,
	list *ucAppointment.ListAppointments,
	audit *audit.Dispatcher,
	cfg *config.Config,
) *PortalHandler {
	return &PortalHandler{
		clients:      repos.Clients,
		appointments: repos.Appointments,
		list:         list,
		audit:        audit,
		config:       cfg,
	}
}

// --------- Requests ---------

type PortalLoginRequest struct {
	Cpf string `json:"cpf" binding:"required"`
}

type PortalRegisterRequest struct {
	Name  string `json:"name" binding:"required"`
	Cpf   string `json:"cpf" binding:"required"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

// --------- Handlers ---------

func (h *PortalHandler) Login(c *gin.Context) {
	var req PortalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}
	if !models.IsValidCPF(req.Cpf) {
		writeError(c, httperr.ErrBusiness("invalid_cpf"))
		return
	}

	client, ok, err := h.clients.FindByCpf(c.Request.Context(), models.NormalizeCPF(req.Cpf))
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, httperr.ErrBusiness("client_not_found"))
		return
	}

	h.respondWithToken(c, http.StatusOK, client)
}

func (h *PortalHandler) Register(c *gin.Context) {
	var req PortalRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	client, added, err := h.clients.Add(c.Request.Context(), models.Client{
		Name:  req.Name,
		Cpf:   req.Cpf,
		Phone: req.Phone,
		Type:  models.ClientType(req.Type),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if !added {
		writeError(c, httperr.ErrBusiness("cpf_already_registered"))
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "client:" + client.Cpf,
		Action:   "client_registered",
		Entity:   "client",
		EntityID: client.ID,
	})

	h.respondWithToken(c, http.StatusCreated, client)
}

// Me returns the logged client and its bookings.
func (h *PortalHandler) Me(c *gin.Context) {
	cpf := c.GetString(middleware.ContextSubject)
	ctx := c.Request.Context()

	client, ok, err := h.clients.FindByCpf(ctx, cpf)
	if err != nil {
		writeError(c, err)
		return
	}
	if !ok {
		writeError(c, httperr.ErrBusiness("client_not_found"))
		return
	}

	apps, err := h.appointments.FindByCpf(ctx, cpf)
	if err != nil {
		writeError(c, err)
		return
	}
	items, err := h.list.Execute(ctx, apps)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":       client,
		"appointments": items,
	})
}

func (h *PortalHandler) respondWithToken(c *gin.Context, status int, client models.Client) {
	token, err := middleware.IssueToken(h.config.JWTSecret, middleware.RoleClient, client.Cpf, clientTokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(status, gin.H{
		"client": client,
		"token":  token,
	})
}
