package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberpro/internal/analytics"
	"github.com/BruksfildServices01/barberpro/internal/httpresp"
	"github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

type AdminHandler struct {
	repos        *repository.Repositories
	list         *ucAppointment.ListAppointments
	changeStatus *ucAppointment.ChangeAppointmentStatus
}

func NewAdminHandler(
	repos *repository.Repositories,
	list *ucAppointment.ListAppointments,
	changeStatus *ucAppointment.ChangeAppointmentStatus,
) *AdminHandler {
	return &AdminHandler{
		repos:        repos,
		list:         list,
		changeStatus: changeStatus,
	}
}

// --------- Requests ---------

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// APPOINTMENTS
// ======================================================

func (h *AdminHandler) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	apps, err := h.repos.Appointments.ListByStatus(ctx, c.DefaultQuery("status", repository.StatusAll))
	if err != nil {
		writeError(c, err)
		return
	}

	items, err := h.list.Execute(ctx, apps)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, items)
}

func (h *AdminHandler) ChangeAppointmentStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		c.Param("id"),
		models.AppointmentStatus(req.Status),
		c.GetString(middleware.ContextSubject),
	)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AdminHandler) DeleteAppointment(c *gin.Context) {
	found, err := h.repos.Appointments.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		writeErrorCode(c, "appointment_not_found")
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// CLIENTS
// ======================================================

func (h *AdminHandler) ListClients(c *gin.Context) {
	clients, err := h.repos.Clients.Search(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, clients)
}

// ======================================================
// ANALYTICS
// ======================================================

func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.dashboard(c)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, d)
}

func (h *AdminHandler) Financial(c *gin.Context) {
	d, err := h.dashboard(c)
	if err != nil {
		writeError(c, err)
		return
	}

	expenses, err := h.repos.Expenses.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, analytics.BuildFinancial(d.TotalRevenue, expenses))
}

func (h *AdminHandler) dashboard(c *gin.Context) (analytics.Dashboard, error) {
	ctx := c.Request.Context()

	apps, err := h.repos.Appointments.List(ctx)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	services, err := h.repos.Services.List(ctx)
	if err != nil {
		return analytics.Dashboard{}, err
	}
	return analytics.BuildDashboard(apps, services), nil
}
