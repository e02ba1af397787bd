package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barberpro/internal/ai"
	"github.com/BruksfildServices01/barberpro/internal/audit"
	"github.com/BruksfildServices01/barberpro/internal/branding"
	"github.com/BruksfildServices01/barberpro/internal/config"
	"github.com/BruksfildServices01/barberpro/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barberpro/internal/infra/repository"
	"github.com/BruksfildServices01/barberpro/internal/middleware"
	"github.com/BruksfildServices01/barberpro/internal/models"
	"github.com/BruksfildServices01/barberpro/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barberpro/internal/usecase/appointment"
)

// Deps are the singletons built by main.
type Deps struct {
	Config      *config.Config
	Repos       *infraRepo.Repositories
	Audit       *audit.Dispatcher
	AI          *ai.Service
	Optimizer   *branding.Optimizer // nil when LOGO_OPTIMIZE=false
	RateLimiter *middleware.RateLimiter
}

func RegisterRoutes(r *gin.Engine, deps Deps) error {
	cfg := deps.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// ======================================================
	// 🔧 INFRA
	// ======================================================
	schedulingRepo := infraRepo.NewSchedulingRepository(deps.Repos)

	// ======================================================
	// 🧠 USE CASES / APPOINTMENTS
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(
		schedulingRepo,
		deps.Audit,
		timezone.Location(cfg.Timezone),
	)
	changeStatusUC := ucAppointment.NewChangeAppointmentStatus(
		schedulingRepo,
		deps.Audit,
	)
	availabilityUC := ucAppointment.NewGetAvailability(schedulingRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(schedulingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler, err := handlers.NewAuthHandler(cfg)
	if err != nil {
		return err
	}

	publicHandler := handlers.NewPublicHandler(deps.Repos, bookAppointmentUC, availabilityUC)
	portalHandler := handlers.NewPortalHandler(deps.Repos, listAppointmentsUC, deps.Audit, cfg)
	adminHandler := handlers.NewAdminHandler(deps.Repos, listAppointmentsUC, changeStatusUC)
	brandingHandler := handlers.NewBrandingHandler(deps.Repos.Logo, deps.AI, deps.Optimizer, deps.Audit)

	serviceHandler := handlers.NewCatalogHandler[models.Service](deps.Repos.Services, "service", deps.Audit)
	professionalHandler := handlers.NewCatalogHandler[models.Professional](deps.Repos.Professionals, "professional", deps.Audit)
	productHandler := handlers.NewCatalogHandler[models.Product](deps.Repos.Products, "product", deps.Audit)
	expenseHandler := handlers.NewCatalogHandler[models.Expense](deps.Repos.Expenses, "expense", deps.Audit)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/products", publicHandler.ListProducts)
			publicAPI.GET("/logo", publicHandler.GetLogo)
			publicAPI.GET("/availability", publicHandler.Availability)

			if deps.RateLimiter != nil {
				publicAPI.POST("/appointments", middleware.RateLimit(deps.RateLimiter), publicHandler.CreateAppointment)
			} else {
				publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			}
		}

		// ------------------------------
		// 👤 PORTAL DO CLIENTE
		// ------------------------------
		portal := api.Group("/portal")
		{
			portal.POST("/login", portalHandler.Login)
			portal.POST("/register", portalHandler.Register)
			portal.GET("/me", middleware.AuthMiddleware(cfg.JWTSecret, middleware.RoleClient), portalHandler.Me)
		}

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		api.POST("/admin/login", authHandler.AdminLogin)

		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg.JWTSecret, middleware.RoleAdmin))
		{
			registerCatalog(admin, "/services", serviceHandler)
			registerCatalog(admin, "/professionals", professionalHandler)
			registerCatalog(admin, "/products", productHandler)
			registerCatalog(admin, "/expenses", expenseHandler)

			admin.GET("/appointments", adminHandler.ListAppointments)
			admin.PATCH("/appointments/:id/status", adminHandler.ChangeAppointmentStatus)
			admin.DELETE("/appointments/:id", adminHandler.DeleteAppointment)

			admin.GET("/clients", adminHandler.ListClients)

			admin.GET("/analytics/dashboard", adminHandler.Dashboard)
			admin.GET("/analytics/financial", adminHandler.Financial)

			admin.GET("/logo", brandingHandler.GetLogo)
			admin.PUT("/logo", brandingHandler.SaveLogo)
			admin.POST("/ai/copy", brandingHandler.GenerateCopy)
			admin.POST("/ai/logo", brandingHandler.GenerateLogo)
		}
	}

	return nil
}

func registerCatalog[T any](g *gin.RouterGroup, path string, h *handlers.CatalogHandler[T]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
