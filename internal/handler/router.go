package handler

import (
	"net/http"

	"hostel-admin/internal/domain/user"
	"hostel-admin/internal/handler/api"
	"hostel-admin/internal/handler/middleware"
	"hostel-admin/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers collects every API handler the router mounts.
type Handlers struct {
	fx.In

	Auth         *api.AuthHandler
	User         *api.UserHandler
	Room         *api.RoomHandler
	Guest        *api.GuestHandler
	Company      *api.CompanyHandler
	Reservation  *api.ReservationHandler
	Payment      *api.PaymentHandler
	Housekeeping *api.HousekeepingHandler
	Calendar     *api.CalendarHandler
	Report       *api.ReportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	middleware.SetupValidator()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, am *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	recepcion := am.RequireRoleAtLeast(user.RoleRecepcion)
	admin := am.RequireRoleAtLeast(user.RoleAdmin)
	cleaning := am.RequireAnyRole(user.RoleHousekeeping, user.RoleRecepcion, user.RoleAdmin, user.RoleSuperadmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(am.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		secured := apiGroup.Group("")
		secured.Use(am.RequireAuth())

		addRoutes(secured.Group("/users"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.User.Create, Mw: []gin.HandlerFunc{am.RequireRoleAtLeast(user.RoleSuperadmin)}},
		})

		addRoutes(secured.Group("/rooms"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Room.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Room.Create, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Room.ChangeStatus, Mw: []gin.HandlerFunc{admin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Archive, Mw: []gin.HandlerFunc{admin}},
		})

		desk := secured.Group("")
		desk.Use(recepcion)

		addRoutes(desk.Group("/guests"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Guest.Search},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Guest.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Guest.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Guest.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Guest.Deactivate},
		})

		addRoutes(desk.Group("/companies"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Company.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Company.Get},
			{Method: http.MethodPost, Path: "", Handler: h.Company.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Company.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Company.Deactivate},
		})

		addRoutes(desk, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Reservation.Availability},
		})

		addRoutes(desk.Group("/reservations"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
			{Method: http.MethodGet, Path: "/:id/voucher", Handler: h.Reservation.Voucher},
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.ChangeStatus},
			{Method: http.MethodPost, Path: "/:id/voucher/send", Handler: h.Reservation.SendVoucher},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{admin}},
		})

		addRoutes(desk.Group("/payments"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Payment.List},
			{Method: http.MethodPost, Path: "", Handler: h.Payment.Record},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Payment.Delete},
		})

		housekeeping := secured.Group("/housekeeping")
		housekeeping.Use(cleaning)
		addRoutes(housekeeping, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Housekeeping.Board},
			{Method: http.MethodPut, Path: "/:room_id/:date", Handler: h.Housekeeping.Upsert},
		})

		addRoutes(secured.Group("/calendar"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Calendar.Get},
		})

		reports := secured.Group("/reports")
		reports.Use(admin)
		addRoutes(reports, []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Report.Dashboard},
			{Method: http.MethodGet, Path: "/dashboard.xlsx", Handler: h.Report.Export},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
