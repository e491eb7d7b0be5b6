package routes

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	_ "repair_intake/docs"
	"repair_intake/internal/adapter/http/handlers"
	"repair_intake/internal/adapter/http/middleware"
	"repair_intake/internal/app"
	"repair_intake/internal/infrastructure/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathRequests = "/requests"
	PathSlots    = "/slots"
	PathCalendar = "/calendar"
	PathReports  = "/reports"
	PathServices = "/services"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API on the configured port until ctx is cancelled, then
// drains in-flight requests.
func Run(ctx context.Context, a *app.App, submitLimiter *middleware.RateLimiter) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.HTTPPort,
		Handler:           NewRouter(a, submitLimiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.Logger.Info().Msg("shutting down http server")
	return srv.Shutdown(shutdownCtx)
}

type routeHandlers struct {
	requests *handlers.RepairRequestHandler
	payments *handlers.RepairPaymentHandler
	slots    *handlers.AppointmentSlotHandler
	calendar *handlers.CalendarHandler
	catalog  *handlers.ServiceCatalogHandler
	reports  *handlers.ReportHandler
}

// NewRouter builds the HTTP API. submitLimiter may be nil to disable rate
// limiting of submissions.
func NewRouter(a *app.App, submitLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, a)

	metrics.Register()
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := routeHandlers{
		requests: handlers.NewRepairRequestHandler(a.Requests),
		payments: handlers.NewRepairPaymentHandler(a.Payments, a.Config.Payment.Mock, a.Logger),
		slots:    handlers.NewAppointmentSlotHandler(a.Slots),
		calendar: handlers.NewCalendarHandler(a.Calendar),
		catalog:  handlers.NewServiceCatalogHandler(a.Catalog),
		reports:  handlers.NewReportHandler(a.Reports),
	}

	submit := []gin.HandlerFunc{}
	if submitLimiter != nil {
		submit = append(submit, submitLimiter.Middleware())
	}

	staff := staffAuth(a)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h)
	addRequestRoutes(v1, h, submit)
	addSlotRoutes(v1, h, staff)
	addReportRoutes(v1, h, staff)

	return router
}

func setMiddlewares(router *gin.Engine, a *app.App) {
	router.Use(middleware.Recovery(a.Logger))
	router.Use(middleware.RequestLogger(a.Logger))
	router.Use(cors.New(corsConfig(a.Config.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", handlers.HeaderIdempotencyKey},
		ExposeHeaders: []string{"Content-Disposition"},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// staffAuth guards staff-only routes with HTTP basic auth. Without
// configured credentials the routes stay open.
func staffAuth(a *app.App) gin.HandlerFunc {
	if !a.Config.StaffAuthEnabled() {
		a.Logger.Warn().Msg("CALENDAR_USERNAME not set; staff routes are unauthenticated")
		return func(c *gin.Context) { c.Next() }
	}
	return gin.BasicAuth(gin.Accounts{a.Config.CalendarUsername: a.Config.CalendarPassword})
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addCatalogRoutes(rg *gin.RouterGroup, h routeHandlers) {
	rg.GET(PathServices, h.catalog.ListServices)
}
