package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	auditservice "github.com/stayloop/leasebill/internal/audit/service"
	bookingdomain "github.com/stayloop/leasebill/internal/booking/domain"
	"github.com/stayloop/leasebill/internal/cache"
	chargedomain "github.com/stayloop/leasebill/internal/charge/domain"
	"github.com/stayloop/leasebill/internal/config"
	"github.com/stayloop/leasebill/internal/observability/logger"
	"github.com/stayloop/leasebill/internal/observability/metrics"
	scheduledomain "github.com/stayloop/leasebill/internal/schedule/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const paymentsCacheTTL = 30 * time.Second

// Server wires the HTTP handlers to the domain services.
type Server struct {
	db            *gorm.DB
	log           *zap.Logger
	cfg           config.Config
	calc          *chargedomain.Calculator
	bookingSvc    bookingdomain.Service
	scheduleSvc   scheduledomain.Service
	auditSvc      auditservice.Recorder
	paymentsCache cache.Cache[int64, []scheduledomain.RentPayment]
}

type ServerParam struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	Config      config.Config
	Calc        *chargedomain.Calculator
	BookingSvc  bookingdomain.Service
	ScheduleSvc scheduledomain.Service
	AuditSvc    auditservice.Recorder
}

func NewServer(p ServerParam) *Server {
	return &Server{
		db:            p.DB,
		log:           p.Log.Named("server"),
		cfg:           p.Config,
		calc:          p.Calc,
		bookingSvc:    p.BookingSvc,
		scheduleSvc:   p.ScheduleSvc,
		auditSvc:      p.AuditSvc,
		paymentsCache: cache.NewTTLCache[int64, []scheduledomain.RentPayment](),
	}
}

// NewEngine builds the gin engine with the shared middleware stack.
func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		Logger:    log.Named("http"),
		SkipPaths: []string{"/healthz"},
	}))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

// RegisterAPIRoutes mounts all API endpoints on the engine.
func (s *Server) RegisterAPIRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	{
		charges := api.Group("/charges")
		{
			charges.POST("/deposit/preview", s.PreviewDepositCharges)
			charges.POST("/rent/preview", s.PreviewMonthlyRentCharges)
			charges.POST("/validate", s.ValidateCharges)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", rateLimitByClientIP(newRateLimiter(30, time.Minute)), s.CreateBooking)
			bookings.GET("/:id", s.GetBooking)
			bookings.GET("/:id/charges", s.ListBookingCharges)
			bookings.GET("/:id/payments", s.ListBookingPayments)
		}
	}
}

// RunHTTP starts the listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, engine *gin.Engine, s *Server) {
	s.RegisterAPIRoutes(engine)

	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down http server")
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)
