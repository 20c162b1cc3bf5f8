package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/middleware"
	"github.com/docspot/docspot-api/internal/model"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

// DoctorHandler also carries the doctor-only and admin-only subtrees.
type DoctorHandler interface {
	Handler
	RegisterDoctorRoutes(*gin.RouterGroup)
	RegisterAdminRoutes(*gin.RouterGroup)
}

// MedicalHandler splits its read route from the doctor-only write route.
type MedicalHandler interface {
	Handler
	RegisterDoctorRoutes(*gin.RouterGroup)
}

// PatientHandler lives entirely under the doctor-only subtree.
type PatientHandler interface {
	RegisterDoctorRoutes(*gin.RouterGroup)
}

type Router struct {
	engine       *gin.Engine
	auth         *middleware.SessionAuth
	authH        Handler
	dashboardH   Handler
	doctorH      DoctorHandler
	appointmentH Handler
	medicalH     MedicalHandler
	patientH     PatientHandler
	profileH     Handler
	h            *handler.Handler
	metrics      *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type RouterConfig struct {
	RateLimitRPS  float64
	RateBurst     int
	CORSConfig    middleware.CORSConfig
	MetricsPrefix string
}

func NewRouter(
	auth *middleware.SessionAuth,
	authH Handler,
	dashboardH Handler,
	doctorH DoctorHandler,
	appointmentH Handler,
	medicalH MedicalHandler,
	patientH PatientHandler,
	profileH Handler,
	h *handler.Handler,
	config RouterConfig,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:       engine,
		auth:         auth,
		authH:        authH,
		dashboardH:   dashboardH,
		doctorH:      doctorH,
		appointmentH: appointmentH,
		medicalH:     medicalH,
		patientH:     patientH,
		profileH:     profileH,
		h:            h,
		metrics:      initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		r.metricsMiddleware(),
	)
	engine.Use(middleware.CORS(config.CORSConfig))

	if config.RateLimitRPS > 0 {
		rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RPS:   config.RateLimitRPS,
			Burst: config.RateBurst,
		})
		engine.Use(rateLimiter.RateLimit())
	}

	return r
}

// Setup wires the URL surface: public auth routes, the role-gated page
// routes, and a JSON not-found fallback for everything else.
func (r *Router) Setup() {
	root := r.engine.Group("")

	r.setupHealthCheck(root)

	// Landing page forwards to the dashboard; the session guard there
	// bounces anonymous visitors on to /auth.
	r.engine.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/dashboard")
	})

	// Login page: authenticated users are sent back to their dashboard.
	r.engine.GET("/auth", r.auth.RedirectAuthenticated(), func(c *gin.Context) {
		c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"page": "auth"}))
	})

	r.authH.RegisterRoutes(root)

	protected := r.engine.Group("")
	protected.Use(r.auth.RequireSession())
	r.dashboardH.RegisterRoutes(protected)
	r.doctorH.RegisterRoutes(protected)
	r.appointmentH.RegisterRoutes(protected)
	r.medicalH.RegisterRoutes(protected)
	r.profileH.RegisterRoutes(protected)

	doctorOnly := protected.Group("")
	doctorOnly.Use(r.auth.RequireRole(model.RoleDoctor))
	r.doctorH.RegisterDoctorRoutes(doctorOnly)
	r.medicalH.RegisterDoctorRoutes(doctorOnly)
	r.patientH.RegisterDoctorRoutes(doctorOnly)

	adminOnly := protected.Group("")
	adminOnly.Use(r.auth.RequireRole(model.RoleAdmin))
	r.doctorH.RegisterAdminRoutes(adminOnly)

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("page not found"))
	})
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
