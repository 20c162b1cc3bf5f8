package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/middleware"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/appointment"
	"github.com/docspot/docspot-api/internal/service/doctor"
)

type Handler struct {
	appointments *appointment.Service
	doctors      *doctor.Service
}

func NewHandler(appointments *appointment.Service, doctors *doctor.Service) *Handler {
	return &Handler{
		appointments: appointments,
		doctors:      doctors,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
}

// Dashboard picks the variant purely from the session user's role, with
// a fallback payload for roles the build does not know.
func (h *Handler) Dashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, handler.NewErrorResponse("authentication required"))
		return
	}

	switch user.Role {
	case model.RolePatient:
		h.patientDashboard(c, user)
	case model.RoleDoctor:
		h.doctorDashboard(c, user)
	case model.RoleAdmin:
		h.adminDashboard(c, user)
	default:
		c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
			"variant": "unknown",
			"message": "Unknown user role. Please contact support.",
		}))
	}
}

func (h *Handler) patientDashboard(c *gin.Context, user model.User) {
	upcoming, err := h.appointments.Upcoming(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"variant":              "patient",
		"user":                 user,
		"upcomingAppointments": upcoming,
	}))
}

func (h *Handler) doctorDashboard(c *gin.Context, user model.User) {
	today, err := h.appointments.Today(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	schedule, err := h.doctors.Schedule(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"variant":            "doctor",
		"user":               user,
		"todaysAppointments": today,
		"schedule":           schedule,
	}))
}

func (h *Handler) adminDashboard(c *gin.Context, user model.User) {
	pending, err := h.doctors.PendingApprovals(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"variant":          "admin",
		"user":             user,
		"pendingApprovals": pending,
		"pendingCount":     len(pending),
	}))
}
