package appointment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/appointment"
)

type Handler struct {
	svc *appointment.Service
}

func NewHandler(svc *appointment.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/appointments")
	{
		g.GET("", h.ListAppointments)
		g.POST("", h.BookAppointment)
		g.GET("/:id", h.GetAppointment)
		g.PATCH("/:id/status", h.UpdateStatus)
		g.PATCH("/:id/reschedule", h.Reschedule)
	}
}

// ListAppointments serves the full list or one of the derived views
// selected with ?view=upcoming|past|today.
func (h *Handler) ListAppointments(c *gin.Context) {
	var (
		appts []model.Appointment
		err   error
	)

	switch view := c.Query("view"); view {
	case "", "all":
		appts, err = h.svc.List(c.Request.Context())
	case "upcoming":
		appts, err = h.svc.Upcoming(c.Request.Context())
	case "past":
		appts, err = h.svc.Past(c.Request.Context())
	case "today":
		appts, err = h.svc.Today(c.Request.Context())
	default:
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid view"))
		return
	}
	if err != nil {
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(appts))
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	appt, err := h.svc.Book(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("doctor not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(appt))
}

func (h *Handler) GetAppointment(c *gin.Context) {
	appt, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("appointment not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appt))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("appointment not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("appointment updated", nil))
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req model.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.svc.Reschedule(c.Request.Context(), c.Param("id"), &req); err != nil {
		if errors.Is(err, appointment.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("appointment not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage("appointment rescheduled", nil))
}
