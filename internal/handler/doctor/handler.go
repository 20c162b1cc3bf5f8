package doctor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/doctor"
)

type Handler struct {
	svc *doctor.Service
}

func NewHandler(svc *doctor.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the routes every authenticated role can see.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/find-doctors")
	{
		g.GET("", h.SearchDoctors)
		g.GET("/specializations", h.ListSpecializations)
	}
}

// RegisterDoctorRoutes registers the doctor-only schedule routes.
func (h *Handler) RegisterDoctorRoutes(r *gin.RouterGroup) {
	g := r.Group("/schedule")
	{
		g.GET("", h.GetSchedule)
		g.PUT("", h.SaveSchedule)
	}
}

// RegisterAdminRoutes registers the admin review queue.
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	g := r.Group("/admin/approvals")
	{
		g.GET("", h.ListApprovals)
		g.POST("/:id/approve", h.Approve)
		g.POST("/:id/reject", h.Reject)
	}
}

func (h *Handler) SearchDoctors(c *gin.Context) {
	doctors, err := h.svc.Search(c.Request.Context(), c.Query("q"), c.Query("specialization"))
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(doctors))
}

func (h *Handler) ListSpecializations(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Specializations(c.Request.Context())))
}

func (h *Handler) GetSchedule(c *gin.Context) {
	schedule, err := h.svc.Schedule(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(schedule))
}

func (h *Handler) SaveSchedule(c *gin.Context) {
	var schedule model.DoctorSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.svc.SaveSchedule(c.Request.Context(), schedule); err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessMessage("schedule saved", nil))
}

func (h *Handler) ListApprovals(c *gin.Context) {
	pending, err := h.svc.PendingApprovals(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(pending))
}

func (h *Handler) Approve(c *gin.Context) {
	if err := h.svc.Approve(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("application not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessMessage("doctor approved", nil))
}

func (h *Handler) Reject(c *gin.Context) {
	if err := h.svc.Reject(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("application not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessMessage("doctor rejected", nil))
}
