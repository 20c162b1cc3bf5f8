package medical

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/medical"
)

type Handler struct {
	svc *medical.Service
}

func NewHandler(svc *medical.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/medical-history", h.ListSummaries)
}

// RegisterDoctorRoutes registers the doctor-only summary authoring route.
func (h *Handler) RegisterDoctorRoutes(r *gin.RouterGroup) {
	r.POST("/medical-history", h.CreateSummary)
}

func (h *Handler) ListSummaries(c *gin.Context) {
	summaries, err := h.svc.List(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summaries))
}

func (h *Handler) CreateSummary(c *gin.Context) {
	var req model.CreateVisitSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	summary, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(summary))
}
