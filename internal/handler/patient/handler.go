package patient

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/service/patient"
)

type Handler struct {
	svc *patient.Service
}

func NewHandler(svc *patient.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterDoctorRoutes registers the doctor-only patient records routes.
func (h *Handler) RegisterDoctorRoutes(r *gin.RouterGroup) {
	g := r.Group("/patient-records")
	{
		g.GET("", h.SearchRecords)
		g.GET("/:id", h.GetRecord)
	}
}

func (h *Handler) SearchRecords(c *gin.Context) {
	records, err := h.svc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(records))
}

func (h *Handler) GetRecord(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			c.JSON(http.StatusNotFound, handler.NewErrorResponse("patient not found"))
			return
		}
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(record))
}
