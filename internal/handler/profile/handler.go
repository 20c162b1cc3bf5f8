package profile

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/profile"
)

type Handler struct {
	svc *profile.Service
}

func NewHandler(svc *profile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/profile")
	{
		g.GET("", h.GetBundle)
		g.PUT("", h.SaveProfile)
		g.PUT("/notifications", h.SaveNotifications)
		g.PUT("/privacy", h.SavePrivacy)
	}
}

func (h *Handler) GetBundle(c *gin.Context) {
	bundle, err := h.svc.Bundle(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(bundle))
}

func (h *Handler) SaveProfile(c *gin.Context) {
	h.save(c, h.svc.SaveProfile)
}

func (h *Handler) SaveNotifications(c *gin.Context) {
	h.save(c, h.svc.SaveNotifications)
}

func (h *Handler) SavePrivacy(c *gin.Context) {
	h.save(c, h.svc.SavePrivacy)
}

func (h *Handler) save(c *gin.Context, put func(ctx context.Context, doc model.ProfileDocument) error) {
	var doc model.ProfileDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := put(c.Request.Context(), doc); err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessMessage("settings saved", nil))
}
