package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docspot/docspot-api/internal/handler"
	"github.com/docspot/docspot-api/internal/model"
	"github.com/docspot/docspot-api/internal/service/auth"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	g := r.Group("/auth")
	{
		g.POST("/register", h.Register)
		g.POST("/login", h.Login)
		g.POST("/logout", h.Logout)
		g.GET("/session", h.Session)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, handler.NewErrorResponse(result.Message))
			return
		}
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessMessage(result.Message, result.User))
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, handler.NewErrorResponse(result.Message))
			return
		}
		handler.HTTPError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessMessage(result.Message, result.User))
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessMessage("logged out successfully", nil))
}

// Session reports the current authentication state; anonymous is not an
// error here, the router's guards handle access control.
func (h *Handler) Session(c *gin.Context) {
	user, err := h.svc.CurrentUser(c.Request.Context())
	if err != nil {
		handler.HTTPError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"isAuthenticated": user != nil,
		"user":            user,
	}))
}
