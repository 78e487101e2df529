package status

import (
	"github.com/gin-gonic/gin"

	"safety-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/status", h.status)
}

func (h *Handler) status(c *gin.Context) {
	respond.OK(c, h.Svc.Status())
}
