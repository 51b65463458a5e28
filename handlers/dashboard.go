package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eletrigo/services/dashboard"
)

// DashboardHandler serves the role-scoped ledger projections.
type DashboardHandler struct {
	Dashboards dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{Dashboards: svc}
}

func (h *DashboardHandler) ClientViewHandler(c *gin.Context) {
	view, err := h.Dashboards.ClientView(c.Param("clientId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) ElectricianViewHandler(c *gin.Context) {
	view, err := h.Dashboards.ElectricianView(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *DashboardHandler) AdminViewHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Dashboards.AdminView())
}
