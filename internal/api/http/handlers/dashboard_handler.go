package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-console/internal/service"
)

// DashboardHandler serves the aggregate snapshot.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: dashboardService}
}

// Snapshot GET /api/dashboard.
func (h *DashboardHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.service.Snapshot(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(snap)
}
