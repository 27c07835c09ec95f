package handler

import (
	"github.com/campuspulse/feedback-api/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	uc *usecase.DashboardUsecase
}

func NewDashboardHandler(uc *usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/dashboard-data", h.DashboardData)
}

// DashboardData - GET /dashboard-data. Always 200; internal failures
// degrade to empty stats inside the usecase.
func (h *DashboardHandler) DashboardData(c *fiber.Ctx) error {
	return c.JSON(h.uc.BuildStats())
}
