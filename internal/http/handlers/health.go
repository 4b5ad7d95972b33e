package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"md2pdf/internal/domain"
	"md2pdf/internal/infra/logging"
	"md2pdf/internal/version"
)

// HandleHealth reports service health by probing the rendering dependency.
// A failed probe is the designed degraded response, not an error path.
func (svc *ConvertService) HandleHealth(c *fiber.Ctx) error {
	if err := svc.Prober.Probe(c.Context()); err != nil {
		logging.Warn("Health probe failed", "error", err.Error())
		return c.Status(fiber.StatusServiceUnavailable).JSON(domain.HealthResponse{
			Status:  fmt.Sprintf("unhealthy - %s not found", svc.Config.PDF.Binary),
			Version: version.Version,
		})
	}
	return c.JSON(domain.HealthResponse{
		Status:  "healthy",
		Version: version.Version,
	})
}
