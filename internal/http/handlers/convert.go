package handlers

import (
	"github.com/gofiber/fiber/v2"

	"md2pdf/internal/config"
	"md2pdf/internal/domain"
	"md2pdf/internal/infra/logging"
	"md2pdf/internal/infra/wkhtmltopdf"
	"md2pdf/internal/markdown"
)

// ConvertService bundles configuration and dependencies for markdown
// conversion requests.
type ConvertService struct {
	Config   *config.Config
	Renderer domain.Renderer
	Prober   domain.Prober

	md *markdown.Renderer
}

// NewConvertService creates a new ConvertService instance.
func NewConvertService(cfg config.Config, renderer domain.Renderer, prober domain.Prober) *ConvertService {
	return &ConvertService{
		Config:   &cfg, // convert value to pointer
		Renderer: renderer,
		Prober:   prober,
		md:       markdown.New(markdown.Style(cfg.Markdown.Style)),
	}
}

// HandleConvert converts the posted markdown to a PDF attachment.
//
// Conversion failures are deliberately opaque to the client: the cause is
// logged server-side and the response is a bare 500 with no body.
func (svc *ConvertService) HandleConvert(c *fiber.Ctx) error {
	var req domain.ConvertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: expected JSON with a markdown field")
	}

	html := svc.md.Render(req.Markdown)

	pdf, err := svc.Renderer.Render(c.Context(), html)
	if err != nil {
		requestID := c.GetRespHeader("X-Request-Id")
		switch {
		case wkhtmltopdf.IsRenderError(err):
			logging.Error("PDF rendering failed", "error", err.Error(), "request_id", requestID)
		case wkhtmltopdf.IsIOError(err):
			logging.Error("PDF artifact I/O failed", "error", err.Error(), "request_id", requestID)
		default:
			logging.Error("PDF generation failed", "error", err.Error(), "request_id", requestID)
		}
		// Status only: the response body stays empty on purpose.
		return c.Status(fiber.StatusInternalServerError).Send(nil)
	}

	logging.Info("PDF generated", "bytes", len(pdf), "request_id", c.GetRespHeader("X-Request-Id"))

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="document.pdf"`)
	return c.Send(pdf)
}
