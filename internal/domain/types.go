package domain

import "context"

// Renderer turns an HTML document into PDF bytes. It is the injected
// rendering capability: the stock implementation shells out to wkhtmltopdf,
// but anything that accepts HTML and produces PDF bytes can stand in.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// ConvertRequest is the body of a POST /convert call.
type ConvertRequest struct {
	Markdown string `json:"markdown"`
}

// HealthResponse is the body of a GET /health reply.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
