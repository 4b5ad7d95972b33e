package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"

	"md2pdf/internal/config"
)

type fakeRenderer struct {
	pdf   []byte
	err   error
	calls int32
}

func (f *fakeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.pdf, f.err
}

type fakeProber struct{ err error }

func (f *fakeProber) Probe(ctx context.Context) error { return f.err }

func testApp(renderer *fakeRenderer, prober *fakeProber) *fiber.App {
	cfg := config.Default()
	svc := NewConvertService(cfg, renderer, prober)
	app := fiber.New()
	app.Post("/convert", svc.HandleConvert)
	app.Get("/health", svc.HandleHealth)
	return app
}

func TestHandleConvert_Success(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4 fake")}
	app := testApp(renderer, &fakeProber{})

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(`{"markdown":"# Hello"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="document.pdf"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(body), "%PDF") {
		t.Fatalf("expected PDF magic header in body")
	}
}

func TestHandleConvert_EmptyMarkdownStillConverts(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4 empty doc")}
	app := testApp(renderer, &fakeProber{})

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(`{"markdown":""}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for empty markdown, got %d", resp.StatusCode)
	}
	if renderer.calls != 1 {
		t.Fatalf("expected renderer invoked once, got %d", renderer.calls)
	}
}

func TestHandleConvert_MalformedBodySkipsRenderer(t *testing.T) {
	renderer := &fakeRenderer{pdf: []byte("%PDF-1.4")}
	app := testApp(renderer, &fakeProber{})

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(`{"markdown": not json`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", resp.StatusCode)
	}
	if renderer.calls != 0 {
		t.Fatalf("renderer must not run for malformed input, ran %d times", renderer.calls)
	}
}

func TestHandleConvert_RenderFailureIsOpaque500(t *testing.T) {
	renderer := &fakeRenderer{err: errors.New("tool exploded: /etc/secrets not readable")}
	app := testApp(renderer, &fakeProber{})

	req := httptest.NewRequest("POST", "/convert", strings.NewReader(`{"markdown":"# x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if len(body) != 0 {
		t.Fatalf("expected empty body on conversion failure, got %q", string(body))
	}
}

func TestHandleHealth_Healthy(t *testing.T) {
	app := testApp(&fakeRenderer{}, &fakeProber{})

	resp, _ := app.Test(httptest.NewRequest("GET", "/health", nil))
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"status":"healthy"`) {
		t.Fatalf("unexpected health body: %q", string(body))
	}
	if !strings.Contains(string(body), `"version"`) {
		t.Fatalf("expected version in health body")
	}
}

func TestHandleHealth_DependencyMissing(t *testing.T) {
	app := testApp(&fakeRenderer{}, &fakeProber{err: errors.New("exec: not found")})

	resp, _ := app.Test(httptest.NewRequest("GET", "/health", nil))
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "unhealthy - wkhtmltopdf not found") {
		t.Fatalf("expected dependency named in status, got %q", string(body))
	}
	if !strings.Contains(string(body), `"version"`) {
		t.Fatalf("expected version even when unhealthy")
	}
}
