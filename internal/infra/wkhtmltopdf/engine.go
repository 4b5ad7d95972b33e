// Package wkhtmltopdf renders HTML to PDF by shelling out to the
// wkhtmltopdf command-line tool, handing the document over through
// uniquely named scratch files.
package wkhtmltopdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/rs/xid"

	"md2pdf/internal/config"
)

// RenderError reports a failed wkhtmltopdf run. Stderr carries the tool's
// captured standard-error output when the tool ran and exited non-zero.
type RenderError struct {
	Stderr string
	Err    error
}

func (e *RenderError) Error() string {
	if e.Stderr != "" {
		return "wkhtmltopdf failed: " + e.Stderr
	}
	return "wkhtmltopdf failed: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }

// IOError reports a scratch-artifact failure around the subprocess run.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsRenderError reports whether err stems from a failed tool invocation.
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

// IsIOError reports whether err stems from scratch-artifact handling.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}

// Engine invokes wkhtmltopdf. The zero value is not usable; construct via New.
type Engine struct {
	cfg     config.PDFConfig
	scratch string
}

// New creates an Engine from the service configuration. Scratch artifacts
// land in pdf.scratch_dir, defaulting to the OS temp directory.
func New(cfg config.Config) *Engine {
	scratch := cfg.PDF.ScratchDir
	if scratch == "" {
		scratch = os.TempDir()
	}
	return &Engine{cfg: cfg.PDF, scratch: scratch}
}

// Render writes html to a scratch file, runs wkhtmltopdf over it with the
// fixed print-layout argument set, and returns the generated PDF bytes.
// Both scratch artifacts are removed best-effort whatever the outcome.
// A configured pdf.timeout_secs bounds the run through ctx.
func (e *Engine) Render(ctx context.Context, html string) ([]byte, error) {
	if t := e.cfg.Timeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	id := xid.New().String()
	srcPath := filepath.Join(e.scratch, id+".html")
	outPath := filepath.Join(e.scratch, id+".pdf")

	if err := os.WriteFile(srcPath, []byte(html), 0o600); err != nil {
		return nil, &IOError{Op: "write source artifact", Path: srcPath, Err: err}
	}
	defer func() {
		// Cleanup never affects the request outcome.
		_ = os.Remove(srcPath)
		_ = os.Remove(outPath)
	}()

	cmd := exec.CommandContext(ctx, e.cfg.Binary, e.args(srcPath, outPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &RenderError{Stderr: stderr.String(), Err: err}
		}
		// Tool never ran (missing binary, context deadline, ...).
		return nil, &RenderError{Err: err}
	}

	pdf, err := os.ReadFile(outPath)
	if err != nil {
		return nil, &IOError{Op: "read result artifact", Path: outPath, Err: err}
	}
	return pdf, nil
}

// Probe checks that the configured tool is present and executable by
// running its version flag. Used by both the startup check and /health.
func (e *Engine) Probe(ctx context.Context) error {
	if err := exec.CommandContext(ctx, e.cfg.Binary, "--version").Run(); err != nil {
		return fmt.Errorf("probe %s: %w", e.cfg.Binary, err)
	}
	return nil
}

func (e *Engine) args(srcPath, outPath string) []string {
	return []string{
		"--page-size", e.cfg.PageSize,
		"--dpi", strconv.Itoa(e.cfg.DPI),
		"--margin-top", e.cfg.MarginTop,
		"--margin-bottom", e.cfg.MarginBottom,
		"--disable-smart-shrinking",
		"--enable-local-file-access",
		"--zoom", strconv.FormatFloat(e.cfg.Zoom, 'f', 1, 64),
		"--print-media-type",
		"--no-background",
		srcPath,
		outPath,
	}
}
