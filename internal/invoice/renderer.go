package invoice

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"photonx/internal/domain"
)

// Renderer converts an HTML invoice into a PDF byte stream. Rendering is
// I/O heavy and may take seconds, so implementations must honor ctx.
type Renderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// PDFRenderer shells out to wkhtmltopdf, reading HTML on stdin and
// writing the PDF to stdout.
type PDFRenderer struct {
	Bin     string
	Timeout time.Duration
}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{Bin: "wkhtmltopdf", Timeout: 30 * time.Second}
}

func (r *PDFRenderer) Render(ctx context.Context, html []byte) ([]byte, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Bin, "--quiet", "--print-media-type", "-", "-")
	cmd.Stdin = bytes.NewReader(html)

	var out, errs bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errs

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRenderFailed, errs.String(), err)
	}
	return out.Bytes(), nil
}
