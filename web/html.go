package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter stops writing after the first error so components can be written without per-line checks
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// url writes a sanitized, escaped URL for use inside an attribute
func (h *htmlWriter) url(s string) {
	h.text(string(templ.URL(s)))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err == nil {
		h.err = c.Render(ctx, h.w)
	}
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		fn(ctx, h)
		return h.err
	})
}
