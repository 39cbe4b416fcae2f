package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// diagHandler writes diagnostics as single lines, prefixed by their level
type diagHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	attrs  []slog.Attr
	colors map[slog.Level]*color.Color
}

func newDiagHandler(w io.Writer, colored bool) *diagHandler {
	colors := map[slog.Level]*color.Color{
		slog.LevelDebug: color.New(color.FgHiBlack),
		slog.LevelInfo:  color.New(color.FgCyan),
		slog.LevelWarn:  color.New(color.FgYellow, color.Bold),
		slog.LevelError: color.New(color.FgRed, color.Bold),
	}
	for _, c := range colors {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &diagHandler{
		mu:     &sync.Mutex{},
		w:      w,
		colors: colors,
	}
}

func useColor(cfg *Config, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (h *diagHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *diagHandler) Handle(_ context.Context, r slog.Record) error {
	var buf strings.Builder
	buf.WriteString(h.label(r.Level))
	buf.WriteString(": ")
	buf.WriteString(r.Message)
	write := func(a slog.Attr) bool {
		buf.WriteString(" ")
		buf.WriteString(a.Key)
		buf.WriteString("=")
		buf.WriteString(a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	r.Attrs(write)
	buf.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, buf.String())
	return err
}

func (h *diagHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := *h
	res.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &res
}

func (h *diagHandler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *diagHandler) label(l slog.Level) string {
	name := strings.ToLower(l.String())
	if l == slog.LevelWarn {
		name = "warning"
	}
	c, ok := h.colors[l]
	if !ok {
		return name
	}
	return c.Sprint(name)
}
