package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler implements slog.Handler for TTY-optimized text output.
// It provides colorized output when the writer supports it.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string

	useColor   bool
	timeColor  *color.Color
	debugColor *color.Color
	infoColor  *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	keyColor   *color.Color
}

// NewHandler creates a new TTY-optimized text handler.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}

	if SupportsColor(out) {
		h.useColor = true
		h.timeColor = color.New(color.FgHiBlack)
		h.debugColor = color.New(color.FgMagenta)
		h.infoColor = color.New(color.FgGreen)
		h.warnColor = color.New(color.FgYellow)
		h.errorColor = color.New(color.FgRed, color.Bold)
		h.keyColor = color.New(color.FgCyan)
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes one line per record: time, level, message, then key=value
// pairs. Records from a batch run are written whole under the mutex.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	if !r.Time.IsZero() {
		b.WriteString(h.paint(h.timeColor, r.Time.Format(time.TimeOnly)))
		b.WriteByte(' ')
	}

	level := r.Level.String()
	switch {
	case r.Level >= slog.LevelError:
		level = h.paint(h.errorColor, level)
	case r.Level >= slog.LevelWarn:
		level = h.paint(h.warnColor, level)
	case r.Level >= slog.LevelInfo:
		level = h.paint(h.infoColor, level)
	default:
		level = h.paint(h.debugColor, level)
	}
	fmt.Fprintf(&b, "%-5s %s", level, r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&b, a, "")
	}
	prefix := h.groupPrefix()
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&b, a, prefix)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *Handler) appendAttr(b *strings.Builder, a slog.Attr, prefix string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := prefix + a.Key

	var value string
	switch a.Value.Kind() {
	case slog.KindString:
		value = a.Value.String()
		if value == "" || strings.ContainsAny(value, " \t\n\"=") {
			value = fmt.Sprintf("%q", value)
		}
	case slog.KindTime:
		value = a.Value.Time().Format(time.RFC3339)
	default:
		value = fmt.Sprint(a.Value.Any())
	}

	fmt.Fprintf(b, " %s=%s", h.paint(h.keyColor, key), value)
}

func (h *Handler) paint(c *color.Color, s string) string {
	if !h.useColor || c == nil {
		return s
	}
	return c.Sprint(s)
}

// WithAttrs returns a new Handler with the given attributes, qualified by
// the groups opened so far.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	prefix := h.groupPrefix()
	newH.attrs = make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newH.attrs, h.attrs)
	for _, a := range attrs {
		newH.attrs = append(newH.attrs, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	return &newH
}

// WithGroup returns a new Handler with the given group name.
// Groups prefix the keys of later attributes: "page.path=...".
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.groups = make([]string, len(h.groups)+1)
	copy(newH.groups, h.groups)
	newH.groups[len(h.groups)] = name
	return &newH
}
