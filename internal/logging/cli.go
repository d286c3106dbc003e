package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// CLIHandler is a slog.Handler that writes one short, coloured line per
// record. Colour is dropped automatically when the writer is not a terminal.
type CLIHandler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  slog.Leveler
	prefix string
	attrs  []slog.Attr

	debug lipgloss.Style
	info  lipgloss.Style
	warn  lipgloss.Style
	err   lipgloss.Style
}

func NewCLIHandler(w io.Writer, level slog.Leveler) *CLIHandler {
	r := lipgloss.NewRenderer(w)
	return &CLIHandler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  level,
		debug:  r.NewStyle().Foreground(lipgloss.Color("8")),
		info:   r.NewStyle().Foreground(lipgloss.Color("10")),
		warn:   r.NewStyle().Foreground(lipgloss.Color("11")),
		err:    r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (h *CLIHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *CLIHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	if r.Level >= slog.LevelWarn {
		msg = strings.ToLower(r.Level.String()) + ": " + msg
	}
	if h.prefix != "" {
		msg = "[" + h.prefix + "] " + msg
	}

	var attrs []string
	for _, a := range h.attrs {
		attrs = append(attrs, formatAttr(a))
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, formatAttr(a))
		return true
	})
	if len(attrs) > 0 {
		msg = msg + ": " + strings.Join(attrs, " ")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.writer, h.style(r.Level).Render(msg))
	return err
}

func (h *CLIHandler) style(level slog.Level) lipgloss.Style {
	switch {
	case level >= slog.LevelError:
		return h.err
	case level >= slog.LevelWarn:
		return h.warn
	case level >= slog.LevelInfo:
		return h.info
	default:
		return h.debug
	}
}

func formatAttr(a slog.Attr) string {
	return fmt.Sprintf("%s=%v", a.Key, a.Value.Resolve())
}

func (h *CLIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *CLIHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.prefix = name
	return &clone
}

func NewCLILogger(level string) *slog.Logger {
	return slog.New(NewCLIHandler(os.Stderr, ParseLogLevel(level)))
}

func SetDefaultCLILogger(level string) {
	slog.SetDefault(NewCLILogger(level))
}

// ParseLogLevel converts a string log level to slog.Level.
// Defaults to slog.LevelInfo for unrecognized strings.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
