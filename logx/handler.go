// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored according to the terminal
// capabilities of its output. It only shows records at or above
// [UserLevel] (or its own level, if set through [NewHandler]).
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string

	mu *sync.Mutex
}

// NewHandler returns a new [Handler] writing to the given writer.
// If level is nil, [UserLevel] is consulted for every record.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	return &Handler{out: termenv.NewOutput(w, opts...), level: level, mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to one
// writing to [os.Stderr] through a [Handler] gated by [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, nil)))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	if h.level != nil {
		return l >= h.level.Level()
	}
	return l >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	if nh.group != "" {
		nh.group += "."
	}
	nh.group += name
	return &nh
}

func (h *Handler) writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", h.out.String(key).Faint(), a.Value)
}

// levelString returns the colored name of the given level.
func (h *Handler) levelString(l slog.Level) string {
	s := h.out.String(l.String())
	switch {
	case l >= slog.LevelError:
		s = s.Foreground(h.out.Color("1")).Bold()
	case l >= slog.LevelWarn:
		s = s.Foreground(h.out.Color("3"))
	case l >= slog.LevelInfo:
		s = s.Foreground(h.out.Color("4"))
	default:
		s = s.Foreground(h.out.Color("8"))
	}
	return s.String()
}
