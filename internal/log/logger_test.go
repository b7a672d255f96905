/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package log

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestPrettyHandlerOutput(t *testing.T) {
	var sb strings.Builder
	h := &prettyTextHandler{level: slog.LevelDebug, w: &sb}
	l := slog.New(h).With(slog.String("component", "test"))
	l.Info("hello", slog.Int("n", 3), slog.Float64("gap", 67.5))
	out := sb.String()
	for _, want := range []string{"INF", "hello", "component=test", "n=3", "gap=67.5"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output must be one line terminated by newline")
	}
}

func TestPrettyHandlerGroups(t *testing.T) {
	var sb strings.Builder
	var h slog.Handler = &prettyTextHandler{level: slog.LevelDebug, w: &sb}
	h = h.WithGroup("ui")
	if err := h.Handle(context.Background(), record("msg", slog.String("k", "v"))); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(sb.String(), "ui.k=v") {
		t.Fatalf("group prefix missing: %q", sb.String())
	}
}

func TestPrettyHandlerLevelGate(t *testing.T) {
	h := &prettyTextHandler{level: slog.LevelWarn}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("info must be filtered at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("error must pass at warn level")
	}
}

func TestMultiFanOut(t *testing.T) {
	var a, b strings.Builder
	m := &multi{hs: []slog.Handler{
		&prettyTextHandler{level: slog.LevelDebug, w: &a},
		&prettyTextHandler{level: slog.LevelDebug, w: &b},
	}}
	if err := m.Handle(context.Background(), record("fan", slog.Int("i", 1))); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if !strings.Contains(a.String(), "fan") || !strings.Contains(b.String(), "fan") {
		t.Fatalf("record not fanned out: a=%q b=%q", a.String(), b.String())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("WSP_LOG_LEVEL", "debug")
	t.Setenv("WSP_LOG_FORMAT", "json")
	opts := FromEnv()
	if opts.Level != "debug" || opts.Format != "json" {
		t.Fatalf("env overrides not applied: %+v", opts)
	}
}

func record(msg string, attrs ...slog.Attr) slog.Record {
	r := slog.NewRecord(time.Now(), slog.LevelInfo, msg, 0)
	r.AddAttrs(attrs...)
	return r
}
