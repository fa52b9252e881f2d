package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	want := [][]string{
		{"level=DEBUG", "msg=dbg", "a=1"},
		{"level=INFO", "msg=inf", "b=2"},
		{"level=WARN", "msg=wrn", "c=3"},
		{"level=ERROR", "msg=err", "d=4"},
	}
	for i, subs := range want {
		for _, s := range subs {
			require.Contains(t, lines[i], s)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

	log.With("user", "alice").Info(context.Background(), "entry saved", "id", "abc")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "entry saved", rec["msg"])
	require.Equal(t, "alice", rec["user"])
	require.Equal(t, "abc", rec["id"])
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestNewSlog_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := newSlog(&buf, true, "WARN")
	require.NoError(t, err)

	log.Info(context.Background(), "skipped")
	log.Warn(context.Background(), "kept", "n", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "kept", rec["msg"])
	require.Equal(t, "WARN", rec["level"])

	_, err = newSlog(&buf, false, "chatty")
	require.Error(t, err)
}
