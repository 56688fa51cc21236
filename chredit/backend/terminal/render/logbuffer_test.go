package render

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWraps(t *testing.T) {
	lb := NewLogBuffer(3)
	for i, msg := range []string{"a", "b", "c", "d"} {
		lb.Add(LogEntry{Time: time.Unix(int64(i), 0), Level: slog.LevelInfo, Message: msg})
	}

	recent := lb.GetRecent(0, slog.LevelDebug)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Message)
	assert.Equal(t, "b", recent[2].Message)

	lb.Clear()
	assert.Empty(t, lb.GetRecent(0, slog.LevelDebug))
}

func TestLogBufferFiltersLevel(t *testing.T) {
	lb := NewLogBuffer(10)
	lb.Add(LogEntry{Level: slog.LevelDebug, Message: "debug"})
	lb.Add(LogEntry{Level: slog.LevelWarn, Message: "warn"})
	lb.Add(LogEntry{Level: slog.LevelInfo, Message: "info"})

	recent := lb.GetRecent(5, slog.LevelInfo)
	require.Len(t, recent, 2)
	assert.Equal(t, "info", recent[0].Message)
	assert.Equal(t, "warn", recent[1].Message)

	assert.Len(t, lb.GetRecent(1, slog.LevelDebug), 1)
}

func TestLogBufferHandler(t *testing.T) {
	lb := NewLogBuffer(10)
	var level slog.LevelVar
	level.Set(slog.LevelInfo)
	logger := slog.New(NewLogBufferHandler(lb, &level))

	logger.Debug("hidden")
	logger.With("path", "data.chr").WithGroup("tile").Info("Saved", "index", 3)

	recent := lb.GetRecent(0, slog.LevelDebug)
	require.Len(t, recent, 1)
	assert.Equal(t, "Saved path=data.chr tile.index=3", recent[0].Message)

	level.Set(slog.LevelDebug)
	logger.Debug("shown")
	assert.Len(t, lb.GetRecent(0, slog.LevelDebug), 2)
}

func TestFormatLogEntry(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2024, 1, 1, 12, 30, 45, 0, time.Local),
		Level:   slog.LevelWarn,
		Message: "careful",
	}
	formatted := FormatLogEntry(entry)

	assert.True(t, strings.HasPrefix(formatted, "12:30:45 [WRN]"))
	assert.True(t, strings.HasSuffix(formatted, "careful"))
}
