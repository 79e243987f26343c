package dieseldx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerDefaultDiscards(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	Logger().Debug("dieseldx: created fence", "initial", 0)
	assert.Contains(t, buf.String(), "created fence")

	SetLogger(nil)
	buf.Reset()
	Logger().Error("dropped")
	assert.Empty(t, buf.String())
}
