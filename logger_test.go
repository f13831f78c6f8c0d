package mandelbrot

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	var out bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer SetLogger(nil)

	buf := make([]byte, BufferSize(4, 4))
	if err := Fill(-2.1, 0.6, -1.25, 1.25, buf, 4, 4); err != nil {
		t.Fatal(err)
	}

	log := out.String()
	if !strings.Contains(log, "raster filled") {
		t.Errorf("missing render record in %q", log)
	}
	if !strings.Contains(log, "inside=4") {
		t.Errorf("missing inside count in %q", log)
	}
}
