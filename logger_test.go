package staticvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_RegionLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	reg := NewRegistry(RegistryConfig{Logger: logger})

	r := MustAlloc[uint32]("logged", 1, 0, WithRegistry(reg))
	v, err := r.Acquire()
	require.NoError(t, err)
	_, err = r.Acquire()
	require.Error(t, err)
	v.Push(1)
	requireViolation(t, ErrFull, func() { v.Push(2) })
	v.Release()

	_, err = Alloc[uint32]("logged", 1, 0, WithRegistry(reg))
	require.Error(t, err)

	out := buf.String()
	for _, msg := range []string{
		"region declared",
		"region acquired",
		"acquire refused",
		"bounds violation",
		"region released",
		"declare failed",
	} {
		assert.Contains(t, out, msg)
	}
	assert.Contains(t, out, "region=logged")
	assert.Contains(t, out, "backing=heap")
	assert.Contains(t, out, "op=push")
}

func TestLogger_WithRegion(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil)).WithRegion("dma")

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"region":"dma"`)
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.NotPanics(t, func() {
		logger.LogLeak("r")
		logger.LogViolation(&BoundsError{Region: "r", Op: "at", Kind: ErrOutOfRange})
	})
}
