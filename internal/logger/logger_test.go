package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext(t *testing.T) {
	t.Run("uses logger stored in ctx", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		l := zap.New(core).Sugar()

		ctx := WithLogger(context.Background(), l)
		FromContext(ctx).Infow("simulation finished", "cycles", 10)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		require.Equal(t, "simulation finished", entry.Message)
		require.Equal(t, int64(10), entry.ContextMap()["cycles"])
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
	})
}
