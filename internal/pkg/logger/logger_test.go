package logger_test

import (
	"testing"

	"swiftgo/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("builds json logger", func(t *testing.T) {
		l, sync, err := logger.New(logger.Options{Level: "info", Format: "json"})

		require.NoError(t, err)
		require.NotNil(t, l)
		require.NotNil(t, sync)
		l.Info("order created", "order_no", "SWG-1234")
	})

	t.Run("builds console logger", func(t *testing.T) {
		l, _, err := logger.New(logger.Options{Level: "DEBUG", Format: "console"})

		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, _, err := logger.New(logger.Options{Level: "loud"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loud")
	})
}

func TestNop(t *testing.T) {
	l := logger.Nop()

	require.NotNil(t, l)
	l.Error("discarded")
}
