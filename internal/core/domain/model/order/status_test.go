package order_test

import (
	"fmt"
	"testing"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Proses))
	assert.Equal(t, 3, int(order.Selesai))
	assert.Equal(t, 4, int(order.Dibatalkan))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("rejects Unknown and out of range", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(9), order.Status(-1)} {
			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("known names ignore case and spaces", func(t *testing.T) {
		tests := map[string]order.Status{
			"Pending":    order.Pending,
			"proses":     order.Proses,
			" SELESAI ":  order.Selesai,
			"dibatalkan": order.Dibatalkan,
		}
		for raw, want := range tests {
			got, err := order.ParseStatus(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, want, got)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		got, err := order.ParseStatus("Shipped")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, got)
		assert.Contains(t, err.Error(), `"Shipped" is not a known status`)
	})

	t.Run("Unknown itself is not parseable", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")
		require.Error(t, err)
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending: {order.Proses, order.Dibatalkan},
		order.Proses:  {order.Selesai, order.Dibatalkan},
	}

	for _, from := range append([]order.Status{order.Unknown}, order.AllStatuses()...) {
		for _, to := range order.AllStatuses() {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				assert.Equal(t, want, from.CanTransitionTo(to))

				got, err := from.TransitionTo(to)
				if want {
					require.NoError(t, err)
					assert.Equal(t, to, got)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
				assert.Equal(t, from, got)
			})
		}
	}
}

func TestStatus_NamedTransitions(t *testing.T) {
	t.Run("Process", func(t *testing.T) {
		s, err := order.Pending.Process()
		require.NoError(t, err)
		assert.Equal(t, order.Proses, s)

		_, err = order.Selesai.Process()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Complete", func(t *testing.T) {
		s, err := order.Proses.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.Selesai, s)

		_, err = order.Pending.Complete()
		require.Error(t, err)
		assert.Equal(t, "invalid transition: from Pending to Selesai", err.Error())
	})

	t.Run("Cancel", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Proses} {
			s, err := from.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Dibatalkan, s)
		}

		_, err := order.Dibatalkan.Cancel()
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Proses.IsTerminal())
	assert.True(t, order.Selesai.IsTerminal())
	assert.True(t, order.Dibatalkan.IsTerminal())
}

func TestStatus_ValidateDelete(t *testing.T) {
	require.NoError(t, order.Selesai.ValidateDelete())

	for _, s := range []order.Status{order.Pending, order.Proses, order.Dibatalkan} {
		err := s.ValidateDelete()
		require.ErrorIs(t, err, errs.ErrOperationNotAllowed, s.String())
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Dibatalkan", order.Dibatalkan.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Tracking(t *testing.T) {
	tests := []struct {
		status order.Status
		step   int
		label  string
	}{
		{order.Pending, 1, "Menunggu Penjemputan"},
		{order.Proses, 3, "Sedang Diproses"},
		{order.Selesai, 4, "Sampai di Tujuan"},
		{order.Dibatalkan, 0, "Pengiriman Dibatalkan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.step, tt.status.TrackingStep(), tt.status.String())
		assert.Equal(t, tt.label, tt.status.TrackingLabel(), tt.status.String())
	}
}
