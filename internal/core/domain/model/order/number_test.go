package order_test

import (
	"testing"

	"swiftgo/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	t.Run("four digits", func(t *testing.T) {
		for range 200 {
			n := order.GenerateNumber(order.ShortNumberDigits)
			require.NoError(t, n.Validate())
			assert.Len(t, n.Digits(), 4)
			assert.NotEqual(t, byte('0'), n.Digits()[0])
		}
	})

	t.Run("widened", func(t *testing.T) {
		n := order.GenerateNumber(order.LongNumberDigits)
		assert.Len(t, n.Digits(), 8)
	})

	t.Run("non positive width falls back to four", func(t *testing.T) {
		assert.Len(t, order.GenerateNumber(0).Digits(), 4)
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want order.Number
	}{
		{"SWG-1234", "SWG-1234"},
		{"swg-1234", "SWG-1234"},
		{"  SWG-98765432 ", "SWG-98765432"},
		{"SW-RESI-1234", "SWG-1234"},
		{"sw-resi-5555", "SWG-5555"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := order.ParseNumber(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "SWG-", "SWG-12a4", "1234", "SW-RESI-", "XYZ-1234"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := order.ParseNumber(bad)
			require.Error(t, err)
		})
	}
}

func TestNumber_ReceiptAlias(t *testing.T) {
	n := order.Number("SWG-4821")

	assert.Equal(t, "4821", n.Digits())
	assert.Equal(t, "SW-RESI-4821", n.ReceiptAlias())
	assert.Equal(t, "SWG-4821", n.String())
	require.Error(t, order.Number("4821").Validate())
}
