package services_test

import (
	"fmt"
	"math"
	"testing"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() order.ShipmentRequest {
	return order.ShipmentRequest{
		Sender: order.Contact{
			Name: "Budi Santoso", Phone: "0812", Address: "Jl. Merdeka 10",
			Province: "DKI Jakarta", City: "Jakarta",
		},
		Receiver: order.Contact{
			Name: "Siti Aminah", Phone: "0822", Address: "Jl. Thamrin 1",
			Province: "DKI Jakarta", City: "Jakarta",
		},
		Item: order.Item{
			Name: "Buku", Category: "Dokumen",
			Weight: "0", Length: "10", Width: "10", Height: "10",
		},
		Service: order.Reguler,
		Payment: order.COD,
	}
}

func historyFor(t *testing.T, sender string, n int) []*order.Order {
	t.Helper()
	req := baseRequest()
	req.Sender.Name = sender
	cost := order.CostBreakdown{Base: 10000, Total: 10000}

	out := make([]*order.Order, 0, n)
	for i := range n {
		o, err := order.NewOrder(order.Number(fmt.Sprintf("SWG-%d", 1000+i)), req, cost, time.Now())
		require.NoError(t, err)
		out = append(out, o)
	}
	return out
}

func TestPriceCalculator_Quote(t *testing.T) {
	calc := services.NewPriceCalculator()
	table := rates.Default()

	t.Run("zero weight Reguler same city costs the base rate", func(t *testing.T) {
		b := calc.Quote(baseRequest(), table, nil)

		assert.Equal(t, table.BaseRate, b.Total)
		assert.Equal(t, order.CostBreakdown{Base: table.BaseRate, Total: table.BaseRate}, b)
	})

	t.Run("weight fee is truncated", func(t *testing.T) {
		req := baseRequest()
		req.Item.Weight = "1.2345"

		b := calc.Quote(req, table, nil)

		// 1.2345 * 5000 = 6172.5
		assert.EqualValues(t, 6172, b.WeightFee)
		assert.EqualValues(t, 16172, b.Total)
	})

	t.Run("unparsable and negative weight count as zero", func(t *testing.T) {
		for _, w := range []string{"", "berat", "-3"} {
			req := baseRequest()
			req.Item.Weight = w

			assert.EqualValues(t, 0, calc.Quote(req, table, nil).WeightFee, w)
		}
	})

	t.Run("service fees", func(t *testing.T) {
		tests := map[order.Service]int64{
			order.Reguler: 0,
			order.Express: 25000,
			order.SameDay: 50000,
		}
		for service, want := range tests {
			req := baseRequest()
			req.Service = service

			assert.EqualValues(t, want, calc.Quote(req, table, nil).ServiceFee, service.String())
		}
	})

	t.Run("Jakarta to Bandung crosses provinces", func(t *testing.T) {
		req := baseRequest()
		req.Receiver.Province = "Jawa Barat"
		req.Receiver.City = "Bandung"

		assert.EqualValues(t, 15000, calc.Quote(req, table, nil).LocationFee)
	})

	t.Run("different city same province", func(t *testing.T) {
		req := baseRequest()
		req.Sender.Province, req.Sender.City = "Jawa Barat", "Bogor"
		req.Receiver.Province, req.Receiver.City = "jawa barat", "Bandung"

		assert.EqualValues(t, 5000, calc.Quote(req, table, nil).LocationFee)
	})

	t.Run("city comparison ignores case", func(t *testing.T) {
		req := baseRequest()
		req.Receiver.City = "JAKARTA"

		assert.EqualValues(t, 0, calc.Quote(req, table, nil).LocationFee)
	})

	t.Run("no location fee without both cities", func(t *testing.T) {
		req := baseRequest()
		req.Receiver.Province = "Bali"
		req.Receiver.City = ""

		assert.EqualValues(t, 0, calc.Quote(req, table, nil).LocationFee)
	})

	t.Run("total adds every component", func(t *testing.T) {
		req := baseRequest()
		req.Item.Weight = "2"
		req.Service = order.Express
		req.Receiver.Province, req.Receiver.City = "Jawa Barat", "Bandung"

		b := calc.Quote(req, table, nil)

		assert.EqualValues(t, 10000+10000+25000+15000, b.Total)
		require.NoError(t, b.Validate())
	})
}

func TestPriceCalculator_Loyalty(t *testing.T) {
	calc := services.NewPriceCalculator()
	table := rates.Default()

	tests := []struct {
		prior    int
		discount bool
	}{
		{0, false},
		{3, false},
		{4, true},
		{5, false},
		{9, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d prior orders", tt.prior), func(t *testing.T) {
			history := historyFor(t, "Budi Santoso", tt.prior)

			b := calc.Quote(baseRequest(), table, history)

			if !tt.discount {
				assert.Equal(t, 0, b.DiscountPercent)
				assert.EqualValues(t, 0, b.DiscountAmount)
				assert.Equal(t, b.Subtotal(), b.Total)
				return
			}
			assert.Equal(t, 10, b.DiscountPercent)
			assert.EqualValues(t, 1000, b.DiscountAmount)
			assert.EqualValues(t, 9000, b.Total)
		})
	}

	t.Run("sender match ignores case and whitespace", func(t *testing.T) {
		history := historyFor(t, "budi santoso", 4)
		req := baseRequest()
		req.Sender.Name = "  BUDI SANTOSO "

		assert.True(t, calc.Quote(req, table, history).HasDiscount())
	})

	t.Run("other senders do not count", func(t *testing.T) {
		history := historyFor(t, "Andi Pratama", 4)

		assert.False(t, calc.Quote(baseRequest(), table, history).HasDiscount())
	})

	t.Run("blank sender never gets a discount", func(t *testing.T) {
		req := baseRequest()
		req.Sender.Name = "   "

		assert.False(t, calc.Quote(req, table, historyFor(t, "Budi Santoso", 4)).HasDiscount())
	})

	t.Run("discount is truncated", func(t *testing.T) {
		req := baseRequest()
		req.Item.Weight = "0.3" // 1500

		tbl := table
		tbl.LoyaltyDiscountPercent = 7

		b := calc.Quote(req, tbl, historyFor(t, "Budi Santoso", 4))

		// 11500 * 7 / 100 = 805
		assert.EqualValues(t, 805, b.DiscountAmount)
		assert.EqualValues(t, 10695, b.Total)

		req.Item.Weight = "0.33" // 1650
		b = calc.Quote(req, tbl, historyFor(t, "Budi Santoso", 4))

		// 11650 * 7 / 100 = 815.5
		assert.EqualValues(t, 815, b.DiscountAmount)
	})

	t.Run("percent is clamped", func(t *testing.T) {
		tbl := table
		tbl.LoyaltyDiscountPercent = 150

		b := calc.Quote(baseRequest(), tbl, historyFor(t, "Budi Santoso", 4))

		assert.Equal(t, 100, b.DiscountPercent)
		assert.EqualValues(t, 0, b.Total)
	})
}

func TestPriceCalculator_Quote_ExtremeInput(t *testing.T) {
	calc := services.NewPriceCalculator()

	t.Run("huge weights saturate the weight fee", func(t *testing.T) {
		for _, weight := range []string{"1900000000000000", "99999999999999999999"} {
			t.Run(weight, func(t *testing.T) {
				req := baseRequest()
				req.Item.Weight = weight

				b := calc.Quote(req, rates.Default(), nil)

				assert.Equal(t, kernel.MaxMoney, b.WeightFee)
				assert.Positive(t, int64(b.Total))
				assert.Equal(t, b.Subtotal()-b.DiscountAmount, b.Total)
				require.NoError(t, b.Validate())
			})
		}
	})

	t.Run("out of range rates are bounded", func(t *testing.T) {
		tbl := rates.Table{
			BaseRate:   math.MaxInt64,
			RatePerKg:  -5000,
			ExpressFee: math.MaxInt64,
		}
		req := baseRequest()
		req.Item.Weight = "3"
		req.Service = order.Express

		b := calc.Quote(req, tbl, nil)

		assert.Equal(t, kernel.MaxMoney, b.Base)
		assert.Zero(t, b.WeightFee)
		assert.Equal(t, kernel.MaxMoney, b.ServiceFee)
		assert.Equal(t, 2*kernel.MaxMoney, b.Total)
	})
}

func TestCountSenderOrders(t *testing.T) {
	history := append(historyFor(t, "Budi", 2), historyFor(t, "Andi", 3)...)

	assert.Equal(t, 2, services.CountSenderOrders("budi", history))
	assert.Equal(t, 3, services.CountSenderOrders("ANDI ", history))
	assert.Equal(t, 0, services.CountSenderOrders("", history))
	assert.Equal(t, 0, services.CountSenderOrders("Budi", nil))
}
