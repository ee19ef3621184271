package queries_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"swiftgo/internal/core/application/usecases/queries"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(views []queries.OrderView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.OrderNo)
	}
	return out
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	e := newEnv()
	e.add(t, seed{number: "SWG-1001", receiver: "Siti Aminah", amount: 10000, at: day})
	e.add(t, seed{number: "SWG-2002", receiver: "Joko Widodo", amount: 20000, at: day.Add(time.Hour)})
	e.add(t, seed{number: "SWG-3003", receiver: "Siti Nurhaliza", amount: 30000, at: day.Add(2 * time.Hour)})
	handler := queries.NewListOrdersQueryHandler(e.orders())

	testCases := []struct {
		search string
		want   []string
	}{
		{"", []string{"SWG-3003", "SWG-2002", "SWG-1001"}},
		{"siti", []string{"SWG-3003", "SWG-1001"}},
		{"swg-20", []string{"SWG-2002"}},
		{"  JOKO ", []string{"SWG-2002"}},
		{"nobody", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.search, func(t *testing.T) {
			views, err := handler.Handle(t.Context(), queries.NewListOrdersQuery(tc.search))

			require.NoError(t, err)
			assert.Equal(t, tc.want, numbers(views))
		})
	}
}

func TestListOrdersQueryHandler_NotConstructed(t *testing.T) {
	handler := queries.NewListOrdersQueryHandler(newEnv().orders())

	_, err := handler.Handle(t.Context(), queries.ListOrdersQuery{})

	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	e := newEnv()
	e.add(t, seed{number: "SWG-1234", receiver: "Siti", service: order.SameDay, amount: 75000, at: day})
	handler := queries.NewGetOrderQueryHandler(e.orders())

	for _, number := range []string{"SWG-1234", "swg-1234", "SW-RESI-1234"} {
		query, err := queries.NewGetOrderQuery(number)
		require.NoError(t, err)

		view, err := handler.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, "SWG-1234", view.OrderNo)
		assert.Equal(t, "SW-RESI-1234", view.ReceiptNo)
		assert.Equal(t, "Same Day", view.Service)
		assert.Equal(t, "COD", view.Payment)
		assert.Equal(t, "Pending", view.Status)
		assert.Equal(t, kernel.Money(75000), view.Amount)
		assert.True(t, decimal.NewFromInt(1000).Equal(view.Volume))
	}

	query, err := queries.NewGetOrderQuery("SWG-9999")
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = queries.NewGetOrderQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	_, err = queries.NewGetOrderQuery("ORDER-1")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

type recorder struct {
	numbers []string
	err     error
}

func (r *recorder) RecordTracking(_ context.Context, number string) error {
	r.numbers = append(r.numbers, number)
	return r.err
}

func TestTrackOrderQueryHandler_Handle(t *testing.T) {
	testCases := []struct {
		status order.Status
		step   int
		label  string
	}{
		{order.Pending, 1, "Menunggu Penjemputan"},
		{order.Proses, 3, "Sedang Diproses"},
		{order.Selesai, 4, "Sampai di Tujuan"},
		{order.Dibatalkan, 0, "Pengiriman Dibatalkan"},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			e := newEnv()
			e.add(t, seed{number: "SWG-4821", receiver: "Siti", status: tc.status, amount: 10000, at: day})
			rec := &recorder{}
			handler := queries.NewTrackOrderQueryHandler(e.orders(), rec)
			query, err := queries.NewTrackOrderQuery(" sw-resi-4821 ")
			require.NoError(t, err)

			resp, err := handler.Handle(t.Context(), query)

			require.NoError(t, err)
			assert.Equal(t, "SWG-4821", resp.Order.OrderNo)
			assert.Equal(t, tc.step, resp.Step)
			assert.Equal(t, tc.label, resp.Label)
			assert.Equal(t, queries.RouteOutCity, resp.Route)
			assert.Equal(t, []string{"SW-RESI-4821"}, rec.numbers)
		})
	}
}

func TestTrackOrderQueryHandler_NotFound(t *testing.T) {
	e := newEnv()
	rec := &recorder{}
	handler := queries.NewTrackOrderQueryHandler(e.orders(), rec)

	for _, number := range []string{"SWG-0001", "RESI-1", "hello"} {
		query, err := queries.NewTrackOrderQuery(number)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	}
	assert.Empty(t, rec.numbers)
}

func TestTrackOrderQueryHandler_RecorderFailureIsIgnored(t *testing.T) {
	e := newEnv()
	e.add(t, seed{number: "SWG-4821", receiver: "Siti", amount: 10000, at: day})
	handler := queries.NewTrackOrderQueryHandler(e.orders(), &recorder{err: errors.New("cache down")})
	query, err := queries.NewTrackOrderQuery("SWG-4821")
	require.NoError(t, err)

	resp, err := handler.Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, "SWG-4821", resp.Order.OrderNo)
}

func TestQuoteQueryHandler_Handle(t *testing.T) {
	e := newEnv()
	for i, n := range []order.Number{"SWG-1001", "SWG-1002", "SWG-1003", "SWG-1004"} {
		e.add(t, seed{number: n, sender: "Budi Santoso", receiver: "Siti", amount: 10000, at: day.Add(time.Duration(i) * time.Hour)})
	}
	handler := queries.NewQuoteQueryHandler(e.quotes())

	req := order.ShipmentRequest{
		Sender:   order.Contact{Name: "budi santoso", Province: "DKI Jakarta", City: "Jakarta"},
		Receiver: order.Contact{Province: "Jawa Barat", City: "Bandung"},
		Item:     order.Item{Weight: "2"},
		Service:  order.Express,
	}

	breakdown, err := handler.Handle(t.Context(), queries.NewQuoteQuery(req))

	require.NoError(t, err)
	assert.Equal(t, kernel.Money(60000), breakdown.Subtotal())
	assert.Equal(t, 10, breakdown.DiscountPercent)
	assert.Equal(t, kernel.Money(54000), breakdown.Total)

	all, err := e.factory.Create().OrderRepository().GetAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestGetDashboardStatsQueryHandler_Handle(t *testing.T) {
	e := newEnv()
	e.add(t, seed{number: "SWG-1001", receiver: "A", service: order.Reguler, status: order.Selesai, amount: 10000, at: day})
	e.add(t, seed{number: "SWG-1002", receiver: "B", service: order.Express, status: order.Proses, amount: 20000, at: day})
	e.add(t, seed{number: "SWG-1003", receiver: "C", service: order.Express, status: order.Dibatalkan, amount: 30000, at: day})
	e.add(t, seed{number: "SWG-1004", receiver: "D", service: order.Reguler, amount: 40000, at: day})
	e.add(t, seed{number: "SWG-1005", receiver: "E", service: order.Reguler, amount: 50000, at: day})
	e.add(t, seed{number: "SWG-1006", receiver: "F", service: order.Reguler, amount: 60000, at: day})

	w, err := e.factory.Create().WalletRepository().Get(t.Context())
	require.NoError(t, err)
	_, err = w.TopUp(250000, "Top up", day)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().WalletRepository().Save(t.Context(), w))

	handler := queries.NewGetDashboardStatsQueryHandler(e.dashboard())

	stats, err := handler.Handle(t.Context(), queries.NewGetDashboardStatsQuery(""))

	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalOrders)
	assert.Equal(t, queries.StatusCounts{Pending: 3, Proses: 1, Selesai: 1, Dibatalkan: 1}, stats.Statuses)
	assert.Equal(t, kernel.Money(210000), stats.TotalRevenue)
	assert.Equal(t, kernel.Money(250000), stats.Balance)
	assert.Equal(t, []string{"SWG-1006", "SWG-1005", "SWG-1004", "SWG-1003", "SWG-1002"}, numbers(stats.RecentOrders))

	require.Len(t, stats.Services, 3)
	assert.Equal(t, "Reguler", stats.Services[0].Service)
	assert.Equal(t, 4, stats.Services[0].Count)
	assert.Equal(t, kernel.Money(160000), stats.Services[0].Amount)
	assert.Equal(t, "66.67", stats.Services[0].Percent.StringFixed(2))
	assert.Equal(t, "Same Day", stats.Services[2].Service)
	assert.Zero(t, stats.Services[2].Count)
	assert.True(t, stats.Services[2].Percent.IsZero())

	filtered, err := handler.Handle(t.Context(), queries.NewGetDashboardStatsQuery("1002"))
	require.NoError(t, err)
	assert.Equal(t, []string{"SWG-1002"}, numbers(filtered.RecentOrders))
	assert.Equal(t, 6, filtered.TotalOrders)

	padded, err := handler.Handle(t.Context(), queries.NewGetDashboardStatsQuery("  swg-1002 "))
	require.NoError(t, err)
	assert.Equal(t, []string{"SWG-1002"}, numbers(padded.RecentOrders))

	blank, err := handler.Handle(t.Context(), queries.NewGetDashboardStatsQuery("   "))
	require.NoError(t, err)
	assert.Len(t, blank.RecentOrders, queries.RecentOrdersLimit)
}

func TestGetDashboardStatsQueryHandler_Empty(t *testing.T) {
	handler := queries.NewGetDashboardStatsQueryHandler(newEnv().dashboard())

	stats, err := handler.Handle(t.Context(), queries.NewGetDashboardStatsQuery(""))

	require.NoError(t, err)
	assert.Zero(t, stats.TotalOrders)
	assert.Empty(t, stats.RecentOrders)
	for _, s := range stats.Services {
		assert.True(t, s.Percent.IsZero())
	}
}

func TestGetShippingReportQueryHandler_Handle(t *testing.T) {
	e := newEnv()
	e.add(t, seed{number: "SWG-1001", receiver: "Siti, Aminah", status: order.Selesai, amount: 10000, at: day.Add(2 * time.Hour)})
	e.add(t, seed{number: "SWG-1002", receiver: "Joko", status: order.Dibatalkan, amount: 20000, at: day})
	e.add(t, seed{number: "SWG-1003", receiver: "Rina", service: order.Express, amount: 30000, at: day.Add(time.Hour)})
	handler := queries.NewGetShippingReportQueryHandler(e.orders())

	report, err := handler.Handle(t.Context(), queries.NewGetShippingReportQuery())

	require.NoError(t, err)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, 3, report.Summary.TotalOrders)
	assert.Equal(t, kernel.Money(40000), report.Summary.Revenue)
	assert.Equal(t, queries.StatusCounts{Pending: 1, Selesai: 1, Dibatalkan: 1}, report.Summary.Statuses)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, "SWG-1001", report.Rows[0].OrderNo)
	assert.Equal(t, "SWG-1003", report.Rows[1].OrderNo)
	assert.Equal(t, "SWG-1002", report.Rows[2].OrderNo)
	assert.Equal(t, 3, report.Rows[2].No)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "No,Tanggal,Resi,Nama,Layanan,Status,Biaya", lines[0])
	assert.Equal(t, `1,2024-05-17,SWG-1001,"Siti, Aminah",Reguler,Selesai,10000`, lines[1])
	assert.Equal(t, "2,2024-05-17,SWG-1003,Rina,Express,Pending,30000", lines[2])
}

func TestSimpleReadQueries(t *testing.T) {
	e := newEnv()
	ctx := t.Context()
	uow := e.factory.Create()

	table := rates.Table{BaseRate: 9000, RatePerKg: 4000, ExpressFee: 20000, SameDayFee: 45000, LoyaltyDiscountPercent: 15}
	require.NoError(t, uow.RateRepository().Save(ctx, table))
	require.NoError(t, uow.TrackingRepository().Save(ctx, tracking.NewRecent([]string{"SWG-2", "SWG-1"})))
	admin := profile.Profile{Name: "Rina", Username: "rina", Role: profile.Admin}
	require.NoError(t, uow.ProfileRepository().Save(ctx, admin))
	w, err := uow.WalletRepository().Get(ctx)
	require.NoError(t, err)
	_, err = w.TopUp(5000, "Top up", day)
	require.NoError(t, err)
	require.NoError(t, uow.WalletRepository().Save(ctx, w))

	rateHandler := queries.NewGetRatesQueryHandler(
		funcFactory[queries.RateReader](func() queries.RateReader { return e.factory.Create() }))
	gotTable, err := rateHandler.Handle(ctx, queries.NewGetRatesQuery())
	require.NoError(t, err)
	assert.Equal(t, table, gotTable)

	trackingHandler := queries.NewGetRecentTrackingQueryHandler(
		funcFactory[queries.TrackingReader](func() queries.TrackingReader { return e.factory.Create() }))
	recent, err := trackingHandler.Handle(ctx, queries.NewGetRecentTrackingQuery())
	require.NoError(t, err)
	assert.Equal(t, []string{"SWG-2", "SWG-1"}, recent)

	profileHandler := queries.NewGetProfileQueryHandler(
		funcFactory[queries.ProfileReader](func() queries.ProfileReader { return e.factory.Create() }))
	gotProfile, err := profileHandler.Handle(ctx, queries.NewGetProfileQuery())
	require.NoError(t, err)
	assert.Equal(t, admin, gotProfile)

	walletHandler := queries.NewGetWalletQueryHandler(
		funcFactory[queries.WalletReader](func() queries.WalletReader { return e.factory.Create() }))
	gotWallet, err := walletHandler.Handle(ctx, queries.NewGetWalletQuery())
	require.NoError(t, err)
	assert.Equal(t, kernel.Money(5000), gotWallet.Balance)
	require.Len(t, gotWallet.History, 1)
	assert.Equal(t, "Top up", gotWallet.History[0].Description)

	_, err = walletHandler.Handle(ctx, queries.GetWalletQuery{})
	require.ErrorIs(t, err, queries.ErrGetWalletQueryIsNotConstructed)
}
