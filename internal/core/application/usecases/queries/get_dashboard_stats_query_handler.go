package queries

import (
	"context"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// GetDashboardStatsQueryHandler aggregates the admin dashboard. Revenue is
// the sum of all order amounts, cancelled orders included.
type GetDashboardStatsQueryHandler struct {
	readers DashboardReaderFactory
}

func NewGetDashboardStatsQueryHandler(readers DashboardReaderFactory) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{readers: readers}
}

func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	reader := h.readers.Create()
	all, err := reader.OrderRepository().GetAll(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	w, err := reader.WalletRepository().Get(ctx)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		TotalOrders: len(all),
		Balance:     w.Balance(),
	}
	for _, o := range all {
		resp.Statuses.add(o.Status())
		resp.TotalRevenue += o.Amount()
	}
	resp.Services = serviceStats(all)

	recent := filterOrders(all, query.Search())
	if len(recent) > RecentOrdersLimit {
		recent = recent[:RecentOrdersLimit]
	}
	resp.RecentOrders = newOrderViews(recent)

	return resp, nil
}

func serviceStats(all []*order.Order) []ServiceStat {
	stats := make([]ServiceStat, 0, len(order.AllServices()))
	for _, s := range order.AllServices() {
		stat := ServiceStat{Service: s.String(), Percent: decimal.Zero}
		var amount kernel.Money
		for _, o := range all {
			if o.Service() == s {
				stat.Count++
				amount += o.Amount()
			}
		}
		stat.Amount = amount
		if len(all) > 0 {
			stat.Percent = decimal.NewFromInt(int64(stat.Count) * 100).
				Div(decimal.NewFromInt(int64(len(all)))).
				Round(2)
		}
		stats = append(stats, stat)
	}
	return stats
}
