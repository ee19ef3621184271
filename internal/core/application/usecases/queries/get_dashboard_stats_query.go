package queries

import (
	"errors"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// RecentOrdersLimit is how many orders the dashboard lists.
const RecentOrdersLimit = 5

type GetDashboardStatsQuery struct {
	search string

	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery builds the admin dashboard query. search narrows
// only the recent orders list, the way the dashboard search box does.
func NewGetDashboardStatsQuery(search string) GetDashboardStatsQuery {
	return GetDashboardStatsQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

func (q GetDashboardStatsQuery) Search() string {
	return q.search
}

// ServiceStat summarizes the orders of one service tier. Percent is the share
// of all orders, rounded to two decimals.
type ServiceStat struct {
	Service string
	Count   int
	Amount  kernel.Money
	Percent decimal.Decimal
}

type GetDashboardStatsQueryResponse struct {
	TotalOrders  int
	Statuses     StatusCounts
	TotalRevenue kernel.Money
	Services     []ServiceStat
	Balance      kernel.Money
	RecentOrders []OrderView
}
