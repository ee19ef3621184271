package queries

import (
	"errors"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/guard"
)

var ErrGetShippingReportQueryIsNotConstructed = errors.New(
	"GetShippingReportQuery must be created via NewGetShippingReportQuery constructor",
)

type GetShippingReportQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShippingReportQuery() GetShippingReportQuery {
	return GetShippingReportQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShippingReportQuery) Validate() error {
	return q.guard.Validate(ErrGetShippingReportQueryIsNotConstructed)
}

// ReportRow is one line of the shipping report. No is 1-based.
type ReportRow struct {
	No        int
	CreatedAt time.Time
	OrderNo   string
	Receiver  string
	Service   string
	Status    string
	Amount    kernel.Money
}

// ReportSummary counts every order but leaves cancelled ones out of Revenue.
type ReportSummary struct {
	TotalOrders int
	Revenue     kernel.Money
	Statuses    StatusCounts
}

type GetShippingReportQueryResponse struct {
	GeneratedAt time.Time
	Summary     ReportSummary
	Rows        []ReportRow
}
