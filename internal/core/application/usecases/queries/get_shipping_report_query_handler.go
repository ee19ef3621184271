package queries

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"swiftgo/internal/core/domain/model/order"
)

// GetShippingReportQueryHandler builds the shipping recap: every order sorted
// by creation time, newest first, with a status summary.
type GetShippingReportQueryHandler struct {
	readers OrderReaderFactory
	now     func() time.Time
}

func NewGetShippingReportQueryHandler(readers OrderReaderFactory) GetShippingReportQueryHandler {
	return GetShippingReportQueryHandler{
		readers: readers,
		now:     time.Now,
	}
}

func (h GetShippingReportQueryHandler) Handle(
	ctx context.Context,
	query GetShippingReportQuery,
) (GetShippingReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShippingReportQueryResponse{}, err
	}

	all, err := h.readers.Create().OrderRepository().GetAll(ctx)
	if err != nil {
		return GetShippingReportQueryResponse{}, err
	}

	sorted := slices.Clone(all)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})

	resp := GetShippingReportQueryResponse{
		GeneratedAt: h.now().UTC(),
		Summary:     ReportSummary{TotalOrders: len(sorted)},
		Rows:        make([]ReportRow, 0, len(sorted)),
	}
	for i, o := range sorted {
		resp.Summary.Statuses.add(o.Status())
		if o.Status() != order.Dibatalkan {
			resp.Summary.Revenue += o.Amount()
		}
		resp.Rows = append(resp.Rows, ReportRow{
			No:        i + 1,
			CreatedAt: o.CreatedAt(),
			OrderNo:   o.Number().String(),
			Receiver:  o.Receiver().Name,
			Service:   o.Service().String(),
			Status:    o.Status().String(),
			Amount:    o.Amount(),
		})
	}

	return resp, nil
}

var reportHeader = []string{"No", "Tanggal", "Resi", "Nama", "Layanan", "Status", "Biaya"}

// WriteCSV writes the report rows with a header line. Amounts are plain
// rupiah integers so spreadsheets can sum them.
func (r GetShippingReportQueryResponse) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for _, row := range r.Rows {
		record := []string{
			strconv.Itoa(row.No),
			row.CreatedAt.Format(time.DateOnly),
			row.OrderNo,
			strings.TrimSpace(row.Receiver),
			row.Service,
			row.Status,
			strconv.FormatInt(row.Amount.Int64(), 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write report row %d: %w", row.No, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
