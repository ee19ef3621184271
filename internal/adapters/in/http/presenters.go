package http

import (
	"swiftgo/internal/core/application/usecases/queries"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/wallet"
	"swiftgo/internal/generated/servers"
)

// shipmentFromBody keeps unknown service or payment names as Unknown. Order
// creation rejects them, quoting prices them without a service fee.
func shipmentFromBody(body servers.ShipmentRequest) order.ShipmentRequest {
	service, _ := order.ParseService(body.Service)
	payment, _ := order.ParsePayment(body.Payment)
	return order.ShipmentRequest{
		Sender:   contactFromBody(body.Sender),
		Receiver: contactFromBody(body.Receiver),
		Item: order.Item{
			Name:     body.Item.Name,
			Category: body.Item.Category,
			Weight:   body.Item.Weight,
			Length:   body.Item.Length,
			Width:    body.Item.Width,
			Height:   body.Item.Height,
		},
		Service: service,
		Payment: payment,
	}
}

func contactFromBody(c servers.Contact) order.Contact {
	return order.Contact{
		Name:     c.Name,
		Phone:    c.Phone,
		Address:  c.Address,
		Province: c.Province,
		City:     c.City,
		District: c.District,
		Postal:   c.Postal,
	}
}

func contactToResponse(c order.Contact) servers.Contact {
	return servers.Contact{
		Name:     c.Name,
		Phone:    c.Phone,
		Address:  c.Address,
		Province: c.Province,
		City:     c.City,
		District: c.District,
		Postal:   c.Postal,
	}
}

func costToResponse(c order.CostBreakdown) servers.CostBreakdown {
	return servers.CostBreakdown{
		Base:            c.Base.Int64(),
		WeightFee:       c.WeightFee.Int64(),
		ServiceFee:      c.ServiceFee.Int64(),
		LocationFee:     c.LocationFee.Int64(),
		DiscountPercent: c.DiscountPercent,
		DiscountAmount:  c.DiscountAmount.Int64(),
		Total:           c.Total.Int64(),
	}
}

func orderToResponse(v queries.OrderView) servers.Order {
	return servers.Order{
		OrderNo:   v.OrderNo,
		ReceiptNo: v.ReceiptNo,
		Sender:    contactToResponse(v.Sender),
		Receiver:  contactToResponse(v.Receiver),
		Item: servers.Item{
			Name:     v.Item.Name,
			Category: v.Item.Category,
			Weight:   v.Item.Weight,
			Length:   v.Item.Length,
			Width:    v.Item.Width,
			Height:   v.Item.Height,
		},
		Volume:    float32(v.Volume.InexactFloat64()),
		Service:   v.Service,
		Payment:   v.Payment,
		Status:    servers.OrderStatus(v.Status),
		Amount:    v.Amount.Int64(),
		Cost:      costToResponse(v.Cost),
		CreatedAt: v.CreatedAt,
	}
}

func ordersToResponse(views []queries.OrderView) []servers.Order {
	res := make([]servers.Order, len(views))
	for i, v := range views {
		res[i] = orderToResponse(v)
	}
	return res
}

func walletToResponse(balance kernel.Money, history []wallet.Entry) servers.Wallet {
	entries := make([]servers.WalletEntry, len(history))
	for i, e := range history {
		entries[i] = servers.WalletEntry{
			Id:          e.ID.Bytes(),
			Type:        servers.WalletEntryType(e.Type),
			Amount:      e.Amount.Int64(),
			Description: e.Description,
			Timestamp:   e.Timestamp,
		}
	}
	return servers.Wallet{Balance: balance.Int64(), History: entries}
}

func ratesToResponse(t rates.Table) servers.Rates {
	return servers.Rates{
		BaseRate:               t.BaseRate.Int64(),
		RatePerKg:              t.RatePerKg.Int64(),
		ExpressFee:             t.ExpressFee.Int64(),
		SameDayFee:             t.SameDayFee.Int64(),
		LoyaltyDiscountPercent: t.LoyaltyDiscountPercent,
	}
}

func profileToResponse(p profile.Profile) servers.Profile {
	role := string(p.Role)
	return servers.Profile{
		Name:     p.Name,
		Username: p.Username,
		Phone:    &p.Phone,
		Role:     &role,
	}
}

func statusesToResponse(c queries.StatusCounts) servers.StatusCounts {
	return servers.StatusCounts{
		Pending:    c.Pending,
		Proses:     c.Proses,
		Selesai:    c.Selesai,
		Dibatalkan: c.Dibatalkan,
	}
}

func dashboardToResponse(res queries.GetDashboardStatsQueryResponse) servers.Dashboard {
	services := make([]servers.ServiceStat, len(res.Services))
	for i, s := range res.Services {
		services[i] = servers.ServiceStat{
			Service: s.Service,
			Count:   s.Count,
			Amount:  s.Amount.Int64(),
			Percent: float32(s.Percent.InexactFloat64()),
		}
	}
	return servers.Dashboard{
		TotalOrders:  res.TotalOrders,
		Statuses:     statusesToResponse(res.Statuses),
		TotalRevenue: res.TotalRevenue.Int64(),
		Services:     services,
		Balance:      res.Balance.Int64(),
		RecentOrders: ordersToResponse(res.RecentOrders),
	}
}

func reportToResponse(res queries.GetShippingReportQueryResponse) servers.ShippingReport {
	rows := make([]servers.ReportRow, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = servers.ReportRow{
			No:        r.No,
			CreatedAt: r.CreatedAt,
			OrderNo:   r.OrderNo,
			Receiver:  r.Receiver,
			Service:   r.Service,
			Status:    r.Status,
			Amount:    r.Amount.Int64(),
		}
	}
	return servers.ShippingReport{
		GeneratedAt: res.GeneratedAt,
		Summary: servers.ReportSummary{
			TotalOrders: res.Summary.TotalOrders,
			Revenue:     res.Summary.Revenue.Int64(),
			Statuses:    statusesToResponse(res.Summary.Statuses),
		},
		Rows: rows,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
