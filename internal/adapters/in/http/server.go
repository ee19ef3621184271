package http

import (
	"fmt"
	"net/http"
	"time"

	"swiftgo/internal/core/application/usecases/commands"
	"swiftgo/internal/core/application/usecases/queries"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Handlers groups the use cases the HTTP API exposes.
type Handlers struct {
	// Command handlers
	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	AddBalance        commands.AddBalanceCommandHandler
	DeductBalance     commands.DeductBalanceCommandHandler
	UpdateRates       commands.UpdateRatesCommandHandler
	SaveProfile       commands.SaveProfileCommandHandler

	// Query handlers
	Quote          queries.QuoteQueryHandler
	ListOrders     queries.ListOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	TrackOrder     queries.TrackOrderQueryHandler
	RecentTracking queries.GetRecentTrackingQueryHandler
	GetWallet      queries.GetWalletQueryHandler
	GetRates       queries.GetRatesQueryHandler
	GetProfile     queries.GetProfileQueryHandler
	Dashboard      queries.GetDashboardStatsQueryHandler
	ShippingReport queries.GetShippingReportQueryHandler
}

// Server implements servers.ServerInterface on top of the use cases.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// CreateQuote handles POST /api/v1/quotes.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var body servers.CreateQuoteJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cost, err := s.h.Quote.Handle(ctx.Request().Context(), queries.NewQuoteQuery(shipmentFromBody(body)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, costToResponse(cost))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	views, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(deref(params.Q)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ordersToResponse(views))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewCreateOrderCommand(shipmentFromBody(body))
	if err != nil {
		return err
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, orderToResponse(queries.NewOrderView(created)))
}

// GetOrder handles GET /api/v1/orders/{orderNo}.
func (s *Server) GetOrder(ctx echo.Context, orderNo string) error {
	query, err := queries.NewGetOrderQuery(orderNo)
	if err != nil {
		return err
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderToResponse(view))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderNo}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderNo string) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderNo, body.Status)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, orderToResponse(queries.NewOrderView(updated)))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderNo}.
func (s *Server) DeleteOrder(ctx echo.Context, orderNo string) error {
	cmd, err := commands.NewDeleteOrderCommand(orderNo)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// TrackOrder handles GET /api/v1/tracking/{number}.
func (s *Server) TrackOrder(ctx echo.Context, number string) error {
	query, err := queries.NewTrackOrderQuery(number)
	if err != nil {
		return err
	}

	res, err := s.h.TrackOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.Tracking{
		Order: orderToResponse(res.Order),
		Step:  res.Step,
		Label: res.Label,
		Route: res.Route,
	})
}

// GetRecentTracking handles GET /api/v1/tracking/recent.
func (s *Server) GetRecentTracking(ctx echo.Context) error {
	numbers, err := s.h.RecentTracking.Handle(ctx.Request().Context(), queries.NewGetRecentTrackingQuery())
	if err != nil {
		return err
	}
	if numbers == nil {
		numbers = []string{}
	}
	return ctx.JSON(http.StatusOK, servers.RecentTracking{Numbers: numbers})
}

// GetWallet handles GET /api/v1/wallet.
func (s *Server) GetWallet(ctx echo.Context) error {
	res, err := s.h.GetWallet.Handle(ctx.Request().Context(), queries.NewGetWalletQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, walletToResponse(res.Balance, res.History))
}

// TopUpWallet handles POST /api/v1/wallet/top-up.
func (s *Server) TopUpWallet(ctx echo.Context) error {
	var body servers.TopUpWalletJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewAddBalanceCommand(kernel.Money(body.Amount), deref(body.Description))
	if err != nil {
		return err
	}

	w, err := s.h.AddBalance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, walletToResponse(w.Balance(), w.History()))
}

// DeductWallet handles POST /api/v1/wallet/deduct.
func (s *Server) DeductWallet(ctx echo.Context) error {
	var body servers.DeductWalletJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewDeductBalanceCommand(kernel.Money(body.Amount), deref(body.Description))
	if err != nil {
		return err
	}

	w, err := s.h.DeductBalance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, walletToResponse(w.Balance(), w.History()))
}

// GetRates handles GET /api/v1/rates.
func (s *Server) GetRates(ctx echo.Context) error {
	table, err := s.h.GetRates.Handle(ctx.Request().Context(), queries.NewGetRatesQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ratesToResponse(table))
}

// UpdateRates handles PUT /api/v1/rates.
func (s *Server) UpdateRates(ctx echo.Context) error {
	var body servers.UpdateRatesJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewUpdateRatesCommand(rates.Table{
		BaseRate:               kernel.Money(body.BaseRate),
		RatePerKg:              kernel.Money(body.RatePerKg),
		ExpressFee:             kernel.Money(body.ExpressFee),
		SameDayFee:             kernel.Money(body.SameDayFee),
		LoyaltyDiscountPercent: body.LoyaltyDiscountPercent,
	})
	if err != nil {
		return err
	}

	table, err := s.h.UpdateRates.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ratesToResponse(table))
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	p, err := s.h.GetProfile.Handle(ctx.Request().Context(), queries.NewGetProfileQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profileToResponse(p))
}

// SaveProfile handles PUT /api/v1/profile.
func (s *Server) SaveProfile(ctx echo.Context) error {
	var body servers.SaveProfileJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(err)
	}

	cmd, err := commands.NewSaveProfileCommand(body.Name, body.Username, deref(body.Phone), deref(body.Role))
	if err != nil {
		return err
	}

	p, err := s.h.SaveProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profileToResponse(p))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context, params servers.GetDashboardParams) error {
	res, err := s.h.Dashboard.Handle(ctx.Request().Context(), queries.NewGetDashboardStatsQuery(deref(params.Q)))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, dashboardToResponse(res))
}

// GetShippingReport handles GET /api/v1/reports/shipping.
func (s *Server) GetShippingReport(ctx echo.Context, params servers.GetShippingReportParams) error {
	report, err := s.h.ShippingReport.Handle(ctx.Request().Context(), queries.NewGetShippingReportQuery())
	if err != nil {
		return err
	}

	if params.Format == nil || *params.Format != servers.Csv {
		return ctx.JSON(http.StatusOK, reportToResponse(report))
	}

	filename := fmt.Sprintf("Laporan-SwiftGo-%s.csv", report.GeneratedAt.Format(time.DateOnly))
	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)
	return report.WriteCSV(res)
}
