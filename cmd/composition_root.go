package cmd

import (
	"context"

	httpin "swiftgo/internal/adapters/in/http"
	"swiftgo/internal/core/application/usecases/commands"
	"swiftgo/internal/core/application/usecases/queries"
	"swiftgo/internal/core/ports"
)

type CompositionRoot struct {
	uowFactory      ports.UnitOfWorkFactory
	trackingFactory FuncTrackingUoWFactory
	publisher       ports.EventPublisher
}

// NewCompositionRoot wires every use case to one storage driver. Recent
// tracking uses the same driver until WithTracking routes it elsewhere.
func NewCompositionRoot(uowFactory ports.UnitOfWorkFactory, publisher ports.EventPublisher) *CompositionRoot {
	return &CompositionRoot{
		uowFactory: uowFactory,
		trackingFactory: func() commands.TrackingUoW {
			return uowFactory.Create()
		},
		publisher: publisher,
	}
}

func (c *CompositionRoot) WithTracking(create func() commands.TrackingUoW) *CompositionRoot {
	c.trackingFactory = create
	return c
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderWalletUoWFactory = FuncOrderWalletUoWFactory(func() commands.OrderWalletUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAddBalanceCommandHandler() commands.AddBalanceCommandHandler {
	return commands.NewAddBalanceCommandHandler(c.walletUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateDeductBalanceCommandHandler() commands.DeductBalanceCommandHandler {
	return commands.NewDeductBalanceCommandHandler(c.walletUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateUpdateRatesCommandHandler() commands.UpdateRatesCommandHandler {
	var f commands.RateUoWFactory = FuncRateUoWFactory(func() commands.RateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRatesCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAddRecentTrackingCommandHandler() commands.AddRecentTrackingCommandHandler {
	return commands.NewAddRecentTrackingCommandHandler(c.trackingFactory)
}

func (c *CompositionRoot) CreateSaveProfileCommandHandler() commands.SaveProfileCommandHandler {
	var f commands.ProfileUoWFactory = FuncProfileUoWFactory(func() commands.ProfileUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveProfileCommandHandler(f)
}

func (c *CompositionRoot) CreateQuoteQueryHandler() queries.QuoteQueryHandler {
	return queries.NewQuoteQueryHandler(FuncQuoteReaderFactory(func() queries.QuoteReader {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orderReaderFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReaderFactory())
}

// CreateTrackOrderQueryHandler records every successful lookup in the recent
// tracking list.
func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orderReaderFactory(), c.trackingRecorder())
}

func (c *CompositionRoot) CreateGetRecentTrackingQueryHandler() queries.GetRecentTrackingQueryHandler {
	return queries.NewGetRecentTrackingQueryHandler(FuncTrackingReaderFactory(func() queries.TrackingReader {
		return c.trackingFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetWalletQueryHandler() queries.GetWalletQueryHandler {
	return queries.NewGetWalletQueryHandler(FuncWalletReaderFactory(func() queries.WalletReader {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetRatesQueryHandler() queries.GetRatesQueryHandler {
	return queries.NewGetRatesQueryHandler(FuncRateReaderFactory(func() queries.RateReader {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(FuncProfileReaderFactory(func() queries.ProfileReader {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(FuncDashboardReaderFactory(func() queries.DashboardReader {
		return c.uowFactory.Create()
	}))
}

func (c *CompositionRoot) CreateGetShippingReportQueryHandler() queries.GetShippingReportQueryHandler {
	return queries.NewGetShippingReportQueryHandler(c.orderReaderFactory())
}

// HTTPHandlers collects every use case the HTTP adapter serves.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		AddBalance:        c.CreateAddBalanceCommandHandler(),
		DeductBalance:     c.CreateDeductBalanceCommandHandler(),
		UpdateRates:       c.CreateUpdateRatesCommandHandler(),
		SaveProfile:       c.CreateSaveProfileCommandHandler(),
		Quote:             c.CreateQuoteQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		TrackOrder:        c.CreateTrackOrderQueryHandler(),
		RecentTracking:    c.CreateGetRecentTrackingQueryHandler(),
		GetWallet:         c.CreateGetWalletQueryHandler(),
		GetRates:          c.CreateGetRatesQueryHandler(),
		GetProfile:        c.CreateGetProfileQueryHandler(),
		Dashboard:         c.CreateGetDashboardStatsQueryHandler(),
		ShippingReport:    c.CreateGetShippingReportQueryHandler(),
	}
}

func (c *CompositionRoot) walletUoWFactory() commands.WalletUoWFactory {
	return FuncWalletUoWFactory(func() commands.WalletUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderReaderFactory() queries.OrderReaderFactory {
	return FuncOrderReaderFactory(func() queries.OrderReader {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) trackingRecorder() queries.TrackingRecorder {
	handler := c.CreateAddRecentTrackingCommandHandler()
	return FuncTrackingRecorder(func(ctx context.Context, number string) error {
		cmd, err := commands.NewAddRecentTrackingCommand(number)
		if err != nil {
			return err
		}
		_, err = handler.Handle(ctx, cmd)
		return err
	})
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncOrderWalletUoWFactory func() commands.OrderWalletUoW

func (f FuncOrderWalletUoWFactory) Create() commands.OrderWalletUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncWalletUoWFactory func() commands.WalletUoW

func (f FuncWalletUoWFactory) Create() commands.WalletUoW {
	return f()
}

type FuncRateUoWFactory func() commands.RateUoW

func (f FuncRateUoWFactory) Create() commands.RateUoW {
	return f()
}

type FuncTrackingUoWFactory func() commands.TrackingUoW

func (f FuncTrackingUoWFactory) Create() commands.TrackingUoW {
	return f()
}

type FuncProfileUoWFactory func() commands.ProfileUoW

func (f FuncProfileUoWFactory) Create() commands.ProfileUoW {
	return f()
}

type FuncOrderReaderFactory func() queries.OrderReader

func (f FuncOrderReaderFactory) Create() queries.OrderReader {
	return f()
}

type FuncQuoteReaderFactory func() queries.QuoteReader

func (f FuncQuoteReaderFactory) Create() queries.QuoteReader {
	return f()
}

type FuncDashboardReaderFactory func() queries.DashboardReader

func (f FuncDashboardReaderFactory) Create() queries.DashboardReader {
	return f()
}

type FuncWalletReaderFactory func() queries.WalletReader

func (f FuncWalletReaderFactory) Create() queries.WalletReader {
	return f()
}

type FuncRateReaderFactory func() queries.RateReader

func (f FuncRateReaderFactory) Create() queries.RateReader {
	return f()
}

type FuncTrackingReaderFactory func() queries.TrackingReader

func (f FuncTrackingReaderFactory) Create() queries.TrackingReader {
	return f()
}

type FuncProfileReaderFactory func() queries.ProfileReader

func (f FuncProfileReaderFactory) Create() queries.ProfileReader {
	return f()
}

type FuncTrackingRecorder func(ctx context.Context, number string) error

func (f FuncTrackingRecorder) RecordTracking(ctx context.Context, number string) error {
	return f(ctx, number)
}
