package queries_test

import (
	"testing"
	"time"

	"swiftgo/internal/adapters/out/memory"
	"swiftgo/internal/core/application/usecases/queries"
	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var day = time.Date(2024, 5, 17, 9, 0, 0, 0, time.UTC)

type funcFactory[T any] func() T

func (f funcFactory[T]) Create() T {
	return f()
}

type env struct {
	factory ports.UnitOfWorkFactory
}

func newEnv() *env {
	return &env{factory: memory.NewUnitOfWorkFactory(memory.NewStore(rates.Default()))}
}

func (e *env) orders() queries.OrderReaderFactory {
	return funcFactory[queries.OrderReader](func() queries.OrderReader { return e.factory.Create() })
}

func (e *env) quotes() queries.QuoteReaderFactory {
	return funcFactory[queries.QuoteReader](func() queries.QuoteReader { return e.factory.Create() })
}

func (e *env) dashboard() queries.DashboardReaderFactory {
	return funcFactory[queries.DashboardReader](func() queries.DashboardReader { return e.factory.Create() })
}

type seed struct {
	number   order.Number
	sender   string
	receiver string
	service  order.Service
	status   order.Status
	amount   kernel.Money
	at       time.Time
}

func (e *env) add(t *testing.T, s seed) {
	t.Helper()
	if s.sender == "" {
		s.sender = "Budi Santoso"
	}
	if s.service == order.UnknownService {
		s.service = order.Reguler
	}
	if s.status == order.Unknown {
		s.status = order.Pending
	}

	req := order.ShipmentRequest{
		Sender:   order.Contact{Name: s.sender, Phone: "0812", Address: "Jl. Merdeka", Province: "DKI Jakarta", City: "Jakarta"},
		Receiver: order.Contact{Name: s.receiver, Phone: "0822", Address: "Jl. Braga", Province: "Jawa Barat", City: "Bandung"},
		Item:     order.Item{Name: "Buku", Category: "Dokumen", Weight: "1", Length: "10", Width: "10", Height: "10"},
		Service:  s.service,
		Payment:  order.COD,
	}
	cost := order.CostBreakdown{Base: s.amount, Total: s.amount}
	o, err := order.RestoreOrder(s.number, req, s.status, cost, s.at)
	require.NoError(t, err)
	require.NoError(t, e.factory.Create().OrderRepository().Add(t.Context(), o))
}
