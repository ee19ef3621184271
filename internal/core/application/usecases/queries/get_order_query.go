package queries

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery looks up one order by its number. The receipt alias
// SW-RESI-<digits> is accepted as well.
type GetOrderQuery struct {
	number order.Number

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(number string) (GetOrderQuery, error) {
	if strings.TrimSpace(number) == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order number")
	}

	parsed, err := order.ParseNumber(number)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		number: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Number() order.Number {
	return q.number
}
