package queries

import (
	"errors"

	"swiftgo/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders newest first. A non-empty search keeps the
// orders whose number or receiver name contains it, ignoring case and
// surrounding whitespace.
type ListOrdersQuery struct {
	search string

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(search string) ListOrdersQuery {
	return ListOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Search() string {
	return q.search
}
