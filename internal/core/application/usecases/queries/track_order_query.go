package queries

import (
	"errors"
	"strings"

	"swiftgo/internal/pkg/errs"
	"swiftgo/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery is a customer lookup by order number or receipt alias.
type TrackOrderQuery struct {
	number string

	guard guard.ConstructorGuard
}

func NewTrackOrderQuery(number string) (TrackOrderQuery, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	if number == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("tracking number")
	}

	return TrackOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Number returns the number as entered, upper-cased.
func (q TrackOrderQuery) Number() string {
	return q.number
}

const (
	RouteInCity  = "Dalam Kota"
	RouteOutCity = "Luar Kota"
)

// TrackOrderQueryResponse is what the tracking page shows: the order, its
// progress step (0 for cancelled, 1 to 4 otherwise) and the step label.
type TrackOrderQueryResponse struct {
	Order OrderView
	Step  int
	Label string
	Route string
}
