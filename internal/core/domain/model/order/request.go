package order

import (
	"errors"
	"strings"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Contact is one end of a shipment as entered on the form.
type Contact struct {
	Name     string
	Phone    string
	Address  string
	Province string
	City     string
	District string
	Postal   string
}

// Region returns the province/city pair used for the location surcharge.
func (c Contact) Region() kernel.Region {
	return kernel.NewRegion(c.Province, c.City)
}

// validate reports the required contact fields that are blank. Province,
// district and postal code are optional.
func (c Contact) validate(role string) error {
	return errors.Join(
		required(role+" name", c.Name),
		required(role+" phone", c.Phone),
		required(role+" address", c.Address),
		required(role+" city", c.City),
	)
}

// MaxWeightKg is the heaviest parcel an order can be created for.
const MaxWeightKg = 100_000

// Item describes the parcel. Measures are kept as entered and parsed with
// kernel.ParseMeasure whenever a number is needed.
type Item struct {
	Name     string
	Category string
	Weight   string
	Length   string
	Width    string
	Height   string
}

// WeightKg returns the parsed weight, zero when unparsable.
func (i Item) WeightKg() decimal.Decimal {
	return kernel.ParseMeasure(i.Weight)
}

// Volume is length * width * height in cubic centimetres.
func (i Item) Volume() decimal.Decimal {
	return kernel.ParseMeasure(i.Length).
		Mul(kernel.ParseMeasure(i.Width)).
		Mul(kernel.ParseMeasure(i.Height))
}

func (i Item) validate() error {
	return errors.Join(
		required("item name", i.Name),
		required("item category", i.Category),
		required("weight", i.Weight),
		required("length", i.Length),
		required("width", i.Width),
		required("height", i.Height),
		i.validateWeight(),
	)
}

func (i Item) validateWeight() error {
	if w := i.WeightKg(); w.GreaterThan(decimal.NewFromInt(MaxWeightKg)) {
		return errs.NewValueIsOutOfRangeError("weight", w.String(), 0, MaxWeightKg)
	}
	return nil
}

// ShipmentRequest is the transient input to pricing and order creation.
type ShipmentRequest struct {
	Sender   Contact
	Receiver Contact
	Item     Item
	Service  Service
	Payment  Payment
}

// Validate returns every missing required field and any invalid tier or
// payment method, joined. Pricing never calls it; creation always does.
func (r ShipmentRequest) Validate() error {
	return errors.Join(
		r.Sender.validate("sender"),
		r.Receiver.validate("receiver"),
		r.Item.validate(),
		r.Service.Validate(),
		r.Payment.Validate(),
	)
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
