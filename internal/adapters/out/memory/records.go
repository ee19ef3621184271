package memory

import (
	"fmt"
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/core/domain/model/profile"
	"swiftgo/internal/core/domain/model/rates"
	"swiftgo/internal/core/domain/model/tracking"
	"swiftgo/internal/core/domain/model/wallet"
)

// snapshotVersion is written into every snapshot; Load rejects anything else.
const snapshotVersion = 1

// snapshot is the persisted layout of the whole store.
type snapshot struct {
	Version        int            `json:"version"`
	Orders         []orderRecord  `json:"orders"`
	Rates          *ratesRecord   `json:"rates,omitempty"`
	Balance        int64          `json:"balance"`
	History        []entryRecord  `json:"history"`
	RecentTracking []string       `json:"recentTracking"`
	Profile        *profileRecord `json:"profile,omitempty"`
}

type contactRecord struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"district"`
	Postal   string `json:"postal"`
}

type itemRecord struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Weight   string `json:"weight"`
	Length   string `json:"length"`
	Width    string `json:"width"`
	Height   string `json:"height"`
}

type costRecord struct {
	Base            int64 `json:"base"`
	WeightFee       int64 `json:"weightFee"`
	ServiceFee      int64 `json:"serviceFee"`
	LocationFee     int64 `json:"locationFee"`
	DiscountPercent int   `json:"discountPercent"`
	DiscountAmount  int64 `json:"discountAmount"`
	Total           int64 `json:"total"`
}

type orderRecord struct {
	OrderNo   string        `json:"orderNo"`
	Sender    contactRecord `json:"sender"`
	Receiver  contactRecord `json:"receiver"`
	Item      itemRecord    `json:"item"`
	Service   string        `json:"service"`
	Payment   string        `json:"payment"`
	Status    string        `json:"status"`
	Cost      costRecord    `json:"cost"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ratesRecord struct {
	BaseRate        int64 `json:"baseRate"`
	RatePerKg       int64 `json:"ratePerKg"`
	ExpressFee      int64 `json:"expressFee"`
	SameDayFee      int64 `json:"sameDayFee"`
	LoyaltyDiscount int   `json:"loyaltyDiscount"`
}

type entryRecord struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

type profileRecord struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func contactFromDomain(c order.Contact) contactRecord {
	return contactRecord(c)
}

func (r contactRecord) toDomain() order.Contact {
	return order.Contact(r)
}

func orderFromDomain(o *order.Order) orderRecord {
	cost := o.Cost()
	return orderRecord{
		OrderNo:   o.Number().String(),
		Sender:    contactFromDomain(o.Sender()),
		Receiver:  contactFromDomain(o.Receiver()),
		Item:      itemRecord(o.Item()),
		Service:   o.Service().String(),
		Payment:   o.Payment().String(),
		Status:    o.Status().String(),
		CreatedAt: o.CreatedAt(),
		Cost: costRecord{
			Base:            cost.Base.Int64(),
			WeightFee:       cost.WeightFee.Int64(),
			ServiceFee:      cost.ServiceFee.Int64(),
			LocationFee:     cost.LocationFee.Int64(),
			DiscountPercent: cost.DiscountPercent,
			DiscountAmount:  cost.DiscountAmount.Int64(),
			Total:           cost.Total.Int64(),
		},
	}
}

func (r orderRecord) toDomain() (*order.Order, error) {
	service, err := order.ParseService(r.Service)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", r.OrderNo, err)
	}
	payment, err := order.ParsePayment(r.Payment)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", r.OrderNo, err)
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("order %s: %w", r.OrderNo, err)
	}

	req := order.ShipmentRequest{
		Sender:   r.Sender.toDomain(),
		Receiver: r.Receiver.toDomain(),
		Item:     order.Item(r.Item),
		Service:  service,
		Payment:  payment,
	}
	cost := order.CostBreakdown{
		Base:            kernel.Money(r.Cost.Base),
		WeightFee:       kernel.Money(r.Cost.WeightFee),
		ServiceFee:      kernel.Money(r.Cost.ServiceFee),
		LocationFee:     kernel.Money(r.Cost.LocationFee),
		DiscountPercent: r.Cost.DiscountPercent,
		DiscountAmount:  kernel.Money(r.Cost.DiscountAmount),
		Total:           kernel.Money(r.Cost.Total),
	}
	return order.RestoreOrder(order.Number(r.OrderNo), req, status, cost, r.CreatedAt)
}

func ratesFromDomain(t rates.Table) *ratesRecord {
	return &ratesRecord{
		BaseRate:        t.BaseRate.Int64(),
		RatePerKg:       t.RatePerKg.Int64(),
		ExpressFee:      t.ExpressFee.Int64(),
		SameDayFee:      t.SameDayFee.Int64(),
		LoyaltyDiscount: t.LoyaltyDiscountPercent,
	}
}

func (r ratesRecord) toDomain() rates.Table {
	return rates.Table{
		BaseRate:               kernel.Money(r.BaseRate),
		RatePerKg:              kernel.Money(r.RatePerKg),
		ExpressFee:             kernel.Money(r.ExpressFee),
		SameDayFee:             kernel.Money(r.SameDayFee),
		LoyaltyDiscountPercent: r.LoyaltyDiscount,
	}
}

func entriesFromDomain(entries []wallet.Entry) []entryRecord {
	out := make([]entryRecord, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryRecord{
			ID:          e.ID.String(),
			Type:        string(e.Type),
			Amount:      e.Amount.Int64(),
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}
	return out
}

func walletToDomain(balance int64, records []entryRecord) (*wallet.Wallet, error) {
	entries := make([]wallet.Entry, 0, len(records))
	for _, r := range records {
		id, err := kernel.UUIDFromString(r.ID)
		if err != nil {
			return nil, err
		}
		typ, err := wallet.ParseEntryType(r.Type)
		if err != nil {
			return nil, err
		}
		entries = append(entries, wallet.Entry{
			ID:          id,
			Type:        typ,
			Amount:      kernel.Money(r.Amount),
			Description: r.Description,
			Timestamp:   r.Timestamp,
		})
	}
	return wallet.Restore(kernel.Money(balance), entries)
}

func profileFromDomain(p profile.Profile) *profileRecord {
	return &profileRecord{
		Name:     p.Name,
		Username: p.Username,
		Phone:    p.Phone,
		Role:     string(p.Role),
	}
}

func (r profileRecord) toDomain() profile.Profile {
	return profile.Profile{
		Name:     r.Name,
		Username: r.Username,
		Phone:    r.Phone,
		Role:     profile.ParseRole(r.Role),
	}
}

func recentToDomain(numbers []string) tracking.Recent {
	return tracking.NewRecent(numbers)
}
