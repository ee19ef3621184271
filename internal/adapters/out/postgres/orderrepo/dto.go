// Package orderrepo persists order aggregates in the orders table. Contacts,
// item and cost breakdown are embedded columns; enumerations are stored by
// name so the table stays readable from psql.
package orderrepo

import (
	"time"

	"swiftgo/internal/core/domain/model/kernel"
	"swiftgo/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table. Seq is assigned by the database
// on insert and gives the newest-first listing order.
type OrderDTO struct {
	OrderNo   string     `gorm:"type:varchar(32);primaryKey"`
	Seq       int64      `gorm:"autoIncrement;uniqueIndex"`
	Sender    ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver  ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	Item      ItemDTO    `gorm:"embedded;embeddedPrefix:item_"`
	Service   string     `gorm:"type:varchar(16)"`
	Payment   string     `gorm:"type:varchar(16)"`
	Status    string     `gorm:"type:varchar(16);index"`
	Cost      CostDTO    `gorm:"embedded;embeddedPrefix:cost_"`
	CreatedAt time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ContactDTO struct {
	Name     string
	Phone    string
	Address  string
	Province string
	City     string
	District string
	Postal   string
}

// ItemDTO keeps the measures exactly as they were entered.
type ItemDTO struct {
	Name     string
	Category string
	Weight   string
	Length   string
	Width    string
	Height   string
}

type CostDTO struct {
	Base            int64
	WeightFee       int64
	ServiceFee      int64
	LocationFee     int64
	DiscountPercent int
	DiscountAmount  int64
	Total           int64
}

func fromDomain(o *order.Order) OrderDTO {
	cost := o.Cost()
	return OrderDTO{
		OrderNo:  o.Number().String(),
		Sender:   ContactDTO(o.Sender()),
		Receiver: ContactDTO(o.Receiver()),
		Item:     ItemDTO(o.Item()),
		Service:  o.Service().String(),
		Payment:  o.Payment().String(),
		Status:   o.Status().String(),
		Cost: CostDTO{
			Base:            cost.Base.Int64(),
			WeightFee:       cost.WeightFee.Int64(),
			ServiceFee:      cost.ServiceFee.Int64(),
			LocationFee:     cost.LocationFee.Int64(),
			DiscountPercent: cost.DiscountPercent,
			DiscountAmount:  cost.DiscountAmount.Int64(),
			Total:           cost.Total.Int64(),
		},
		CreatedAt: o.CreatedAt().UTC(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	service, err := order.ParseService(dto.Service)
	if err != nil {
		return nil, err
	}
	payment, err := order.ParsePayment(dto.Payment)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	req := order.ShipmentRequest{
		Sender:   order.Contact(dto.Sender),
		Receiver: order.Contact(dto.Receiver),
		Item:     order.Item(dto.Item),
		Service:  service,
		Payment:  payment,
	}
	cost := order.CostBreakdown{
		Base:            kernel.Money(dto.Cost.Base),
		WeightFee:       kernel.Money(dto.Cost.WeightFee),
		ServiceFee:      kernel.Money(dto.Cost.ServiceFee),
		LocationFee:     kernel.Money(dto.Cost.LocationFee),
		DiscountPercent: dto.Cost.DiscountPercent,
		DiscountAmount:  kernel.Money(dto.Cost.DiscountAmount),
		Total:           kernel.Money(dto.Cost.Total),
	}

	return order.RestoreOrder(order.Number(dto.OrderNo), req, status, cost, dto.CreatedAt.UTC())
}
