package commands

import (
	"errors"

	"swiftgo/internal/core/domain/model/order"
	"swiftgo/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand is a request to price and place a new shipment.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(req)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	request order.ShipmentRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks every required field of the request and
// returns all missing ones at once.
func NewCreateOrderCommand(req order.ShipmentRequest) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRequest(req); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Request returns the shipment request to place.
func (c CreateOrderCommand) Request() order.ShipmentRequest {
	return c.request
}

func (c *CreateOrderCommand) setRequest(req order.ShipmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	c.request = req
	return nil
}
