// Package ports defines the contracts between the shipping core and its
// storage and messaging infrastructure.
package ports

import (
	"context"
	"errors"

	"swiftgo/internal/core/domain/model/order"
)

// ErrOrderNumberTaken is returned by OrderRepository.Add when another order
// already uses the number.
var ErrOrderNumberTaken = errors.New("order number is already taken")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. Returns ErrOrderNumberTaken on a number collision.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a status change of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order. Returns errs.ObjectNotFoundError when absent.
	Delete(ctx context.Context, number order.Number) error

	// Get returns the order or errs.ObjectNotFoundError.
	Get(ctx context.Context, number order.Number) (*order.Order, error)

	// Exists reports whether the number is in use.
	Exists(ctx context.Context, number order.Number) (bool, error)

	// GetAll returns every order, newest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
