// Package order provides the Order aggregate and its value objects.
//
// The package includes:
//   - Order: the aggregate root holding a frozen price and a mutable status
//   - Status: the lifecycle state machine
//   - Service and Payment: the closed sets of service tiers and payment methods
//   - ShipmentRequest: the validated input an order is created from
//   - CostBreakdown: the priced components of an order
//   - Number: the public order number and its receipt alias
//
// Key business rules:
//   - Status follows Pending -> Proses -> Selesai, with Pending or Proses -> Dibatalkan
//   - Dibatalkan is terminal; Selesai only allows deletion
//   - The price of an order never changes after creation
package order
