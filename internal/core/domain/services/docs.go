// Package services provides domain services that compute results spanning
// several domain objects of the shipping core.
//
// The package includes:
//   - PriceCalculator: the pricing engine turning a shipment request, the
//     current rate table and the order history into a cost breakdown
//
// Domain services are pure: they neither load nor store anything.
package services
