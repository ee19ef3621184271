// Package kernel provides the shared domain primitives of the shipping core.
//
// The package includes:
//   - UUID: a value object for entity identifiers (wallet history entries)
//   - Money: an integer amount of rupiah with Indonesian formatting
//   - Measure parsing: lenient conversion of user-entered weights and dimensions
//   - Region: the province/city pair used to classify shipping distance
//
// These primitives are immutable and safe for concurrent use.
package kernel
