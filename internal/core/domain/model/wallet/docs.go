// Package wallet models the prepaid balance used to pay for Non-COD orders.
//
// The wallet is a single balance with a bounded history of mutations. Every
// mutation appends exactly one entry at the front of the history; once the
// history holds MaxHistory entries the oldest is dropped.
//
// Top-ups and manual deductions are unconditional. Paying for an order is
// checked: it fails with ErrInsufficientBalance and leaves the wallet
// untouched when the balance does not cover the amount.
package wallet
