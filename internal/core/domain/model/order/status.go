package order

import (
	"fmt"
	"strings"

	"swiftgo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Proses ──> Selesai ──> (deleted)
//	   │           │
//	   └───────────┴──> Dibatalkan
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the status of a freshly created order.
	Pending

	// Proses means the parcel has been picked up and is in transit.
	Proses

	// Selesai means the parcel was delivered. Only deletion is allowed afterwards.
	Selesai

	// Dibatalkan means the order was cancelled. It is terminal.
	Dibatalkan
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Proses:     "Proses",
		Selesai:    "Selesai",
		Dibatalkan: "Dibatalkan",
	}
}

// transitions is the full table of legal status changes.
//
//nolint:exhaustive // terminal statuses have no outgoing edges
var transitions = map[Status][]Status{
	Pending: {Proses, Dibatalkan},
	Proses:  {Selesai, Dibatalkan},
}

// AllStatuses returns the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Proses, Selesai, Dibatalkan}
}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.TrimSpace(s)
	for _, status := range AllStatuses() {
		if strings.EqualFold(status.String(), name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that s is one of the four lifecycle statuses.
func (s Status) Validate() error {
	if s <= Unknown || s > Dibatalkan {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the table allows s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target when the change is legal and an
// errs.InvalidTransitionError otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// Process moves Pending to Proses.
func (s Status) Process() (Status, error) {
	return s.TransitionTo(Proses)
}

// Complete moves Proses to Selesai.
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Selesai)
}

// Cancel moves Pending or Proses to Dibatalkan.
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Dibatalkan)
}

// ValidateDelete allows removal of delivered orders only.
func (s Status) ValidateDelete() error {
	if s != Selesai {
		return errs.NewOperationNotAllowedErrorWithCause(
			"delete order",
			fmt.Errorf("order is %s, only %s orders can be deleted", s, Selesai),
		)
	}
	return nil
}

// TrackingStep is the position on the four-step tracking progress bar:
// 1 picked up pending, 3 in transit, 4 delivered, 0 cancelled.
func (s Status) TrackingStep() int {
	switch s {
	case Proses:
		return 3
	case Selesai:
		return 4
	case Dibatalkan:
		return 0
	default:
		return 1
	}
}

// TrackingLabel is the customer-facing description of the status.
func (s Status) TrackingLabel() string {
	switch s {
	case Proses:
		return "Sedang Diproses"
	case Selesai:
		return "Sampai di Tujuan"
	case Dibatalkan:
		return "Pengiriman Dibatalkan"
	default:
		return "Menunggu Penjemputan"
	}
}
