// Package tracking keeps the list of recently looked-up tracking numbers.
package tracking

import (
	"strings"

	"swiftgo/internal/pkg/errs"
)

// MaxRecent is the number of tracking numbers remembered.
const MaxRecent = 5

// Recent is a deduplicated, newest-first list of tracking numbers.
type Recent struct {
	numbers []string
}

// NewRecent restores a list from storage, dropping blanks and duplicates and
// keeping at most MaxRecent entries.
func NewRecent(numbers []string) Recent {
	r := Recent{numbers: make([]string, 0, MaxRecent)}
	for _, n := range numbers {
		n = strings.TrimSpace(n)
		if n == "" || r.Contains(n) || len(r.numbers) == MaxRecent {
			continue
		}
		r.numbers = append(r.numbers, n)
	}
	return r
}

// Add puts number at the front. A number that is already present is
// ignored and the order of the list is left as it was. Reports whether the
// list changed.
func (r *Recent) Add(number string) (bool, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return false, errs.NewValueIsRequiredError("tracking number")
	}
	if r.Contains(number) {
		return false, nil
	}

	next := make([]string, 0, MaxRecent)
	next = append(next, number)
	next = append(next, r.numbers...)
	if len(next) > MaxRecent {
		next = next[:MaxRecent]
	}
	r.numbers = next
	return true, nil
}

// Contains matches case-insensitively.
func (r Recent) Contains(number string) bool {
	for _, n := range r.numbers {
		if strings.EqualFold(n, number) {
			return true
		}
	}
	return false
}

// Numbers returns a copy, newest first.
func (r Recent) Numbers() []string {
	out := make([]string, len(r.numbers))
	copy(out, r.numbers)
	return out
}

func (r Recent) Len() int {
	return len(r.numbers)
}
