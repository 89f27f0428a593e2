package ledger

import "errors"

// ErrNothingToUndo is returned when popping from an empty ledger.
var ErrNothingToUndo = errors.New("nothing to undo")

// Ledger is an append-only log of scoring events with last-in-first-undone removal.
// Methods never modify the receiver, so a snapshot holding a Ledger can be copied freely.
type Ledger[T any] []T

// Append returns a new ledger with e added to the end.
func (l Ledger[T]) Append(e T) Ledger[T] {
	out := make(Ledger[T], len(l), len(l)+1)
	copy(out, l)
	return append(out, e)
}

// Pop returns the ledger without its last entry, and that entry.
func (l Ledger[T]) Pop() (Ledger[T], T, error) {
	var zero T
	if len(l) == 0 {
		return l, zero, ErrNothingToUndo
	}
	last := l[len(l)-1]
	var out Ledger[T]
	if len(l) > 1 {
		out = make(Ledger[T], len(l)-1)
		copy(out, l[:len(l)-1])
	}
	return out, last, nil
}

// Last returns the most recent entry without removing it.
func (l Ledger[T]) Last() (T, bool) {
	var zero T
	if len(l) == 0 {
		return zero, false
	}
	return l[len(l)-1], true
}

// Len returns the number of entries.
func (l Ledger[T]) Len() int {
	return len(l)
}

// Entries returns a copy of the entries in append order.
func (l Ledger[T]) Entries() []T {
	out := make([]T, len(l))
	copy(out, l)
	return out
}
