// Package store provides the persistence layer for moderation records.
// Records live in memory and are mirrored to a backend (flat JSON files by
// default, MongoDB when configured). The in-memory copy is authoritative:
// a failed persist is logged and retried, never surfaced to handlers.
package store

// Collection is an ordered set of records of one type.
// Implementations must preserve insertion order in All and Filter.
type Collection[T any] interface {
	// Append adds a record at the end of the collection.
	Append(item T) error

	// All returns a copy of every record in insertion order.
	All() []T

	// Filter returns a copy of the records matching pred, in insertion order.
	Filter(pred func(T) bool) []T

	// ReplaceAll swaps the entire contents of the collection.
	ReplaceAll(items []T) error

	// DeleteWhere removes every record matching pred and returns how many
	// were removed.
	DeleteWhere(pred func(T) bool) (int, error)
}
