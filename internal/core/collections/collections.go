// Package collections holds the slice reconciliation helpers shared by the
// entity stores. Mutations settle as merge-or-insert so a successful server
// mutation is always reflected locally, even when the mutated record was not
// part of the currently loaded page.
package collections

// Upsert replaces the entry whose key matches item, or appends item when no
// entry matches. The input slice is not modified.
func Upsert[T any](items []T, item T, key func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)

	k := key(item)
	for i := range out {
		if key(out[i]) == k {
			out[i] = item
			return out
		}
	}
	return append(out, item)
}

// RemoveByKey drops the entry with the given key, if present. The input slice
// is not modified.
func RemoveByKey[T any](items []T, k string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if key(item) == k {
			continue
		}
		out = append(out, item)
	}
	return out
}

// FindByKey returns the entry with the given key.
func FindByKey[T any](items []T, k string, key func(T) string) (T, bool) {
	for _, item := range items {
		if key(item) == k {
			return item, true
		}
	}
	var zero T
	return zero, false
}
