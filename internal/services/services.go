// Package services applies the clinic's domain rules on top of the record
// store. Every mutating call is one locked load-mutate-save of a single
// collection.
package services

import "medilink/internal/database"

// indexOf returns the position of the record with id, or -1.
func indexOf[T database.Record](records []T, id int) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

// filter keeps the records for which keep is true. The result is never nil
// so it always encodes as a JSON array.
func filter[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func removeAt[T any](records []T, i int) []T {
	return append(records[:i], records[i+1:]...)
}
