// Package id mints trade identifiers.
package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. ULIDs sort lexicographically by creation
// time, so listing trades by ID matches chronological order.
func New() string {
	return ulid.Make().String()
}
