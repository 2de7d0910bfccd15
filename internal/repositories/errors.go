package repositories

import "errors"

var (
	// ErrNotFound is wrapped by every lookup or mutation that targets a missing record.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped when a record with the same key already exists.
	ErrConflict = errors.New("already exists")
)
