package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// DataAccessError wraps a datastore query or insert failure.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("datastore: %s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// FeedError wraps a quote provider failure: either a non-2xx response
// (Status and Body set) or a transport-level error (Err set).
type FeedError struct {
	Status int
	Body   string
	Err    error
}

func (e *FeedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bvl feed: %v", e.Err)
	}
	return fmt.Sprintf("bvl feed: status %d: %s", e.Status, e.Body)
}

func (e *FeedError) Unwrap() error { return e.Err }
