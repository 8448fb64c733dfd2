// Package listing provides cursor-based pagination value objects shared by
// all list operations. A cursor marks the ordering-key value of a boundary
// row; it is only meaningful relative to the filter and ordering that
// produced it.
package listing

import (
	"strconv"
	"time"

	"juridicol/internal/core/apperror"
)

// Order is the canonical sort direction of a listing.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Valid reports whether the order is one of the supported values.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Invert returns the opposite order.
func (o Order) Invert() Order {
	if o == OrderAsc {
		return OrderDesc
	}
	return OrderAsc
}

// Direction is the navigation intent of a page request.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Valid reports whether the direction is one of the supported values.
func (d Direction) Valid() bool {
	return d == DirectionNone || d == DirectionNext || d == DirectionPrev
}

// Cursor is an opaque position marker: the ordering-key value of the last
// item seen on an edge of a page, serialized as a decimal integer or an
// RFC 3339 timestamp. Cursors are never persisted; they round-trip through
// the caller.
type Cursor string

// Int64Cursor serializes an integer ordering key.
func Int64Cursor(v int64) Cursor {
	return Cursor(strconv.FormatInt(v, 10))
}

// TimeCursor serializes a timestamp ordering key.
func TimeCursor(t time.Time) Cursor {
	return Cursor(t.UTC().Format(time.RFC3339Nano))
}

// Int64 parses the cursor as an integer ordering key.
func (c Cursor) Int64() (int64, error) {
	v, err := strconv.ParseInt(string(c), 10, 64)
	if err != nil {
		return 0, apperror.NewValidation("malformed cursor").
			WithDetail("cursor", string(c)).
			WithCause(err)
	}
	return v, nil
}

// Time parses the cursor as a timestamp ordering key.
func (c Cursor) Time() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, string(c))
	if err != nil {
		return time.Time{}, apperror.NewValidation("malformed cursor").
			WithDetail("cursor", string(c)).
			WithCause(err)
	}
	return t, nil
}

// DefaultLimit applies when a request leaves the limit unset.
const DefaultLimit = 20

// MaxLimit caps the page size of a single request.
const MaxLimit = 100

// PageRequest describes one page of a filtered, ordered result set.
type PageRequest struct {
	Order     Order
	Direction Direction
	Cursor    Cursor
	Limit     int
}

// Normalize fills unset fields with defaults and caps the limit.
func (r PageRequest) Normalize() PageRequest {
	if r.Order == "" {
		r.Order = OrderAsc
	}
	if r.Direction == "" {
		r.Direction = DirectionNone
	}
	if r.Limit == 0 {
		r.Limit = DefaultLimit
	}
	if r.Limit > MaxLimit {
		r.Limit = MaxLimit
	}
	return r
}

// Validate checks the request invariants. A cursor is required whenever the
// direction is next or prev.
func (r PageRequest) Validate() error {
	if r.Limit <= 0 {
		return apperror.NewValidation("limit must be positive").WithDetail("limit", r.Limit)
	}
	if !r.Order.Valid() {
		return apperror.NewValidation("invalid order").WithDetail("order", string(r.Order))
	}
	if !r.Direction.Valid() {
		return apperror.NewValidation("invalid direction").WithDetail("direction", string(r.Direction))
	}
	if r.Direction != DirectionNone && r.Cursor == "" {
		return apperror.NewValidation("cursor is required for directional paging").
			WithDetail("direction", string(r.Direction))
	}
	return nil
}

// Page is one page of items in canonical order plus the cursors to continue
// in either direction. An absent cursor means there is nothing on that side.
type Page[T any] struct {
	Items      []T
	NextCursor *Cursor
	PrevCursor *Cursor
}
