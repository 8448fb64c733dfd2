package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/samber/lo"

	"juridicol/internal/core/apperror"
	"juridicol/internal/domain/listing"
)

// KeyKind is the wire type of the ordering-key column.
type KeyKind int

const (
	KeyInt64 KeyKind = iota
	KeyTime
)

// KeyColumn names the unique ordering-key column of a keyset scan.
// Uniqueness is a precondition: equality ties on the ordering key are not
// tie-broken.
type KeyColumn struct {
	Name string
	Kind KeyKind
}

// KeysetQuery is a tagged scan variant. ExactQuery compares the ordering key
// against the parsed cursor value directly; RankedQuery resolves the anchor
// row's key through a correlated sub-lookup so full-text scans never compare
// against a re-serialized value.
type KeysetQuery interface {
	build() (squirrel.SelectBuilder, error)
	page() listing.PageRequest
}

// ExactQuery pages a typed-filter scan. Base must already carry the filter
// conditions; ordering, the cursor comparison and the limit are applied here.
type ExactQuery struct {
	Base squirrel.SelectBuilder
	Key  KeyColumn
	Page listing.PageRequest
}

func (q ExactQuery) page() listing.PageRequest { return q.Page }

func (q ExactQuery) build() (squirrel.SelectBuilder, error) {
	r := q.Page
	if err := r.Validate(); err != nil {
		return q.Base, err
	}

	sel := q.Base
	if r.Direction != listing.DirectionNone {
		val, err := parseKeyCursor(q.Key, r.Cursor)
		if err != nil {
			return sel, err
		}
		sel = sel.Where(squirrel.Expr(q.Key.Name+" "+comparisonFor(r)+" ?", val))
	}

	return applyScanOrder(sel, q.Key.Name, r), nil
}

// RankedQuery pages a ranked/full-text scan. The cursor carries the id of the
// anchor row; the comparison fetches the anchor's ordering-key value fresh via
// a sub-select, avoiding timezone and precision drift between the serialized
// cursor and the stored value.
type RankedQuery struct {
	Base squirrel.SelectBuilder
	// Table is the relation the anchor row lives in.
	Table string
	// AnchorColumn is the unique column the cursor identifies the anchor row
	// by. Defaults to "id".
	AnchorColumn string
	Key          KeyColumn
	Page         listing.PageRequest
}

func (q RankedQuery) page() listing.PageRequest { return q.Page }

func (q RankedQuery) build() (squirrel.SelectBuilder, error) {
	r := q.Page
	if err := r.Validate(); err != nil {
		return q.Base, err
	}

	sel := q.Base
	if r.Direction != listing.DirectionNone {
		anchorID, err := r.Cursor.Int64()
		if err != nil {
			return sel, err
		}
		anchorCol := q.AnchorColumn
		if anchorCol == "" {
			anchorCol = "id"
		}
		sub := fmt.Sprintf("%s %s (SELECT %s FROM %s WHERE %s = ?)",
			q.Key.Name, comparisonFor(r), q.Key.Name, q.Table, anchorCol)
		sel = sel.Where(squirrel.Expr(sub, anchorID))
	}

	return applyScanOrder(sel, q.Key.Name, r), nil
}

// comparisonFor resolves the cursor comparison operator: strictly after the
// cursor in canonical order for next, strictly before it for prev.
func comparisonFor(r listing.PageRequest) string {
	forward := r.Order == listing.OrderAsc
	if r.Direction == listing.DirectionPrev {
		forward = !forward
	}
	return lo.Ternary(forward, ">", "<")
}

// scanOrderFor resolves the physical scan order; prev scans away from the
// cursor, so the canonical order is inverted and the rows reversed afterwards.
func scanOrderFor(r listing.PageRequest) listing.Order {
	if r.Direction == listing.DirectionPrev {
		return r.Order.Invert()
	}
	return r.Order
}

// applyScanOrder orders the scan and over-fetches one row to detect more data.
func applyScanOrder(sel squirrel.SelectBuilder, keyCol string, r listing.PageRequest) squirrel.SelectBuilder {
	return sel.
		OrderBy(keyCol + " " + strings.ToUpper(string(scanOrderFor(r)))).
		Limit(uint64(r.Limit) + 1)
}

func parseKeyCursor(key KeyColumn, cursor listing.Cursor) (any, error) {
	switch key.Kind {
	case KeyTime:
		return cursor.Time()
	default:
		return cursor.Int64()
	}
}

// Paginate runs a keyset scan and resolves the page and its boundary cursors.
// keyOf must return the ordering-key cursor of a row (for RankedQuery, the
// anchor id the next request will look up).
func Paginate[T any](ctx context.Context, db Querier, q KeysetQuery, keyOf func(T) listing.Cursor) (listing.Page[T], error) {
	sel, err := q.build()
	if err != nil {
		return listing.Page[T]{}, err
	}

	sqlStr, args, err := sel.ToSql()
	if err != nil {
		return listing.Page[T]{}, apperror.NewStorage("build keyset query", err)
	}

	var rows []T
	if err := pgxscan.Select(ctx, db, &rows, sqlStr, args...); err != nil {
		return listing.Page[T]{}, apperror.NewStorage("keyset scan", err)
	}

	return resolvePage(rows, q.page(), keyOf), nil
}

// resolvePage turns a raw over-fetched scan into a canonical-order page.
//
//	direction | next cursor present    | prev cursor present
//	none      | hasMore                | never
//	next      | hasMore                | always
//	prev      | always                 | hasMore
func resolvePage[T any](rows []T, r listing.PageRequest, keyOf func(T) listing.Cursor) listing.Page[T] {
	if len(rows) == 0 {
		return listing.Page[T]{Items: []T{}}
	}

	hasMore := len(rows) > r.Limit
	if r.Direction == listing.DirectionPrev {
		// Rows were scanned in inverted order; restore canonical order before
		// trimming, then drop the over-fetched row from the far (leading) edge.
		rows = lo.Reverse(rows)
		if hasMore {
			rows = rows[1:]
		}
	} else if hasMore {
		rows = rows[:r.Limit]
	}

	page := listing.Page[T]{Items: rows}

	if r.Direction == listing.DirectionPrev || hasMore {
		c := keyOf(rows[len(rows)-1])
		page.NextCursor = &c
	}
	if r.Direction == listing.DirectionNext || (r.Direction == listing.DirectionPrev && hasMore) {
		c := keyOf(rows[0])
		page.PrevCursor = &c
	}

	return page
}
