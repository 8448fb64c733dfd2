// Package dto defines the wire types of API v1.
package dto

import (
	"juridicol/internal/domain/listing"
)

// PageQuery holds the pagination query parameters shared by list endpoints.
type PageQuery struct {
	Order     string `form:"order"`
	Direction string `form:"direction"`
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit"`
}

// ToPageRequest converts query parameters into a normalized page request.
// Validation happens in the pager.
func (q *PageQuery) ToPageRequest() listing.PageRequest {
	return listing.PageRequest{
		Order:     listing.Order(q.Order),
		Direction: listing.Direction(q.Direction),
		Cursor:    listing.Cursor(q.Cursor),
		Limit:     q.Limit,
	}.Normalize()
}

// PageResponse is the generic list envelope. Absent cursors mean there is
// nothing on that side.
type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"nextCursor,omitempty"`
	PrevCursor *string `json:"prevCursor,omitempty"`
}

// NewPageResponse maps a domain page into the wire envelope.
func NewPageResponse[D, T any](page listing.Page[D], mapItem func(D) T) PageResponse[T] {
	items := make([]T, len(page.Items))
	for i, it := range page.Items {
		items[i] = mapItem(it)
	}

	resp := PageResponse[T]{Items: items}
	if page.NextCursor != nil {
		s := string(*page.NextCursor)
		resp.NextCursor = &s
	}
	if page.PrevCursor != nil {
		s := string(*page.PrevCursor)
		resp.PrevCursor = &s
	}
	return resp
}

// IDResponse carries a created entity's id.
type IDResponse struct {
	ID int64 `json:"id"`
}
