package postgres

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juridicol/internal/core/apperror"
	"juridicol/internal/domain/listing"
)

type idRow struct {
	ID int64
}

func idKey(r idRow) listing.Cursor { return listing.Int64Cursor(r.ID) }

func idRows(ids ...int64) []idRow {
	rows := make([]idRow, len(ids))
	for i, id := range ids {
		rows[i] = idRow{ID: id}
	}
	return rows
}

func ids(rows []idRow) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

func cursorOf(t *testing.T, c *listing.Cursor) string {
	t.Helper()
	require.NotNil(t, c)
	return string(*c)
}

// Walks a 7-row set (ids 1..7) descending with limit 5: first page, then the
// following page via nextCursor, then back via the second page's prevCursor.
func TestResolvePage_DescendingWalk(t *testing.T) {
	first := listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionNone, Limit: 5}

	// Scan fetched limit+1 rows: more data exists.
	page := resolvePage(idRows(7, 6, 5, 4, 3, 2), first, idKey)
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids(page.Items))
	assert.Equal(t, "3", cursorOf(t, page.NextCursor))
	assert.Nil(t, page.PrevCursor)

	// Forward from the first page's next cursor: short final page.
	second := listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionNext, Cursor: "3", Limit: 5}
	page = resolvePage(idRows(2, 1), second, idKey)
	assert.Equal(t, []int64{2, 1}, ids(page.Items))
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, "2", cursorOf(t, page.PrevCursor))

	// Backward from the second page's prev cursor. The scan ran in inverted
	// (ascending) order and found only the 5 remaining rows.
	back := listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionPrev, Cursor: "2", Limit: 5}
	page = resolvePage(idRows(3, 4, 5, 6, 7), back, idKey)
	assert.Equal(t, []int64{7, 6, 5, 4, 3}, ids(page.Items))
	assert.Equal(t, "3", cursorOf(t, page.NextCursor))
	assert.Nil(t, page.PrevCursor)
}

func TestResolvePage_PrevWithMoreDropsFarEdge(t *testing.T) {
	// Backward over ids 1..7 from cursor 1, desc, limit 3: the scan ran
	// ascending and over-fetched [2 3 4 5].
	r := listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionPrev, Cursor: "1", Limit: 3}

	page := resolvePage(idRows(2, 3, 4, 5), r, idKey)
	assert.Equal(t, []int64{4, 3, 2}, ids(page.Items))
	assert.Equal(t, "2", cursorOf(t, page.NextCursor))
	assert.Equal(t, "4", cursorOf(t, page.PrevCursor))
}

func TestResolvePage_Empty(t *testing.T) {
	for _, dir := range []listing.Direction{listing.DirectionNone, listing.DirectionNext, listing.DirectionPrev} {
		r := listing.PageRequest{Order: listing.OrderAsc, Direction: dir, Cursor: "9", Limit: 5}
		page := resolvePage(nil, r, idKey)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
		assert.Nil(t, page.NextCursor, "direction %s", dir)
		assert.Nil(t, page.PrevCursor, "direction %s", dir)
	}
}

func TestResolvePage_ExactFitHasNoNextCursor(t *testing.T) {
	r := listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNone, Limit: 5}
	page := resolvePage(idRows(1, 2, 3), r, idKey)
	assert.Equal(t, []int64{1, 2, 3}, ids(page.Items))
	assert.Nil(t, page.NextCursor)
	assert.Nil(t, page.PrevCursor)
}

func TestResolvePage_NextAlwaysYieldsPrevCursor(t *testing.T) {
	r := listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNext, Cursor: "3", Limit: 5}
	page := resolvePage(idRows(4, 5), r, idKey)
	assert.Equal(t, []int64{4, 5}, ids(page.Items))
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, "4", cursorOf(t, page.PrevCursor))
}

func TestExactQuery_ComparisonAndScanOrder(t *testing.T) {
	cases := []struct {
		name      string
		order     listing.Order
		direction listing.Direction
		wantSQL   string
	}{
		{"asc next", listing.OrderAsc, listing.DirectionNext,
			"SELECT id FROM consultas WHERE id > ? ORDER BY id ASC LIMIT 6"},
		{"asc prev", listing.OrderAsc, listing.DirectionPrev,
			"SELECT id FROM consultas WHERE id < ? ORDER BY id DESC LIMIT 6"},
		{"desc next", listing.OrderDesc, listing.DirectionNext,
			"SELECT id FROM consultas WHERE id < ? ORDER BY id DESC LIMIT 6"},
		{"desc prev", listing.OrderDesc, listing.DirectionPrev,
			"SELECT id FROM consultas WHERE id > ? ORDER BY id ASC LIMIT 6"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := ExactQuery{
				Base: squirrel.Select("id").From("consultas"),
				Key:  KeyColumn{Name: "id", Kind: KeyInt64},
				Page: listing.PageRequest{Order: tc.order, Direction: tc.direction, Cursor: "42", Limit: 5},
			}

			sel, err := q.build()
			require.NoError(t, err)

			sqlStr, args, err := sel.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, sqlStr)
			assert.Equal(t, []any{int64(42)}, args)
		})
	}
}

func TestExactQuery_NoDirectionHasNoComparison(t *testing.T) {
	q := ExactQuery{
		Base: squirrel.Select("id").From("consultas").Where(squirrel.Eq{"estado": "pendiente"}),
		Key:  KeyColumn{Name: "id", Kind: KeyInt64},
		Page: listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionNone, Limit: 5},
	}

	sel, err := q.build()
	require.NoError(t, err)

	sqlStr, args, err := sel.ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM consultas WHERE estado = ? ORDER BY id DESC LIMIT 6", sqlStr)
	assert.Equal(t, []any{"pendiente"}, args)
}

func TestExactQuery_TimeKeyParsesCursorAsTimestamp(t *testing.T) {
	at := time.Date(2025, time.March, 10, 8, 30, 0, 0, time.UTC)
	q := ExactQuery{
		Base: squirrel.Select("id", "fecha_registro").From("consultas"),
		Key:  KeyColumn{Name: "fecha_registro", Kind: KeyTime},
		Page: listing.PageRequest{
			Order:     listing.OrderDesc,
			Direction: listing.DirectionNext,
			Cursor:    listing.TimeCursor(at),
			Limit:     10,
		},
	}

	sel, err := q.build()
	require.NoError(t, err)

	sqlStr, args, err := sel.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "fecha_registro < ?")
	require.Len(t, args, 1)
	assert.True(t, at.Equal(args[0].(time.Time)))
}

func TestExactQuery_ValidationErrors(t *testing.T) {
	base := squirrel.Select("id").From("consultas")
	key := KeyColumn{Name: "id", Kind: KeyInt64}

	cases := []struct {
		name string
		page listing.PageRequest
	}{
		{"zero limit", listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNone}},
		{"missing cursor", listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNext, Limit: 5}},
		{"malformed cursor", listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNext, Cursor: "abc", Limit: 5}},
		{"bad order", listing.PageRequest{Order: "sideways", Direction: listing.DirectionNone, Limit: 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExactQuery{Base: base, Key: key, Page: tc.page}.build()
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestRankedQuery_AnchorSubLookup(t *testing.T) {
	base := squirrel.Select("id", "nombres").From("usuarios").
		Where(squirrel.Expr("document_tsv @@ websearch_to_tsquery('spanish', ?)", "perez")).
		Column("ts_rank(document_tsv, websearch_to_tsquery('spanish', ?)) AS rank", "perez")

	q := RankedQuery{
		Base:  base,
		Table: "usuarios",
		Key:   KeyColumn{Name: "id", Kind: KeyInt64},
		Page:  listing.PageRequest{Order: listing.OrderAsc, Direction: listing.DirectionNext, Cursor: "15", Limit: 5},
	}

	sel, err := q.build()
	require.NoError(t, err)

	sqlStr, args, err := sel.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "id > (SELECT id FROM usuarios WHERE id = ?)")
	assert.Contains(t, sqlStr, "ORDER BY id ASC")
	assert.Contains(t, sqlStr, "LIMIT 6")
	assert.Contains(t, args, int64(15))
}

func TestRankedQuery_CustomAnchorColumnAndInversion(t *testing.T) {
	q := RankedQuery{
		Base:         squirrel.Select("id").From("usuarios"),
		Table:        "usuarios",
		AnchorColumn: "codigo",
		Key:          KeyColumn{Name: "fecha_registro", Kind: KeyTime},
		Page:         listing.PageRequest{Order: listing.OrderDesc, Direction: listing.DirectionPrev, Cursor: "7", Limit: 3},
	}

	sel, err := q.build()
	require.NoError(t, err)

	sqlStr, args, err := sel.ToSql()
	require.NoError(t, err)

	// desc + prev inverts to a forward ascending scan.
	assert.Contains(t, sqlStr, "fecha_registro > (SELECT fecha_registro FROM usuarios WHERE codigo = ?)")
	assert.Contains(t, sqlStr, "ORDER BY fecha_registro ASC")
	assert.Contains(t, sqlStr, "LIMIT 4")
	assert.Equal(t, []any{int64(7)}, args)
}

func TestRankedQuery_CursorIsAnchorIDNotKeyValue(t *testing.T) {
	// Even with a timestamp ordering key the cursor must parse as an integer
	// anchor id; a timestamp-shaped cursor is rejected.
	q := RankedQuery{
		Base:  squirrel.Select("id").From("usuarios"),
		Table: "usuarios",
		Key:   KeyColumn{Name: "fecha_registro", Kind: KeyTime},
		Page: listing.PageRequest{
			Order:     listing.OrderAsc,
			Direction: listing.DirectionNext,
			Cursor:    listing.TimeCursor(time.Now()),
			Limit:     5,
		},
	}

	_, err := q.build()
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
