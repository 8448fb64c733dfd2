package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type auditFields struct {
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt"`
}

type mockRow struct {
	auditFields
	ID        int64  `db:"id" json:"id"`
	Nombre    string `db:"nombre" json:"nombre"`
	ObjectKey string `db:"object_key" json:"-"`
	Skipped   string `db:"-" json:"skipped"`
	Untagged  string
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockRow]()

	expected := []string{"created_at", "updated_at", "id", "nombre", "object_key"}
	assert.ElementsMatch(t, expected, cols)
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	row := mockRow{
		auditFields: auditFields{CreatedAt: now, UpdatedAt: &now},
		ID:          7,
		Nombre:      "Expediente",
		ObjectKey:   "consultas/7/abc",
		Skipped:     "never stored",
		Untagged:    "never stored either",
	}

	m := StructToMap(row)

	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, "Expediente", m["nombre"])
	assert.Equal(t, "consultas/7/abc", m["object_key"])
	assert.Equal(t, now, m["created_at"])
	assert.Equal(t, &now, m["updated_at"])
	assert.Len(t, m, 5)
}

func TestStructToMap_PointerAndNonStruct(t *testing.T) {
	row := &mockRow{ID: 3, Nombre: "x"}

	m := StructToMap(row)
	assert.Equal(t, int64(3), m["id"])

	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("not a struct"))
}
