package postgres

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conditionsSQL(t *testing.T, filter map[string]any) (string, []any) {
	t.Helper()
	pred := BuildConditions(filter)
	require.NotNil(t, pred)
	sqlStr, args, err := pred.ToSql()
	require.NoError(t, err)
	return sqlStr, args
}

func TestBuildConditions_DropsNilAndEmptyString(t *testing.T) {
	filter := map[string]any{
		"a": "",
		"b": nil,
		"c": map[string]any{"d": "x"},
	}

	sqlStr, args := conditionsSQL(t, filter)
	assert.Equal(t, "(c.d = ?)", sqlStr)
	assert.Equal(t, []any{"x"}, args)
}

func TestBuildConditions_NothingSurvives(t *testing.T) {
	assert.Nil(t, BuildConditions(nil))
	assert.Nil(t, BuildConditions(map[string]any{}))
	assert.Nil(t, BuildConditions(map[string]any{"a": "", "b": nil}))
	assert.Nil(t, BuildConditions(map[string]any{"rel": map[string]any{"x": nil}}))
}

func TestBuildConditions_SliceRendersAsIn(t *testing.T) {
	sqlStr, args := conditionsSQL(t, map[string]any{
		"estado": []string{"pendiente", "asignada"},
	})
	assert.Equal(t, "(estado IN (?,?))", sqlStr)
	assert.Equal(t, []any{"pendiente", "asignada"}, args)
}

func TestBuildConditions_NestedMapQualifiesColumns(t *testing.T) {
	sqlStr, args := conditionsSQL(t, map[string]any{
		"area": "penal",
		"solicitante": map[string]any{
			"tipo_identificacion": "CC",
			"discapacidad":        "",
		},
	})
	assert.Equal(t, "(area = ? AND solicitante.tipo_identificacion = ?)", sqlStr)
	assert.Equal(t, []any{"penal", "CC"}, args)
}

func TestBuildConditions_DeterministicKeyOrder(t *testing.T) {
	filter := map[string]any{"b": 2, "a": 1, "c": 3}
	want := "(a = ? AND b = ? AND c = ?)"
	for i := 0; i < 20; i++ {
		sqlStr, args := conditionsSQL(t, filter)
		require.Equal(t, want, sqlStr)
		require.Equal(t, []any{1, 2, 3}, args)
	}
}

func TestBuildConditions_NonStringZeroValuesAreKept(t *testing.T) {
	// Only nil and the empty string mean "no filter"; a zero int or false is
	// a real predicate.
	sqlStr, args := conditionsSQL(t, map[string]any{
		"activo":   false,
		"intentos": 0,
	})
	assert.Equal(t, "(activo = ? AND intentos = ?)", sqlStr)
	assert.Equal(t, []any{false, 0}, args)
}

func TestBuildConditions_ComposesWithSelectBuilder(t *testing.T) {
	pred := BuildConditions(map[string]any{"estado": "pendiente"})
	sqlStr, args, err := squirrel.Select("id").From("consultas").Where(pred).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM consultas WHERE (estado = ?)", sqlStr)
	assert.Equal(t, []any{"pendiente"}, args)
}
