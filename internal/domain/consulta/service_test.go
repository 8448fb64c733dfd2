package consulta

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"juridicol/internal/core/apperror"
	"juridicol/internal/core/numerator"
	"juridicol/internal/domain/listing"
)

type noopTx struct{}

func (noopTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memRepo struct {
	byID   map[int64]*Consulta
	nextID int64
}

func newMemRepo() *memRepo {
	return &memRepo{byID: make(map[int64]*Consulta)}
}

func (r *memRepo) Create(_ context.Context, c *Consulta) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Consulta, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("consulta", id)
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) GetByRadicado(_ context.Context, radicado string) (*Consulta, error) {
	for _, c := range r.byID {
		if c.Radicado == radicado {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("consulta", radicado)
}

func (r *memRepo) Update(_ context.Context, c *Consulta) error {
	if _, ok := r.byID[c.ID]; !ok {
		return apperror.NewNotFound("consulta", c.ID)
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *memRepo) List(context.Context, map[string]any, listing.PageRequest) (listing.Page[Consulta], error) {
	return listing.Page[Consulta]{Items: []Consulta{}}, nil
}

func (r *memRepo) ListByFecha(context.Context, map[string]any, listing.PageRequest) (listing.Page[Consulta], error) {
	return listing.Page[Consulta]{Items: []Consulta{}}, nil
}

func newTestService(repo *memRepo) *Service {
	svc := NewService(repo, noopTx{}, numerator.NewMock())
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	}
	return svc
}

func validConsulta() *Consulta {
	return &Consulta{
		Area:          AreaPenal,
		Tipo:          TipoConsulta,
		Hechos:        "hurto de celular en via publica",
		SolicitanteID: 7,
	}
}

func TestCreate_MintsRadicado(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	c := validConsulta()
	require.NoError(t, svc.Create(context.Background(), c))

	assert.Equal(t, "PE-001-2025-1", c.Radicado)
	assert.Equal(t, EstadoPendiente, c.Estado)
	assert.False(t, c.FechaRegistro.IsZero())

	// Sequence advances per area within the period.
	c2 := validConsulta()
	require.NoError(t, svc.Create(context.Background(), c2))
	assert.Equal(t, "PE-002-2025-1", c2.Radicado)

	// A different area runs its own sequence.
	c3 := validConsulta()
	c3.Area = AreaLaboral
	require.NoError(t, svc.Create(context.Background(), c3))
	assert.Equal(t, "LA-001-2025-1", c3.Radicado)
}

func TestCreate_ValidationFailuresDoNotAllocate(t *testing.T) {
	repo := newMemRepo()
	gen := numerator.NewMock()
	svc := NewService(repo, noopTx{}, gen)

	cases := []func(*Consulta){
		func(c *Consulta) { c.Area = "mercantil" },
		func(c *Consulta) { c.Tipo = "tramite" },
		func(c *Consulta) { c.Hechos = "" },
		func(c *Consulta) { c.SolicitanteID = 0 },
	}

	for _, mutate := range cases {
		c := validConsulta()
		mutate(c)
		err := svc.Create(context.Background(), c)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	}

	assert.Zero(t, gen.Current(numerator.CounterKey{Area: "PE", Period: "2025-1"}))
	assert.Empty(t, repo.byID)
}

func TestAsignar_TransitionsPendingToAssigned(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	c := validConsulta()
	require.NoError(t, svc.Create(context.Background(), c))

	got, err := svc.Asignar(context.Background(), c.ID, 33)
	require.NoError(t, err)
	assert.Equal(t, EstadoAsignada, got.Estado)
	require.NotNil(t, got.EstudianteID)
	assert.Equal(t, int64(33), *got.EstudianteID)
	assert.NotNil(t, got.FechaAsignacion)

	// Assigning twice is an illegal transition.
	_, err = svc.Asignar(context.Background(), c.ID, 34)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidStateTransition, appErr.Code)
}

func TestFinalizar_RequiresAssignedState(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	c := validConsulta()
	require.NoError(t, svc.Create(context.Background(), c))

	// pendiente → finalizada skips a state.
	_, err := svc.Finalizar(context.Background(), c.ID)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidStateTransition, appErr.Code)

	_, err = svc.Asignar(context.Background(), c.ID, 33)
	require.NoError(t, err)

	got, err := svc.Finalizar(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, EstadoFinalizada, got.Estado)
	assert.NotNil(t, got.FechaFinalizacion)
}

func TestUpdate_PreservesManagedFields(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	c := validConsulta()
	require.NoError(t, svc.Create(context.Background(), c))

	edit := validConsulta()
	edit.ID = c.ID
	edit.Hechos = "hechos corregidos"
	edit.Radicado = "XX-999-1999-1" // must be ignored
	edit.Estado = EstadoFinalizada  // must be ignored
	require.NoError(t, svc.Update(context.Background(), edit))

	stored, err := svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "hechos corregidos", stored.Hechos)
	assert.Equal(t, c.Radicado, stored.Radicado)
	assert.Equal(t, EstadoPendiente, stored.Estado)

	_, err = svc.Asignar(context.Background(), c.ID, 55)
	require.NoError(t, err)

	edit.EstudianteID = nil // must not clear the assignment
	require.NoError(t, svc.Update(context.Background(), edit))

	stored, err = svc.Get(context.Background(), c.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.EstudianteID)
	assert.Equal(t, int64(55), *stored.EstudianteID)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(EstadoPendiente, EstadoAsignada))
	assert.True(t, CanTransition(EstadoAsignada, EstadoFinalizada))
	assert.False(t, CanTransition(EstadoPendiente, EstadoFinalizada))
	assert.False(t, CanTransition(EstadoFinalizada, EstadoAsignada))
	assert.False(t, CanTransition(EstadoAsignada, EstadoPendiente))
}
