package case_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"juridicol/internal/domain/consulta"
	"juridicol/internal/domain/listing"
	"juridicol/internal/infrastructure/storage/postgres"
)

const consultaTable = "consultas"

// ConsultaRepo implements consulta.Repository.
type ConsultaRepo struct {
	baseRepo
}

var _ consulta.Repository = (*ConsultaRepo)(nil)

// NewConsultaRepo creates the consultation repository.
func NewConsultaRepo(tx *postgres.TxManager) *ConsultaRepo {
	return &ConsultaRepo{
		baseRepo: newBaseRepo(tx, consultaTable, postgres.ExtractDBColumns[consulta.Consulta]()),
	}
}

func (r *ConsultaRepo) Create(ctx context.Context, c *consulta.Consulta) error {
	id, err := r.insert(ctx, postgres.StructToMap(c))
	if err != nil {
		return err
	}
	c.ID = id
	return nil
}

func (r *ConsultaRepo) GetByID(ctx context.Context, id int64) (*consulta.Consulta, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"id": id})
	return getOne[consulta.Consulta](ctx, &r.baseRepo, sel, id)
}

func (r *ConsultaRepo) GetByRadicado(ctx context.Context, radicado string) (*consulta.Consulta, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"radicado": radicado})
	return getOne[consulta.Consulta](ctx, &r.baseRepo, sel, radicado)
}

func (r *ConsultaRepo) Update(ctx context.Context, c *consulta.Consulta) error {
	return r.update(ctx, c.ID, postgres.StructToMap(c))
}

func (r *ConsultaRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

// List pages by id. Filters may reach into the applicant through a join,
// e.g. {"s": {"tipo_identificacion": "CC"}}.
func (r *ConsultaRepo) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[consulta.Consulta], error) {
	q := postgres.ExactQuery{
		Base: r.filteredSelect(filter),
		Key:  postgres.KeyColumn{Name: "c.id", Kind: postgres.KeyInt64},
		Page: page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, consultaIDCursor)
}

// ListByFecha pages by registration timestamp.
func (r *ConsultaRepo) ListByFecha(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[consulta.Consulta], error) {
	q := postgres.ExactQuery{
		Base: r.filteredSelect(filter),
		Key:  postgres.KeyColumn{Name: "c.fecha_registro", Kind: postgres.KeyTime},
		Page: page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, func(c consulta.Consulta) listing.Cursor {
		return listing.TimeCursor(c.FechaRegistro)
	})
}

func consultaIDCursor(c consulta.Consulta) listing.Cursor {
	return listing.Int64Cursor(c.ID)
}

// filteredSelect builds the aliased scan the list variants share. The join is
// only for filtering; columns come from consultas alone.
func (r *ConsultaRepo) filteredSelect(filter map[string]any) squirrel.SelectBuilder {
	cols := make([]string, len(r.cols))
	for i, col := range r.cols {
		cols[i] = "c." + col
	}

	sel := r.builder().
		Select(cols...).
		From(consultaTable + " c").
		Join(solicitanteTable + " s ON s.id = c.solicitante_id")

	if pred := postgres.BuildConditions(filter); pred != nil {
		sel = sel.Where(pred)
	}
	return sel
}
