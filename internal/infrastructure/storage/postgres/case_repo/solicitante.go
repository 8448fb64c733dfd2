package case_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"juridicol/internal/domain/listing"
	"juridicol/internal/domain/solicitante"
	"juridicol/internal/infrastructure/storage/postgres"
)

const solicitanteTable = "solicitantes"

// SolicitanteRepo implements solicitante.Repository.
type SolicitanteRepo struct {
	baseRepo
}

var _ solicitante.Repository = (*SolicitanteRepo)(nil)

// NewSolicitanteRepo creates the applicant repository.
func NewSolicitanteRepo(tx *postgres.TxManager) *SolicitanteRepo {
	return &SolicitanteRepo{
		baseRepo: newBaseRepo(tx, solicitanteTable, postgres.ExtractDBColumns[solicitante.Solicitante]()),
	}
}

func (r *SolicitanteRepo) Create(ctx context.Context, s *solicitante.Solicitante) error {
	id, err := r.insert(ctx, postgres.StructToMap(s))
	if err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *SolicitanteRepo) GetByID(ctx context.Context, id int64) (*solicitante.Solicitante, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"id": id})
	return getOne[solicitante.Solicitante](ctx, &r.baseRepo, sel, id)
}

func (r *SolicitanteRepo) GetByIdentificacion(ctx context.Context, tipo solicitante.TipoIdentificacion, numero string) (*solicitante.Solicitante, error) {
	sel := r.baseSelect().Where(squirrel.Eq{
		"tipo_identificacion":   string(tipo),
		"numero_identificacion": numero,
	})
	return getOne[solicitante.Solicitante](ctx, &r.baseRepo, sel, numero)
}

func (r *SolicitanteRepo) Update(ctx context.Context, s *solicitante.Solicitante) error {
	return r.update(ctx, s.ID, postgres.StructToMap(s))
}

func (r *SolicitanteRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *SolicitanteRepo) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[solicitante.Solicitante], error) {
	sel := r.baseSelect()
	if pred := postgres.BuildConditions(filter); pred != nil {
		sel = sel.Where(pred)
	}

	q := postgres.ExactQuery{
		Base: sel,
		Key:  postgres.KeyColumn{Name: "id", Kind: postgres.KeyInt64},
		Page: page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, func(s solicitante.Solicitante) listing.Cursor {
		return listing.Int64Cursor(s.ID)
	})
}
