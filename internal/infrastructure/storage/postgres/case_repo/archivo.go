package case_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"juridicol/internal/domain/archivo"
	"juridicol/internal/domain/listing"
	"juridicol/internal/infrastructure/storage/postgres"
)

const archivoTable = "archivos"

// ArchivoRepo implements archivo.Repository.
type ArchivoRepo struct {
	baseRepo
}

var _ archivo.Repository = (*ArchivoRepo)(nil)

// NewArchivoRepo creates the attachment metadata repository.
func NewArchivoRepo(tx *postgres.TxManager) *ArchivoRepo {
	return &ArchivoRepo{
		baseRepo: newBaseRepo(tx, archivoTable, postgres.ExtractDBColumns[archivo.Archivo]()),
	}
}

func (r *ArchivoRepo) Create(ctx context.Context, a *archivo.Archivo) error {
	id, err := r.insert(ctx, postgres.StructToMap(a))
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *ArchivoRepo) GetByID(ctx context.Context, id int64) (*archivo.Archivo, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"id": id})
	return getOne[archivo.Archivo](ctx, &r.baseRepo, sel, id)
}

func (r *ArchivoRepo) Delete(ctx context.Context, id int64) error {
	return r.delete(ctx, id)
}

func (r *ArchivoRepo) ListByConsulta(ctx context.Context, consultaID int64, page listing.PageRequest) (listing.Page[archivo.Archivo], error) {
	q := postgres.ExactQuery{
		Base: r.baseSelect().Where(squirrel.Eq{"consulta_id": consultaID}),
		Key:  postgres.KeyColumn{Name: "id", Kind: postgres.KeyInt64},
		Page: page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, func(a archivo.Archivo) listing.Cursor {
		return listing.Int64Cursor(a.ID)
	})
}
