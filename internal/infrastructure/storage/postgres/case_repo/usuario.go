package case_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"juridicol/internal/domain/listing"
	"juridicol/internal/domain/usuario"
	"juridicol/internal/infrastructure/storage/postgres"
)

const usuarioTable = "usuarios"

// UsuarioRepo implements usuario.Repository.
type UsuarioRepo struct {
	baseRepo
}

var _ usuario.Repository = (*UsuarioRepo)(nil)

// NewUsuarioRepo creates the user account repository.
func NewUsuarioRepo(tx *postgres.TxManager) *UsuarioRepo {
	return &UsuarioRepo{
		baseRepo: newBaseRepo(tx, usuarioTable, postgres.ExtractDBColumns[usuario.Usuario]()),
	}
}

func (r *UsuarioRepo) Create(ctx context.Context, u *usuario.Usuario) error {
	id, err := r.insert(ctx, postgres.StructToMap(u))
	if err != nil {
		return err
	}
	u.ID = id
	return nil
}

func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*usuario.Usuario, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"id": id})
	return getOne[usuario.Usuario](ctx, &r.baseRepo, sel, id)
}

func (r *UsuarioRepo) GetByCodigo(ctx context.Context, codigo string) (*usuario.Usuario, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"codigo": codigo})
	return getOne[usuario.Usuario](ctx, &r.baseRepo, sel, codigo)
}

func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*usuario.Usuario, error) {
	sel := r.baseSelect().Where(squirrel.Eq{"correo_electronico": email})
	return getOne[usuario.Usuario](ctx, &r.baseRepo, sel, email)
}

func (r *UsuarioRepo) Update(ctx context.Context, u *usuario.Usuario) error {
	return r.update(ctx, u.ID, postgres.StructToMap(u))
}

func (r *UsuarioRepo) List(ctx context.Context, filter map[string]any, page listing.PageRequest) (listing.Page[usuario.Usuario], error) {
	sel := r.baseSelect()
	if pred := postgres.BuildConditions(filter); pred != nil {
		sel = sel.Where(pred)
	}

	q := postgres.ExactQuery{
		Base: sel,
		Key:  postgres.KeyColumn{Name: "id", Kind: postgres.KeyInt64},
		Page: page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, usuarioIDCursor)
}

// Search pages accounts by full-text match over names, code and email,
// ranked by relevance with id as the unique scan key. Cursors carry the
// anchor row id; the anchor's key value is resolved by a sub-lookup inside
// the pager, never re-serialized through the cursor.
func (r *UsuarioRepo) Search(ctx context.Context, query string, page listing.PageRequest) (listing.Page[usuario.Usuario], error) {
	tsquery := squirrel.Expr(
		"to_tsvector('spanish', nombres || ' ' || apellidos || ' ' || codigo || ' ' || correo_electronico)"+
			" @@ websearch_to_tsquery('spanish', ?)", query)

	q := postgres.RankedQuery{
		Base:  r.baseSelect().Where(tsquery),
		Table: usuarioTable,
		Key:   postgres.KeyColumn{Name: "id", Kind: postgres.KeyInt64},
		Page:  page,
	}
	return postgres.Paginate(ctx, r.tx.GetQuerier(ctx), q, usuarioIDCursor)
}

func usuarioIDCursor(u usuario.Usuario) listing.Cursor {
	return listing.Int64Cursor(u.ID)
}
