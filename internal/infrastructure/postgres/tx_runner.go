package postgres

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunAs inicia una transacción, fija el principal para las políticas de fila
// (app.principal_role, app.principal_business_id; válidos solo dentro de la tx),
// ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunAs(ctx context.Context, sess *entity.Session, fn func(repos usecase.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return wrap("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	role, businessID := principal(sess)
	if _, err := tx.Exec(ctx,
		`SELECT set_config('app.principal_role', $1, true), set_config('app.principal_business_id', $2, true)`,
		role, businessID,
	); err != nil {
		return wrap("set principal", err)
	}

	repos := usecase.Repos{
		Users:      NewUserRepository(tx),
		Businesses: NewBusinessRepository(tx),
		Menu:       NewMenuRepository(tx),
		Wifi:       NewWifiRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrap("commit transaction", err)
	}
	return nil
}

// principal traduce la sesión a los valores que leen las políticas. Sin sesión: anonymous.
func principal(sess *entity.Session) (role, businessID string) {
	if sess == nil {
		return "anonymous", ""
	}
	switch {
	case sess.Role == entity.RoleAdmin:
		return entity.RoleAdmin, ""
	case sess.BusinessID != nil:
		return entity.RoleOwner, strconv.FormatInt(*sess.BusinessID, 10)
	default:
		return entity.RoleUser, ""
	}
}
