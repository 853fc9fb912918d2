package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.WifiRepository = (*WifiRepo)(nil)

// WifiRepo redes WiFi publicadas por cada negocio.
type WifiRepo struct {
	db DBTX
}

func NewWifiRepository(db DBTX) *WifiRepo {
	return &WifiRepo{db: db}
}

const wifiColumns = `id, business_id, ssid, password, security, hidden, position, created_at, updated_at`

func (r *WifiRepo) Create(ctx context.Context, w *entity.WifiNetwork) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO wifi_networks (business_id, ssid, password, security, hidden, position, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		w.BusinessID, w.SSID, w.Password, w.Security, w.Hidden, w.Position, w.CreatedAt, w.UpdatedAt,
	).Scan(&w.ID)
	if err != nil {
		return wrap("insert wifi", err)
	}
	return nil
}

func (r *WifiRepo) GetByID(ctx context.Context, id int64) (*entity.WifiNetwork, error) {
	w, err := scanWifi(r.db.QueryRow(ctx, `SELECT `+wifiColumns+` FROM wifi_networks WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, wrap("get wifi", err)
	}
	return w, nil
}

func (r *WifiRepo) Update(ctx context.Context, w *entity.WifiNetwork) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE wifi_networks
		SET ssid = $2, password = $3, security = $4, hidden = $5, position = $6, updated_at = $7
		WHERE id = $1`,
		w.ID, w.SSID, w.Password, w.Security, w.Hidden, w.Position, w.UpdatedAt,
	)
	if err != nil {
		return wrap("update wifi", err)
	}
	return mustAffect(tag)
}

func (r *WifiRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM wifi_networks WHERE id = $1`, id)
	if err != nil {
		return wrap("delete wifi", err)
	}
	return mustAffect(tag)
}

func (r *WifiRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*entity.WifiNetwork, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+wifiColumns+` FROM wifi_networks WHERE business_id = $1 ORDER BY position, id`, businessID)
	if err != nil {
		return nil, wrap("list wifi", err)
	}
	defer rows.Close()
	var list []*entity.WifiNetwork
	for rows.Next() {
		w, err := scanWifi(rows)
		if err != nil {
			return nil, wrap("scan wifi", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

func scanWifi(row pgx.Row) (*entity.WifiNetwork, error) {
	var w entity.WifiNetwork
	if err := row.Scan(&w.ID, &w.BusinessID, &w.SSID, &w.Password, &w.Security, &w.Hidden, &w.Position,
		&w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
