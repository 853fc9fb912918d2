package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migration par up/down de una versión. Archivos: 0001_nombre.up.sql / 0001_nombre.down.sql.
type migration struct {
	version  int
	name     string
	upFile   string
	downFile string
}

var migFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.(up|down)\.sql$`)

// loadMigrations lee las migraciones embebidas ordenadas por versión.
func loadMigrations(fsys fs.FS) ([]migration, error) {
	entries, err := fs.ReadDir(fsys, "migrations")
	if err != nil {
		return nil, fmt.Errorf("leer migraciones: %w", err)
	}
	byVersion := map[int]migration{}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		m := migFileRe.FindStringSubmatch(de.Name())
		if m == nil {
			continue
		}
		ver, _ := strconv.Atoi(m[1])
		item := byVersion[ver]
		item.version = ver
		item.name = m[2]
		if m[3] == "up" {
			item.upFile = "migrations/" + de.Name()
		} else {
			item.downFile = "migrations/" + de.Name()
		}
		byVersion[ver] = item
	}
	list := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.upFile == "" {
			return nil, fmt.Errorf("falta la migración up de la versión %04d", m.version)
		}
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].version < list[j].version })
	return list, nil
}

// Migrate aplica, cada una en su transacción, las migraciones que aún no estén en schema_migrations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) (applied int, err error) {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return 0, wrap("crear schema_migrations", err)
	}

	migs, err := loadMigrations(migrationsFS)
	if err != nil {
		return 0, err
	}
	done, err := appliedVersions(ctx, pool)
	if err != nil {
		return 0, err
	}
	for _, m := range migs {
		if done[m.version] {
			continue
		}
		text, err := migrationsFS.ReadFile(m.upFile)
		if err != nil {
			return applied, err
		}
		err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(text)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migración %04d_%s: %w", m.version, m.name, err)
		}
		applied++
	}
	return applied, nil
}

// RollbackLast revierte la última migración aplicada usando su script down.
func RollbackLast(ctx context.Context, pool *pgxpool.Pool) error {
	var version int
	err := pool.QueryRow(ctx, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if isNoRows(err) {
		return nil
	}
	if err != nil {
		return wrap("última migración", err)
	}
	migs, err := loadMigrations(migrationsFS)
	if err != nil {
		return err
	}
	for _, m := range migs {
		if m.version != version {
			continue
		}
		if m.downFile == "" {
			return fmt.Errorf("la versión %04d no tiene migración down", version)
		}
		text, err := migrationsFS.ReadFile(m.downFile)
		if err != nil {
			return err
		}
		return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
			if _, err := tx.Exec(ctx, string(text)); err != nil {
				return err
			}
			_, err := tx.Exec(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version)
			return err
		})
	}
	return fmt.Errorf("versión %04d aplicada pero desconocida", version)
}

func appliedVersions(ctx context.Context, pool *pgxpool.Pool) (map[int]bool, error) {
	rows, err := pool.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, wrap("versiones aplicadas", err)
	}
	defer rows.Close()
	got := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		got[v] = true
	}
	return got, rows.Err()
}
