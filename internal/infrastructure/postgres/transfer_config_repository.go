package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
)

var _ repository.TransferConfigRepository = (*TransferConfigRepo)(nil)

const transferConfigColumns = `id, name, host, port, username, password, remote_dir, active, created_at, updated_at`

// TransferConfigRepo implementación del puerto TransferConfigRepository sobre PostgreSQL.
type TransferConfigRepo struct {
	q Querier
}

// NewTransferConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferConfigRepository(q Querier) *TransferConfigRepo {
	return &TransferConfigRepo{q: q}
}

// Save inserta (ID cero) o actualiza (ID asignado) la configuración.
func (r *TransferConfigRepo) Save(ctx context.Context, cfg *entity.TransferConfig) error {
	if cfg.ID == 0 {
		query := `
			INSERT INTO transfer_configs (name, host, port, username, password, remote_dir, active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`
		err := r.q.QueryRow(ctx, query,
			cfg.Name, cfg.Host, cfg.Port, cfg.Username, cfg.Password,
			cfg.RemoteDir, cfg.Active, cfg.CreatedAt, cfg.UpdatedAt,
		).Scan(&cfg.ID)
		if err != nil {
			return fmt.Errorf("insert transfer config: %w", err)
		}
		return nil
	}
	query := `
		UPDATE transfer_configs
		SET name = $2, host = $3, port = $4, username = $5, password = $6,
		    remote_dir = $7, active = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		cfg.ID, cfg.Name, cfg.Host, cfg.Port, cfg.Username, cfg.Password,
		cfg.RemoteDir, cfg.Active, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update transfer config: %w", err)
	}
	return nil
}

// GetByID obtiene una configuración por ID; nil si no existe.
func (r *TransferConfigRepo) GetByID(ctx context.Context, id int64) (*entity.TransferConfig, error) {
	query := `SELECT ` + transferConfigColumns + ` FROM transfer_configs WHERE id = $1`
	cfg, err := scanTransferConfig(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer config: %w", err)
	}
	return cfg, nil
}

// GetActive devuelve la configuración activa, o nil si no hay ninguna. Si por
// una carrera quedara más de una, gana la de guardado más reciente.
func (r *TransferConfigRepo) GetActive(ctx context.Context) (*entity.TransferConfig, error) {
	query := `SELECT ` + transferConfigColumns + ` FROM transfer_configs WHERE active ORDER BY updated_at DESC LIMIT 1`
	cfg, err := scanTransferConfig(r.q.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active transfer config: %w", err)
	}
	return cfg, nil
}

// DeactivateAll apaga todas las configuraciones activas.
func (r *TransferConfigRepo) DeactivateAll(ctx context.Context) error {
	_, err := r.q.Exec(ctx, `UPDATE transfer_configs SET active = false, updated_at = now() WHERE active`)
	if err != nil {
		return fmt.Errorf("deactivate transfer configs: %w", err)
	}
	return nil
}

// List lista todas las configuraciones por ID.
func (r *TransferConfigRepo) List(ctx context.Context) ([]*entity.TransferConfig, error) {
	query := `SELECT ` + transferConfigColumns + ` FROM transfer_configs ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transfer configs: %w", err)
	}
	defer rows.Close()

	var out []*entity.TransferConfig
	for rows.Next() {
		cfg, err := scanTransferConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer config: %w", err)
		}
		out = append(out, cfg)
	}
	return out, rows.Err()
}

// Delete elimina una configuración por ID.
func (r *TransferConfigRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM transfer_configs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transfer config: %w", err)
	}
	return nil
}

func scanTransferConfig(row pgx.Row) (*entity.TransferConfig, error) {
	var cfg entity.TransferConfig
	err := row.Scan(
		&cfg.ID, &cfg.Name, &cfg.Host, &cfg.Port, &cfg.Username, &cfg.Password,
		&cfg.RemoteDir, &cfg.Active, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
