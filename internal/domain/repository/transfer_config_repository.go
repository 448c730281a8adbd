package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// TransferConfigRepository define el puerto de persistencia para TransferConfig.
// La regla "una sola configuración activa" la aplica el caso de uso con
// DeactivateAll antes de guardar; no es transaccional (último guardado gana).
type TransferConfigRepository interface {
	Save(ctx context.Context, cfg *entity.TransferConfig) error
	GetByID(ctx context.Context, id int64) (*entity.TransferConfig, error)
	GetActive(ctx context.Context) (*entity.TransferConfig, error)
	DeactivateAll(ctx context.Context) error
	List(ctx context.Context) ([]*entity.TransferConfig, error)
	Delete(ctx context.Context, id int64) error
}
