package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Upsert(ctx context.Context, category *entity.Category) (created bool, err error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Delete(ctx context.Context, id int64) error
}
