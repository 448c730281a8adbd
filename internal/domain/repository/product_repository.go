package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Upsert es la operación que usa la importación: crea o actualiza por ID
// (el ID lo asigna el ERP) y reporta si hubo creación.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Upsert(ctx context.Context, product *entity.Product) (created bool, err error)
	UpdateStockAndRef(ctx context.Context, id int64, quantity int64, ref string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id int64) error
}
