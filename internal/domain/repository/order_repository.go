package repository

import (
	"context"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order y sus líneas.
// GetByID carga el pedido con sus items y el Ref cacheado de cada producto.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id int64) (*entity.Order, error)
	MarkComplete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
}
