package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Tienda-api/internal/application/dto"
	"github.com/jhoicas/Tienda-api/internal/domain"
	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/internal/domain/repository"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// OrderExporterPort puerto hacia el exportador de pedidos. La implementación
// real sube pedido_<id>.txt al servidor FTP/SFTP configurado.
type OrderExporterPort interface {
	Export(ctx context.Context, order *entity.Order) error
}

// OrderUseCase casos de uso de pedidos. Completar un pedido descuenta stock,
// regenera los registros cacheados de los productos afectados y dispara la
// exportación del archivo; un fallo de transferencia no revierte el pedido.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	exporter OrderExporterPort
	log      *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, exporter OrderExporterPort, log *logger.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, exporter: exporter, log: log}
}

// Create crea un pedido con sus líneas.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		Customer:  in.Customer,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, item := range in.Items {
		product, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene un pedido por ID.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// List lista pedidos con paginación.
func (uc *OrderUseCase) List(ctx context.Context, limit, offset int) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Complete marca un pedido como completo: descuenta el stock de cada producto,
// regenera su registro cacheado y exporta el archivo del pedido. El descuento
// de stock y el estado del pedido quedan firmes aunque la exportación falle.
func (uc *OrderUseCase) Complete(ctx context.Context, id int64) (*dto.CompleteOrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Complete {
		return nil, domain.ErrOrderComplete
	}

	for i := range order.Items {
		item := &order.Items[i]
		product, err := uc.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// Producto borrado después de crear el pedido: la línea no viaja
			// en el archivo pero el pedido se completa igual.
			uc.log.Warn().
				Int64("pedido", id).
				Int64("producto", item.ProductID).
				Msg("producto del pedido no existe, línea omitida")
			item.ProductRef = ""
			continue
		}
		product.Quantity -= item.Quantity
		ref := encodeRef(product)
		if err := uc.products.UpdateStockAndRef(ctx, product.ID, product.Quantity, ref); err != nil {
			return nil, err
		}
		item.ProductRef = ref
	}

	if err := uc.orders.MarkComplete(ctx, id); err != nil {
		return nil, err
	}
	order.Complete = true
	order.UpdatedAt = time.Now()

	resp := &dto.CompleteOrderResponse{Order: *toOrderResponse(order), Exported: true}
	if err := uc.exporter.Export(ctx, order); err != nil {
		uc.log.Error().Err(err).Int64("pedido", id).Msg("exportación del pedido fallida")
		resp.Exported = false
		resp.ExportError = err.Error()
	}
	return resp, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Customer:  o.Customer,
		Complete:  o.Complete,
		Items:     items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
