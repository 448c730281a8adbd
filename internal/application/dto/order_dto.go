package dto

import "time"

// CreateOrderRequest entrada para crear un pedido con sus líneas.
type CreateOrderRequest struct {
	Customer string                   `json:"customer" validate:"omitempty,max=200"`
	Items    []CreateOrderItemRequest `json:"items" validate:"required,min=1"`
}

// CreateOrderItemRequest línea del pedido.
type CreateOrderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
	Quantity  int64 `json:"quantity" validate:"required,min=1"`
}

// OrderItemResponse línea del pedido en respuestas.
type OrderItemResponse struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID        int64               `json:"id"`
	Customer  string              `json:"customer,omitempty"`
	Complete  bool                `json:"complete"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CompleteOrderResponse resultado de marcar un pedido completo. Exported
// indica si el archivo pedido_<id>.txt llegó al servidor; un fallo de
// transferencia no revierte el estado del pedido.
type CompleteOrderResponse struct {
	Order       OrderResponse `json:"order"`
	Exported    bool          `json:"exported"`
	ExportError string        `json:"export_error,omitempty"`
}
