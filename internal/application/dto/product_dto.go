package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El ID lo asigna el ERP
// (es el código de barras del registro de intercambio), por eso viene en el
// body y no lo genera la aplicación.
type CreateProductRequest struct {
	ID           int64           `json:"id" validate:"required,min=1"`
	Name         string          `json:"name" validate:"required,max=255"`
	Description  string          `json:"description" validate:"omitempty"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price" validate:"required"`
	UnitMeasure  string          `json:"unit_measure" validate:"omitempty"`
	MeasureValue decimal.Decimal `json:"measure_value"`
	CategoryID   *int64          `json:"category_id,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	UnitMeasure  *string          `json:"unit_measure,omitempty"`
	MeasureValue *decimal.Decimal `json:"measure_value,omitempty"`
	CategoryID   *int64           `json:"category_id,omitempty"`
}

// ProductResponse salida de un producto. Ref es el registro posicional de 217
// caracteres cacheado (regenerado en cada guardado).
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Quantity     int64           `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	UnitMeasure  string          `json:"unit_measure"`
	MeasureValue decimal.Decimal `json:"measure_value"`
	CategoryID   *int64          `json:"category_id,omitempty"`
	Ref          string          `json:"ref"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
