package entity

import "time"

// Category representa una categoría de productos. El ID lo asigna el ERP
// externo (9 dígitos en el registro de intercambio).
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
