package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida aceptadas por el POS (código corto en minúscula).
var UnitMeasures = []string{"un", "mg", "g", "kg", "mm", "cm", "m", "km", "ml", "l"}

// Product representa un producto del catálogo. El ID lo asigna el ERP externo y
// funciona como código de barras (13 dígitos en el registro de intercambio).
// Ref guarda el registro posicional de 217 caracteres ya codificado; se
// regenera en cada guardado y en cada actualización de stock.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Quantity     int64           // stock, puede ser negativo
	Price        decimal.Decimal // precio de venta (2 decimales)
	UnitMeasure  string          // un, mg, g, kg, mm, cm, m, km, ml, l
	MeasureValue decimal.Decimal // valor de la medida (2 decimales)
	CategoryID   *int64          // nil si no tiene categoría
	Ref          string          // registro posicional cacheado (217 chars)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidUnitMeasure indica si el código de unidad es uno de los aceptados.
func ValidUnitMeasure(u string) bool {
	for _, m := range UnitMeasures {
		if m == u {
			return true
		}
	}
	return false
}
