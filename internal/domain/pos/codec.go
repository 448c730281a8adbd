// Package pos implementa el códec de registros posicionales de ancho fijo con
// el que la tienda intercambia catálogo y pedidos con el POS/ERP externo.
//
// Registro de producto (217 caracteres):
//
//	[0:13)    código de barras (ID), ceros a la izquierda
//	[13:173)  descripción, espacios a la derecha
//	[173:177) unidad de medida, mayúscula, espacios a la derecha
//	[177:187) valor en centavos, ceros a la izquierda
//	[187:197) stock con signo, ceros a la izquierda
//	[197:207) valor de la medida en centavos, ceros a la izquierda
//	[207:217) categoría, ceros a la izquierda ("0000000000" si no tiene)
//
// La variante de importación PRODUTOS.TXT trae 207 caracteres: el mismo
// registro sin el campo de categoría. El registro de categoría tiene 111
// caracteres: ID en 9 + nombre en 102.
package pos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Longitudes de registro.
const (
	ProductRecordLen  = 217 // exportación (con categoría)
	ProductImportLen  = 207 // importación (sin categoría)
	CategoryRecordLen = 111 // ID(9) + nombre(102)
	CategoryMinLen    = 9   // mínimo decodificable: solo el ID
)

// Anchos de campo.
const (
	barcodeWidth      = 13
	nameWidth         = 160
	unitWidth         = 4
	numWidth          = 10
	categoryNameWidth = 102
)

// ProductRecord campos tipados de un registro de producto.
type ProductRecord struct {
	ID           int64
	Name         string
	Unit         string
	Price        decimal.Decimal
	Stock        int64
	MeasureValue decimal.Decimal
	CategoryID   *int64 // nil si el registro no trae categoría o trae cero
}

// CategoryRecord campos tipados de un registro de categoría.
type CategoryRecord struct {
	ID   int64
	Name string
}

// LengthError línea más corta que el mínimo del formato.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("longitud inválida: %d caracteres, se esperaban al menos %d", e.Actual, e.Expected)
}

// FieldError campo con contenido no interpretable (ej. ID no numérico).
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("campo %s inválido: %q", e.Field, e.Value)
}

// EmptyFieldError campo obligatorio en blanco.
type EmptyFieldError struct {
	Field string
}

func (e *EmptyFieldError) Error() string {
	return fmt.Sprintf("campo %s vacío", e.Field)
}

// EncodeProduct serializa el registro de 217 caracteres. El nombre se
// normaliza a Latin-1 y se trunca en silencio si excede 160; la unidad va en
// mayúscula. Los campos numéricos con signo conservan el '-' dentro del ancho
// fijo (semántica zfill), lo que reduce los dígitos útiles del campo; el
// formato no protege contra magnitudes que desborden el ancho.
func EncodeProduct(rec ProductRecord) string {
	category := strings.Repeat("0", numWidth)
	if rec.CategoryID != nil {
		category = zfill(*rec.CategoryID, numWidth)
	}
	return zfill(rec.ID, barcodeWidth) +
		padRight(Sanitize(rec.Name), nameWidth) +
		padRight(strings.ToUpper(Sanitize(rec.Unit)), unitWidth) +
		zfill(cents(rec.Price), numWidth) +
		zfill(rec.Stock, numWidth) +
		zfill(cents(rec.MeasureValue), numWidth) +
		category
}

// DecodeProduct interpreta una línea de al menos 207 caracteres. Si la línea
// alcanza los 217, el sufijo se toma como categoría (cero decodifica a nil);
// si no, la categoría queda nil (variante de importación). La unidad vuelve en
// minúscula con "kg" por defecto; el stock admite signo embebido.
func DecodeProduct(line string) (ProductRecord, error) {
	r := []rune(line)
	if len(r) < ProductImportLen {
		return ProductRecord{}, &LengthError{Expected: ProductImportLen, Actual: len(r)}
	}

	barcode := strings.TrimSpace(string(r[0:13]))
	if barcode == "" {
		return ProductRecord{}, &EmptyFieldError{Field: "codigo_barras"}
	}
	id, err := strconv.ParseInt(barcode, 10, 64)
	if err != nil {
		return ProductRecord{}, &FieldError{Field: "codigo_barras", Value: barcode}
	}

	name := strings.TrimSpace(string(r[13:173]))
	if name == "" {
		return ProductRecord{}, &EmptyFieldError{Field: "descripcion"}
	}

	unit := strings.ToLower(strings.TrimSpace(string(r[173:177])))
	if unit == "" {
		unit = "kg"
	}

	price, err := centsField(string(r[177:187]), "valor")
	if err != nil {
		return ProductRecord{}, err
	}

	stockStr := strings.TrimSpace(string(r[187:197]))
	stock, err := strconv.ParseInt(stockStr, 10, 64)
	if err != nil {
		return ProductRecord{}, &FieldError{Field: "stock", Value: stockStr}
	}

	measure, err := centsField(string(r[197:207]), "valor_medida")
	if err != nil {
		return ProductRecord{}, err
	}

	rec := ProductRecord{
		ID:           id,
		Name:         name,
		Unit:         unit,
		Price:        price,
		Stock:        stock,
		MeasureValue: measure,
	}

	if len(r) >= ProductRecordLen {
		catStr := strings.TrimSpace(string(r[207:217]))
		catID, err := strconv.ParseInt(catStr, 10, 64)
		if err != nil {
			return ProductRecord{}, &FieldError{Field: "categoria", Value: catStr}
		}
		if catID != 0 {
			rec.CategoryID = &catID
		}
	}
	return rec, nil
}

// EncodeCategory serializa el registro de 111 caracteres: ID en 9 dígitos con
// ceros a la izquierda + nombre en 102 con espacios a la derecha.
func EncodeCategory(rec CategoryRecord) string {
	return zfill(rec.ID, CategoryMinLen) +
		padRight(Sanitize(rec.Name), categoryNameWidth)
}

// DecodeCategory interpreta una línea de al menos 9 caracteres: ID en [0:9) y
// nombre en el resto.
func DecodeCategory(line string) (CategoryRecord, error) {
	r := []rune(line)
	if len(r) < CategoryMinLen {
		return CategoryRecord{}, &LengthError{Expected: CategoryMinLen, Actual: len(r)}
	}
	idStr := strings.TrimSpace(string(r[0:CategoryMinLen]))
	if idStr == "" {
		return CategoryRecord{}, &EmptyFieldError{Field: "codigo"}
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return CategoryRecord{}, &FieldError{Field: "codigo", Value: idStr}
	}
	name := strings.TrimSpace(string(r[CategoryMinLen:]))
	if name == "" {
		return CategoryRecord{}, &EmptyFieldError{Field: "nombre"}
	}
	return CategoryRecord{ID: id, Name: name}, nil
}

// zfill rellena con ceros a la izquierda hasta width. Para negativos el signo
// queda delante de los ceros y consume una celda del campo: un dígito útil
// menos. El formato no contempla overflow del ancho.
func zfill(n int64, width int) string {
	s := strconv.FormatInt(n, 10)
	if len(s) >= width {
		return s
	}
	pad := strings.Repeat("0", width-len(s))
	if n < 0 {
		return "-" + pad + s[1:]
	}
	return pad + s
}

// padRight trunca a width caracteres y completa con espacios a la derecha.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		r = r[:width]
	}
	return string(r) + strings.Repeat(" ", width-len(r))
}

// cents convierte un decimal de 2 posiciones a centavos enteros (redondeo).
func cents(d decimal.Decimal) int64 {
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// centsField interpreta un campo de centavos y lo devuelve como decimal /100.
func centsField(raw, field string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return decimal.Zero, &FieldError{Field: field, Value: s}
	}
	return decimal.New(n, -2), nil
}
