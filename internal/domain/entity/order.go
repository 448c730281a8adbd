package entity

import "time"

// Order representa un pedido de la tienda. Al marcarse completo se descuenta
// stock, se regeneran los registros cacheados de sus productos y se exporta el
// archivo pedido_<id>.txt hacia el POS/ERP.
type Order struct {
	ID        int64
	Customer  string
	Complete  bool
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem línea de pedido. ProductRef copia el registro posicional cacheado
// del producto en el momento de consultar el pedido; es lo que viaja en el
// archivo de exportación.
type OrderItem struct {
	ID         int64
	OrderID    int64
	ProductID  int64
	Quantity   int64
	ProductRef string
}
