package entity

import "github.com/shopspring/decimal"

// Producto producto terminado. Stock lo calcula y mantiene el backend;
// esta interfaz nunca lo edita directamente.
type Producto struct {
	ID          int
	Nombre      string
	Descripcion string
	Precio      decimal.Decimal
	Stock       int
}

// LineaProduccion par (producto, cantidad) de un lote de producción.
// El lote no es una entidad persistida: existe solo como borrador de un envío.
type LineaProduccion struct {
	IDProducto int
	Cantidad   int
}
