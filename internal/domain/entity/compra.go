package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proveedor proyección del proveedor embebida en cada compra.
type Proveedor struct {
	ID            int
	Nombre        string
	Contacto      string
	CreadoEn      time.Time
	ActualizadoEn time.Time
}

// Insumo materia prima comprable; lista de referencia para los selects del diálogo.
type Insumo struct {
	ID     int
	Nombre string
}

// DetalleCompra línea de una compra. Pertenece a exactamente una compra.
// Invariante: dentro de una compra los IDInsumo son distintos dos a dos.
type DetalleCompra struct {
	ID             int
	IDInsumo       int
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Compra cabecera de compra con su proveedor y sus líneas embebidas.
// En esta interfaz las compras son de solo lectura después de creadas.
type Compra struct {
	ID          int
	IDProveedor int
	FechaCompra time.Time
	Estado      string
	Proveedor   Proveedor
	Detalles    []DetalleCompra
}

// FechaCorta porción de fecha (ISO sin hora) para mostrar y editar.
func (c Compra) FechaCorta() string {
	return c.FechaCompra.Format("2006-01-02")
}
