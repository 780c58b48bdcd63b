package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

// CrearCompraRequest cuerpo de POST /api/compras.
type CrearCompraRequest struct {
	SupplierID   int                  `json:"supplierId" validate:"required,gt=0"`
	PurchaseDate string               `json:"purchaseDate" validate:"required"`
	Status       string               `json:"status" validate:"required"`
	Lines        []LineaCompraRequest `json:"lines" validate:"required,min=1,dive"`
}

// LineaCompraRequest línea de detalle del cuerpo de creación.
type LineaCompraRequest struct {
	ItemID    int             `json:"itemId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ProveedorResponse proyección de proveedor embebida en cada compra
// y elemento de GET /api/proveedores.
type ProveedorResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InsumoResponse elemento de GET /api/insumos.
type InsumoResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// LineaCompraResponse línea de detalle con su identificador de backend.
type LineaCompraResponse struct {
	ID        int             `json:"id"`
	ItemID    int             `json:"itemId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CompraResponse elemento de GET /api/compras. Algunas versiones del backend
// devuelven las líneas bajo un nombre de campo heredado; Detalles normaliza.
type CompraResponse struct {
	ID           int                   `json:"id"`
	SupplierID   int                   `json:"supplierId"`
	PurchaseDate string                `json:"purchaseDate"`
	Status       string                `json:"status"`
	Supplier     ProveedorResponse     `json:"supplier"`
	Lines        []LineaCompraResponse `json:"lines"`
	LegacyLines  []LineaCompraResponse `json:"detalleComprasCompra,omitempty"`
}

// Detalles devuelve las líneas sin importar bajo qué campo llegaron.
func (r CompraResponse) Detalles() []LineaCompraResponse {
	if len(r.Lines) > 0 {
		return r.Lines
	}
	return r.LegacyLines
}

// AEntidad convierte la respuesta del backend a la entidad de dominio.
// La fecha llega ISO-8601; se conserva solo la porción de fecha.
func (r CompraResponse) AEntidad() entity.Compra {
	fecha, _ := time.Parse("2006-01-02", FechaCorta(r.PurchaseDate))
	detalles := make([]entity.DetalleCompra, 0, len(r.Detalles()))
	for _, l := range r.Detalles() {
		detalles = append(detalles, entity.DetalleCompra{
			ID:             l.ID,
			IDInsumo:       l.ItemID,
			Cantidad:       l.Quantity,
			PrecioUnitario: l.UnitPrice,
		})
	}
	return entity.Compra{
		ID:          r.ID,
		IDProveedor: r.SupplierID,
		FechaCompra: fecha,
		Estado:      r.Status,
		Proveedor: entity.Proveedor{
			ID:            r.Supplier.ID,
			Nombre:        r.Supplier.Name,
			Contacto:      r.Supplier.Contact,
			CreadoEn:      r.Supplier.CreatedAt,
			ActualizadoEn: r.Supplier.UpdatedAt,
		},
		Detalles: detalles,
	}
}

// AEntidad convierte la proyección de proveedor.
func (r ProveedorResponse) AEntidad() entity.Proveedor {
	return entity.Proveedor{
		ID:            r.ID,
		Nombre:        r.Name,
		Contacto:      r.Contact,
		CreadoEn:      r.CreatedAt,
		ActualizadoEn: r.UpdatedAt,
	}
}

// AEntidad convierte la proyección de insumo.
func (r InsumoResponse) AEntidad() entity.Insumo {
	return entity.Insumo{ID: r.ID, Nombre: r.Name}
}

// FechaCorta trunca una fecha ISO-8601 a su porción de fecha ("2024-01-15T00:00:00Z" -> "2024-01-15").
func FechaCorta(iso string) string {
	if i := strings.IndexByte(iso, 'T'); i >= 0 {
		return iso[:i]
	}
	return iso
}
