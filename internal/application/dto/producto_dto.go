package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

// CrearProductoRequest cuerpo de POST /api/productos.
// Stock no se envía: lo mantiene el backend vía producción.
type CrearProductoRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ActualizarProductoRequest cuerpo de PUT /api/productos/{id}.
type ActualizarProductoRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// ProductoResponse elemento de GET /api/productos.
type ProductoResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

// AEntidad convierte la respuesta del backend a la entidad de dominio.
func (r ProductoResponse) AEntidad() entity.Producto {
	return entity.Producto{
		ID:          r.ID,
		Nombre:      r.Name,
		Descripcion: r.Description,
		Precio:      r.Price,
		Stock:       r.Stock,
	}
}

// LineaProduccionRequest par producto/cantidad del lote.
type LineaProduccionRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// ProducirRequest cuerpo de POST /api/productos/producir. El lote es
// efímero: todo-o-nada en el backend, sin resultado por línea.
type ProducirRequest struct {
	ProductionBatch []LineaProduccionRequest `json:"productionBatch" validate:"required,min=1,dive"`
}
