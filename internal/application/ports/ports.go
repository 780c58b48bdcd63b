package ports

import (
	"context"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

// Notificador puerto de notificaciones transitorias (toast). Se inyecta en los
// controladores para poder sustituirlo por un doble en tests.
type Notificador interface {
	Exito(mensaje string)
	Error(mensaje string)
}

// ComprasAPI operaciones del backend consumidas por la página de compras.
// Las compras no exponen actualización ni borrado en esta interfaz.
type ComprasAPI interface {
	ListarCompras(ctx context.Context) ([]entity.Compra, error)
	CrearCompra(ctx context.Context, in dto.CrearCompraRequest) error
	ListarProveedores(ctx context.Context) ([]entity.Proveedor, error)
	ListarInsumos(ctx context.Context) ([]entity.Insumo, error)
}

// ProductosAPI operaciones del backend consumidas por la página de productos.
type ProductosAPI interface {
	ListarProductos(ctx context.Context) ([]entity.Producto, error)
	CrearProducto(ctx context.Context, in dto.CrearProductoRequest) error
	ActualizarProducto(ctx context.Context, id int, in dto.ActualizarProductoRequest) error
	EliminarProducto(ctx context.Context, id int) error
	Producir(ctx context.Context, in dto.ProducirRequest) error
}
