package api

import (
	"context"
	"fmt"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

// ListarProductos GET /api/productos.
func (c *Cliente) ListarProductos(ctx context.Context) ([]entity.Producto, error) {
	var respuesta []dto.ProductoResponse
	if err := c.get(ctx, "/api/productos", &respuesta); err != nil {
		return nil, err
	}
	productos := make([]entity.Producto, 0, len(respuesta))
	for _, r := range respuesta {
		productos = append(productos, r.AEntidad())
	}
	return productos, nil
}

// CrearProducto POST /api/productos.
func (c *Cliente) CrearProducto(ctx context.Context, in dto.CrearProductoRequest) error {
	return c.enviar(ctx, "POST", "/api/productos", in)
}

// ActualizarProducto PUT /api/productos/{id}.
func (c *Cliente) ActualizarProducto(ctx context.Context, id int, in dto.ActualizarProductoRequest) error {
	return c.enviar(ctx, "PUT", fmt.Sprintf("/api/productos/%d", id), in)
}

// EliminarProducto DELETE /api/productos/{id}. La confirmación del usuario es
// responsabilidad del controlador: aquí ya no hay vuelta atrás.
func (c *Cliente) EliminarProducto(ctx context.Context, id int) error {
	return c.enviar(ctx, "DELETE", fmt.Sprintf("/api/productos/%d", id), nil)
}

// Producir POST /api/productos/producir con el lote completo.
func (c *Cliente) Producir(ctx context.Context, in dto.ProducirRequest) error {
	return c.enviar(ctx, "POST", "/api/productos/producir", in)
}
