package api

import (
	"context"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
)

// ListarCompras GET /api/compras con proveedor y líneas embebidos.
func (c *Cliente) ListarCompras(ctx context.Context) ([]entity.Compra, error) {
	var respuesta []dto.CompraResponse
	if err := c.get(ctx, "/api/compras", &respuesta); err != nil {
		return nil, err
	}
	compras := make([]entity.Compra, 0, len(respuesta))
	for _, r := range respuesta {
		compras = append(compras, r.AEntidad())
	}
	return compras, nil
}

// CrearCompra POST /api/compras.
func (c *Cliente) CrearCompra(ctx context.Context, in dto.CrearCompraRequest) error {
	return c.enviar(ctx, "POST", "/api/compras", in)
}

// ListarProveedores GET /api/proveedores (referencia para el select).
func (c *Cliente) ListarProveedores(ctx context.Context) ([]entity.Proveedor, error) {
	var respuesta []dto.ProveedorResponse
	if err := c.get(ctx, "/api/proveedores", &respuesta); err != nil {
		return nil, err
	}
	proveedores := make([]entity.Proveedor, 0, len(respuesta))
	for _, r := range respuesta {
		proveedores = append(proveedores, r.AEntidad())
	}
	return proveedores, nil
}

// ListarInsumos GET /api/insumos (referencia para el select).
func (c *Cliente) ListarInsumos(ctx context.Context) ([]entity.Insumo, error) {
	var respuesta []dto.InsumoResponse
	if err := c.get(ctx, "/api/insumos", &respuesta); err != nil {
		return nil, err
	}
	insumos := make([]entity.Insumo, 0, len(respuesta))
	for _, r := range respuesta {
		insumos = append(insumos, r.AEntidad())
	}
	return insumos, nil
}
