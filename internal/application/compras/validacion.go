package compras

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain"
)

// validar comprueba el borrador antes del envío, con corto circuito en el
// primer fallo. Devuelve los campos a marcar con error y el error a notificar.
//
//  1. Requeridos no vacíos: proveedor, fecha, estado y al menos una línea
//     (con insumo, cantidad y precio no vacíos).
//  2. Insumos no duplicados entre líneas (conteo de distintos == número de líneas).
func validar(b Borrador) ([]string, error) {
	var campos []string
	if b.IDProveedor == "" {
		campos = append(campos, CampoProveedor)
	}
	if b.FechaCompra == "" {
		campos = append(campos, CampoFecha)
	}
	if b.Estado == "" {
		campos = append(campos, CampoEstado)
	}
	if len(b.Detalles) == 0 {
		campos = append(campos, CampoDetalles)
	}
	for _, d := range b.Detalles {
		if d.IDInsumo == "" || d.Cantidad == "" || d.PrecioUnitario == "" {
			campos = append(campos, CampoDetalles)
			break
		}
	}
	if len(campos) > 0 {
		return campos, domain.ErrCamposIncompletos
	}

	distintos := make(map[string]struct{}, len(b.Detalles))
	for _, d := range b.Detalles {
		distintos[d.IDInsumo] = struct{}{}
	}
	if len(distintos) != len(b.Detalles) {
		return []string{CampoDetalles}, domain.ErrInsumosDuplicados
	}
	return nil, nil
}

// parsear coerción numérica del borrador ya validado al cuerpo de la petición.
// La sanitización por tecleo garantiza el alfabeto de cada campo, así que un
// fallo aquí es un bug y no un error de usuario.
func parsear(b Borrador) (dto.CrearCompraRequest, error) {
	proveedor, err := strconv.Atoi(b.IDProveedor)
	if err != nil {
		return dto.CrearCompraRequest{}, fmt.Errorf("id de proveedor %q: %w", b.IDProveedor, err)
	}
	lineas := make([]dto.LineaCompraRequest, 0, len(b.Detalles))
	for i, d := range b.Detalles {
		cantidad, err := strconv.Atoi(d.Cantidad)
		if err != nil {
			return dto.CrearCompraRequest{}, fmt.Errorf("cantidad de la línea %d %q: %w", i, d.Cantidad, err)
		}
		precio, err := decimal.NewFromString(d.PrecioUnitario)
		if err != nil {
			return dto.CrearCompraRequest{}, fmt.Errorf("precio de la línea %d %q: %w", i, d.PrecioUnitario, err)
		}
		insumo, err := strconv.Atoi(d.IDInsumo)
		if err != nil {
			return dto.CrearCompraRequest{}, fmt.Errorf("insumo de la línea %d %q: %w", i, d.IDInsumo, err)
		}
		lineas = append(lineas, dto.LineaCompraRequest{
			ItemID:    insumo,
			Quantity:  cantidad,
			UnitPrice: precio,
		})
	}
	return dto.CrearCompraRequest{
		SupplierID:   proveedor,
		PurchaseDate: b.FechaCompra,
		Status:       b.Estado,
		Lines:        lineas,
	}, nil
}
