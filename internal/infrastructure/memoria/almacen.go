// Package memoria implementa el backend de datos en memoria que respalda al
// servidor simulado: suficiente contrato para desarrollar el panel sin el
// backend real y para las pruebas end-to-end.
package memoria

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain"
)

// Almacen datos en memoria con semilla. Seguro para uso concurrente.
type Almacen struct {
	mu sync.Mutex

	proveedores []dto.ProveedorResponse
	insumos     []dto.InsumoResponse
	compras     []dto.CompraResponse
	productos   []dto.ProductoResponse

	sigCompra   int
	sigLinea    int
	sigProducto int
}

// NewAlmacen construye el almacén con datos de semilla.
func NewAlmacen() *Almacen {
	ahora := time.Now().UTC()
	return &Almacen{
		proveedores: []dto.ProveedorResponse{
			{ID: 1, Name: "Distribuidora El Trigal", Contact: "ventas@eltrigal.co", CreatedAt: ahora, UpdatedAt: ahora},
			{ID: 2, Name: "Insumos La Cosecha", Contact: "311 555 0102", CreatedAt: ahora, UpdatedAt: ahora},
			{ID: 3, Name: "Almacén Don Pedro", Contact: "pedidos@donpedro.co", CreatedAt: ahora, UpdatedAt: ahora},
		},
		insumos: []dto.InsumoResponse{
			{ID: 1, Name: "Harina de trigo"},
			{ID: 2, Name: "Azúcar"},
			{ID: 3, Name: "Mantequilla"},
			{ID: 4, Name: "Levadura"},
			{ID: 5, Name: "Huevos"},
		},
		productos: []dto.ProductoResponse{
			{ID: 1, Name: "Pan campesino", Description: "Hogaza de masa madre", Price: decimal.RequireFromString("8.50"), Stock: 12},
			{ID: 2, Name: "Torta de vainilla", Description: "Porción individual", Price: decimal.RequireFromString("4.00"), Stock: 6},
			{ID: 3, Name: "Galletas de avena", Description: "Paquete x6", Price: decimal.RequireFromString("5.25"), Stock: 20},
		},
		sigCompra:   1,
		sigLinea:    1,
		sigProducto: 4,
	}
}

// Proveedores lista de proveedores.
func (a *Almacen) Proveedores() []dto.ProveedorResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.ProveedorResponse(nil), a.proveedores...)
}

// Insumos lista de insumos.
func (a *Almacen) Insumos() []dto.InsumoResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.InsumoResponse(nil), a.insumos...)
}

// Compras lista de compras con proveedor y líneas embebidos.
func (a *Almacen) Compras() []dto.CompraResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.CompraResponse(nil), a.compras...)
}

// CrearCompra persiste una compra nueva asignando identificadores.
func (a *Almacen) CrearCompra(in dto.CrearCompraRequest) (dto.CompraResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var proveedor *dto.ProveedorResponse
	for i := range a.proveedores {
		if a.proveedores[i].ID == in.SupplierID {
			proveedor = &a.proveedores[i]
			break
		}
	}
	if proveedor == nil {
		return dto.CompraResponse{}, domain.ErrNotFound
	}
	if len(in.Lines) == 0 {
		return dto.CompraResponse{}, domain.ErrInvalidInput
	}

	lineas := make([]dto.LineaCompraResponse, 0, len(in.Lines))
	for _, l := range in.Lines {
		if !a.existeInsumo(l.ItemID) || l.Quantity <= 0 {
			return dto.CompraResponse{}, domain.ErrInvalidInput
		}
		lineas = append(lineas, dto.LineaCompraResponse{
			ID:        a.sigLinea,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
		a.sigLinea++
	}

	compra := dto.CompraResponse{
		ID:           a.sigCompra,
		SupplierID:   in.SupplierID,
		PurchaseDate: in.PurchaseDate + "T00:00:00Z",
		Status:       in.Status,
		Supplier:     *proveedor,
		Lines:        lineas,
	}
	a.sigCompra++
	a.compras = append(a.compras, compra)
	return compra, nil
}

func (a *Almacen) existeInsumo(id int) bool {
	for _, in := range a.insumos {
		if in.ID == id {
			return true
		}
	}
	return false
}

// Productos lista de productos terminados.
func (a *Almacen) Productos() []dto.ProductoResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.ProductoResponse(nil), a.productos...)
}

// CrearProducto persiste un producto nuevo con stock cero.
func (a *Almacen) CrearProducto(in dto.CrearProductoRequest) dto.ProductoResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := dto.ProductoResponse{
		ID:          a.sigProducto,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       0,
	}
	a.sigProducto++
	a.productos = append(a.productos, p)
	return p
}

// ActualizarProducto modifica nombre, descripción y precio; el stock no se toca.
func (a *Almacen) ActualizarProducto(id int, in dto.ActualizarProductoRequest) (dto.ProductoResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.productos {
		if a.productos[i].ID == id {
			a.productos[i].Name = in.Name
			a.productos[i].Description = in.Description
			a.productos[i].Price = in.Price
			return a.productos[i], nil
		}
	}
	return dto.ProductoResponse{}, domain.ErrNotFound
}

// EliminarProducto borra el producto indicado.
func (a *Almacen) EliminarProducto(id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.productos {
		if a.productos[i].ID == id {
			a.productos = append(a.productos[:i], a.productos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Producir incrementa el stock de cada producto del lote. Todo-o-nada: si una
// línea es inválida no se aplica ninguna.
func (a *Almacen) Producir(in dto.ProducirRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(in.ProductionBatch) == 0 {
		return domain.ErrInvalidInput
	}
	indices := make([]int, 0, len(in.ProductionBatch))
	for _, l := range in.ProductionBatch {
		if l.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		idx := -1
		for i := range a.productos {
			if a.productos[i].ID == l.ProductID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.ErrNotFound
		}
		indices = append(indices, idx)
	}
	for i, l := range in.ProductionBatch {
		a.productos[indices[i]].Stock += l.Quantity
	}
	return nil
}
