package productos_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/application/productos"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

type apiFalsa struct {
	mu        sync.Mutex
	productos []entity.Producto

	creados      []dto.CrearProductoRequest
	actualizados map[int]dto.ActualizarProductoRequest
	eliminados   []int
	producciones []dto.ProducirRequest
	listados     int

	errMutacion error
}

func (a *apiFalsa) ListarProductos(context.Context) ([]entity.Producto, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listados++
	return append([]entity.Producto(nil), a.productos...), nil
}

func (a *apiFalsa) CrearProducto(_ context.Context, in dto.CrearProductoRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.errMutacion != nil {
		return a.errMutacion
	}
	a.creados = append(a.creados, in)
	return nil
}

func (a *apiFalsa) ActualizarProducto(_ context.Context, id int, in dto.ActualizarProductoRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.errMutacion != nil {
		return a.errMutacion
	}
	if a.actualizados == nil {
		a.actualizados = make(map[int]dto.ActualizarProductoRequest)
	}
	a.actualizados[id] = in
	return nil
}

func (a *apiFalsa) EliminarProducto(_ context.Context, id int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.errMutacion != nil {
		return a.errMutacion
	}
	a.eliminados = append(a.eliminados, id)
	return nil
}

func (a *apiFalsa) Producir(_ context.Context, in dto.ProducirRequest) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.errMutacion != nil {
		return a.errMutacion
	}
	a.producciones = append(a.producciones, in)
	return nil
}

type notificadorFalso struct {
	mu      sync.Mutex
	exitos  []string
	errores []string
}

func (n *notificadorFalso) Exito(m string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.exitos = append(n.exitos, m)
}

func (n *notificadorFalso) Error(m string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errores = append(n.errores, m)
}

func nuevoControlador(t *testing.T, api *apiFalsa) (*productos.Controlador, *notificadorFalso) {
	t.Helper()
	not := &notificadorFalso{}
	return productos.NewControlador(api, not, logger.Nop(), 3), not
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación confirmada
// ──────────────────────────────────────────────────────────────────────────────

// Declinar la confirmación no emite ninguna petición y el listado no cambia.
func TestEliminar_DeclinadoNoEmitePeticiones(t *testing.T) {
	api := &apiFalsa{productos: []entity.Producto{{ID: 7, Nombre: "Pan campesino"}}}
	c, not := nuevoControlador(t, api)
	c.Recargar(context.Background())
	listadosPrevios := api.listados

	c.SolicitarEliminacion(api.productos[0])
	assert.Equal(t, productos.DialogoConfirmarBorrado, c.Dialogo())
	assert.Equal(t, 7, c.PendienteBorrar().ID)

	c.CancelarEliminacion()

	assert.Empty(t, api.eliminados, "cero peticiones DELETE al declinar")
	assert.Equal(t, listadosPrevios, api.listados, "tampoco hay refetch")
	assert.Equal(t, productos.DialogoCerrado, c.Dialogo())
	assert.Zero(t, c.PendienteBorrar().ID)
	assert.Len(t, c.PaginaActual(), 1)
	assert.Empty(t, not.exitos)
}

// Confirmar emite el borrado, notifica y refresca el listado.
func TestEliminar_ConfirmadoBorraYRefresca(t *testing.T) {
	api := &apiFalsa{productos: []entity.Producto{{ID: 7, Nombre: "Pan campesino"}}}
	c, not := nuevoControlador(t, api)
	c.Recargar(context.Background())

	c.SolicitarEliminacion(api.productos[0])
	listadosPrevios := api.listados
	c.ConfirmarEliminacion(context.Background())

	assert.Equal(t, []int{7}, api.eliminados)
	assert.Equal(t, listadosPrevios+1, api.listados)
	assert.Equal(t, []string{"El producto ha sido eliminado correctamente."}, not.exitos)
	assert.Equal(t, productos.DialogoCerrado, c.Dialogo())
}

// Confirmar sin una solicitud previa se rechaza sin tocar la red.
func TestEliminar_SinSeleccion(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.ConfirmarEliminacion(context.Background())

	assert.Empty(t, api.eliminados)
	assert.Len(t, not.errores, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear y editar
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardar_CreaProducto(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirCrear()
	c.CambiarNombre("Croissant")
	c.CambiarDescripcion("Hojaldre de mantequilla")
	c.CambiarPrecio("3.50")
	c.Guardar(context.Background())

	require.Len(t, api.creados, 1)
	assert.Equal(t, "Croissant", api.creados[0].Name)
	assert.True(t, decimal.RequireFromString("3.5").Equal(api.creados[0].Price))
	assert.Empty(t, api.actualizados, "crear nunca pasa por la ruta de edición")
	assert.Equal(t, 1, api.listados)
	assert.Equal(t, []string{"El producto ha sido creado correctamente."}, not.exitos)
	assert.Equal(t, productos.DialogoCerrado, c.Dialogo())
}

func TestGuardar_EditaProductoExistente(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirEditar(entity.Producto{
		ID:     12,
		Nombre: "Baguette",
		Precio: decimal.RequireFromString("2.00"),
	})
	assert.Equal(t, "Baguette", c.Borrador().Nombre, "el borrador precarga el producto")

	c.CambiarPrecio("2.25")
	c.Guardar(context.Background())

	require.Contains(t, api.actualizados, 12)
	assert.True(t, decimal.RequireFromString("2.25").Equal(api.actualizados[12].Price))
	assert.Empty(t, api.creados)
	assert.Equal(t, []string{"El producto ha sido actualizado correctamente."}, not.exitos)
}

// Un precio no parseable notifica sin emitir petición alguna.
func TestGuardar_PrecioInvalido(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirCrear()
	c.CambiarNombre("Croissant")
	c.Guardar(context.Background())

	assert.Empty(t, api.creados)
	assert.Len(t, not.errores, 1)
	assert.Equal(t, productos.DialogoCrear, c.Dialogo(), "el diálogo queda abierto para corregir")
}

// En fallo del backend el borrador sobrevive para reintentar.
func TestGuardar_FalloConservaBorrador(t *testing.T) {
	api := &apiFalsa{errMutacion: assert.AnError}
	c, not := nuevoControlador(t, api)

	c.AbrirCrear()
	c.CambiarNombre("Croissant")
	c.CambiarPrecio("3.50")
	c.Guardar(context.Background())

	assert.Equal(t, productos.DialogoCrear, c.Dialogo())
	assert.Equal(t, "Croissant", c.Borrador().Nombre)
	assert.Len(t, not.errores, 1)
	assert.Zero(t, api.listados)
}

// ──────────────────────────────────────────────────────────────────────────────
// Producción
// ──────────────────────────────────────────────────────────────────────────────

func TestGuardarProduccion_EnviaLoteCompleto(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirProduccion()
	c.CambiarLote(0, "id_producto", "2")
	c.CambiarLote(0, "cantidad", "15")
	c.AgregarLote()
	c.CambiarLote(1, "id_producto", "3")
	c.CambiarLote(1, "cantidad", "4")
	c.GuardarProduccion(context.Background())

	require.Len(t, api.producciones, 1)
	lote := api.producciones[0].ProductionBatch
	require.Len(t, lote, 2)
	assert.Equal(t, 2, lote[0].ProductID)
	assert.Equal(t, 15, lote[0].Quantity)
	assert.Equal(t, 3, lote[1].ProductID)
	assert.Equal(t, 4, lote[1].Quantity)
	assert.Equal(t, []string{"La producción ha sido realizada correctamente."}, not.exitos)
}

// Sin líneas en el lote no se emite nada.
func TestGuardarProduccion_LoteVacio(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirProduccion()
	c.EliminarLote(0)
	c.GuardarProduccion(context.Background())

	assert.Empty(t, api.producciones)
	assert.Len(t, not.errores, 1)
}

// Una línea sin producto o sin cantidad bloquea el envío: nada sale a la red
// y el diálogo queda abierto para completar.
func TestGuardarProduccion_LineaIncompleta(t *testing.T) {
	api := &apiFalsa{}
	c, not := nuevoControlador(t, api)

	c.AbrirProduccion()
	c.CambiarLote(0, "id_producto", "2")
	c.GuardarProduccion(context.Background())

	assert.Empty(t, api.producciones, "sin cantidad no se emite nada")
	assert.Len(t, not.errores, 1)
	assert.Equal(t, productos.DialogoProduccion, c.Dialogo())

	// Completar la línea deja pasar el lote.
	c.CambiarLote(0, "cantidad", "15")
	c.GuardarProduccion(context.Background())
	require.Len(t, api.producciones, 1)
	assert.Equal(t, 15, api.producciones[0].ProductionBatch[0].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestBuscar_InsensibleAAcentos(t *testing.T) {
	api := &apiFalsa{productos: []entity.Producto{
		{ID: 1, Nombre: "Mogolla integral"},
		{ID: 2, Nombre: "Almojábana"},
		{ID: 3, Nombre: "Pan de yuca"},
		{ID: 4, Nombre: "Almojábana grande"},
	}}
	c, _ := nuevoControlador(t, api)
	c.Recargar(context.Background())

	c.Buscar("almojabana")
	pagina := c.PaginaActual()
	require.Len(t, pagina, 2)
	assert.Equal(t, "Almojábana", pagina[0].Nombre)
}

func TestPaginacion_TresPorPagina(t *testing.T) {
	var lista []entity.Producto
	for i := 1; i <= 7; i++ {
		lista = append(lista, entity.Producto{ID: i, Nombre: "Producto"})
	}
	api := &apiFalsa{productos: lista}
	c, _ := nuevoControlador(t, api)
	c.Recargar(context.Background())

	assert.Equal(t, []int{1, 2, 3}, c.NumerosDePagina())
	c.IrAPagina(3)
	assert.Len(t, c.PaginaActual(), 1, "la última página lleva el resto")

	c.IrAPagina(99)
	assert.Equal(t, 3, c.Pagina(), "fuera de rango se ajusta a la última")
}

func TestNombreProducto(t *testing.T) {
	api := &apiFalsa{productos: []entity.Producto{{ID: 2, Nombre: "Pan aliñado"}}}
	c, _ := nuevoControlador(t, api)
	c.Recargar(context.Background())

	assert.Equal(t, "Pan aliñado", c.NombreProducto(2))
	assert.Equal(t, "Desconocido", c.NombreProducto(40))
}
