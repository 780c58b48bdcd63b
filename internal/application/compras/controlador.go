// Package compras implementa el controlador de la página de compras: almacén
// de datos con refetch, filtrado por proveedor, paginación, diálogo de creación
// con líneas de detalle y diálogo de detalles de solo lectura.
package compras

import (
	"context"
	"sync"

	"github.com/tu-usuario/panel-inventario/internal/application/formulario"
	"github.com/tu-usuario/panel-inventario/internal/application/listado"
	"github.com/tu-usuario/panel-inventario/internal/application/ports"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

// Dialogo estado del diálogo activo de la página.
type Dialogo int

const (
	DialogoCerrado Dialogo = iota
	DialogoCrear
	DialogoDetalles
)

// Campos del mapa de errores del formulario de creación.
const (
	CampoProveedor = "id_proveedor"
	CampoFecha     = "fecha_compra"
	CampoEstado    = "estado"
	CampoDetalles  = "detalles"
)

// EstadoPorDefecto estado inicial de toda compra nueva.
const EstadoPorDefecto = "Completado"

// BorradorDetalle línea de detalle en edición. Los campos son cadenas ya
// sanitizadas; la coerción numérica ocurre solo al enviar.
type BorradorDetalle struct {
	IDInsumo       string
	Cantidad       string
	PrecioUnitario string
}

// Borrador compra en edición, descartable hasta el envío exitoso.
type Borrador struct {
	IDProveedor string
	FechaCompra string
	Estado      string
	Detalles    []BorradorDetalle
}

// NuevoBorrador forma vacía de una compra (estado por defecto, sin líneas).
func NuevoBorrador() Borrador {
	return Borrador{Estado: EstadoPorDefecto}
}

// Controlador estado de la página de compras. Los métodos son seguros para
// invocarse desde los callbacks de la interfaz y desde las goroutines que
// completan llamadas de red.
type Controlador struct {
	api ports.ComprasAPI
	not ports.Notificador
	log *logger.Logger

	porPagina int

	mu          sync.Mutex
	compras     []entity.Compra
	filtradas   []entity.Compra
	proveedores []entity.Proveedor
	insumos     []entity.Insumo
	busqueda    string
	pagina      int

	dialogo      Dialogo
	borrador     Borrador
	seleccionada entity.Compra
	errores      formulario.Errores
	enVuelo      bool

	// Secuenciación de refetch: una respuesta con secuencia menor a la última
	// aplicada se descarta en vez de pisar datos más nuevos.
	secuencia uint64
	aplicada  uint64
}

// NewControlador construye el controlador de la página.
func NewControlador(api ports.ComprasAPI, not ports.Notificador, log *logger.Logger, porPagina int) *Controlador {
	return &Controlador{
		api:       api,
		not:       not,
		log:       log,
		porPagina: porPagina,
		pagina:    1,
		borrador:  NuevoBorrador(),
		errores:   formulario.Errores{},
	}
}

// CargarTodo lectura inicial: compras más las listas de referencia para los
// selects. Un fallo de red se registra y conserva el estado previo; los
// listados no muestran error al usuario.
func (c *Controlador) CargarTodo(ctx context.Context) {
	c.RecargarCompras(ctx)

	proveedores, err := c.api.ListarProveedores(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("listar proveedores")
	} else {
		c.mu.Lock()
		c.proveedores = proveedores
		c.mu.Unlock()
	}

	insumos, err := c.api.ListarInsumos(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("listar insumos")
	} else {
		c.mu.Lock()
		c.insumos = insumos
		c.mu.Unlock()
	}
}

// RecargarCompras refetch completo del listado: reemplazo total, sin merge.
func (c *Controlador) RecargarCompras(ctx context.Context) {
	c.mu.Lock()
	c.secuencia++
	seq := c.secuencia
	c.mu.Unlock()

	lista, err := c.api.ListarCompras(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("listar compras")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.aplicada {
		c.log.Debug().Uint64("secuencia", seq).Msg("refetch de compras obsoleto, descartado")
		return
	}
	c.aplicada = seq
	c.compras = lista
	c.refiltrar()
}

// refiltrar recalcula la vista filtrada y ajusta la página. Se invoca con el
// mutex tomado ante cada cambio de {término, lista fuente}.
func (c *Controlador) refiltrar() {
	c.filtradas = listado.Filtrar(c.compras, c.busqueda, func(co entity.Compra) string {
		return co.Proveedor.Nombre
	})
	c.pagina = listado.Ajustar(c.pagina, listado.TotalPaginas(len(c.filtradas), c.porPagina))
}

// Buscar cambia el término de búsqueda (subcadena sobre el nombre del proveedor).
func (c *Controlador) Buscar(termino string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busqueda = termino
	c.refiltrar()
}

// IrAPagina navega a la página indicada (ajustada al rango válido).
func (c *Controlador) IrAPagina(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pagina = listado.Ajustar(n, listado.TotalPaginas(len(c.filtradas), c.porPagina))
}

// AbrirCrear resetea el borrador a la forma vacía y abre el diálogo de creación.
func (c *Controlador) AbrirCrear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador = NuevoBorrador()
	c.errores.Limpiar()
	c.dialogo = DialogoCrear
}

// VerDetalles carga la compra seleccionada en una proyección de solo lectura
// y abre el diálogo de detalles.
func (c *Controlador) VerDetalles(co entity.Compra) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seleccionada = co
	c.dialogo = DialogoDetalles
}

// CerrarDialogo descarta el borrador y vuelve a cerrado sin tocar el almacén.
func (c *Controlador) CerrarDialogo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = DialogoCerrado
	c.borrador = NuevoBorrador()
	c.errores.Limpiar()
}

// CambiarProveedor actualiza la referencia de proveedor (solo dígitos).
func (c *Controlador) CambiarProveedor(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.IDProveedor = formulario.SoloDigitos(valor)
}

// CambiarFecha actualiza la fecha del borrador (porción de fecha ISO).
func (c *Controlador) CambiarFecha(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.FechaCompra = valor
}

// CambiarEstado actualiza el estado (texto libre).
func (c *Controlador) CambiarEstado(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.Estado = valor
}

// AgregarDetalle añade una línea en blanco al borrador.
func (c *Controlador) AgregarDetalle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.Detalles = append(c.borrador.Detalles, BorradorDetalle{})
}

// EliminarDetalle quita la línea del índice indicado; fuera de rango no hace nada.
func (c *Controlador) EliminarDetalle(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.borrador.Detalles) {
		return
	}
	c.borrador.Detalles = append(c.borrador.Detalles[:i], c.borrador.Detalles[i+1:]...)
}

// CambiarDetalle actualiza un campo de la línea i sanitizando en cada tecleo:
// insumo y cantidad solo dígitos, precio dígitos y a lo sumo un punto.
func (c *Controlador) CambiarDetalle(i int, campo, valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.borrador.Detalles) {
		return
	}
	d := &c.borrador.Detalles[i]
	switch campo {
	case "id_insumo":
		d.IDInsumo = formulario.SoloDigitos(valor)
	case "cantidad":
		d.Cantidad = formulario.SoloDigitos(valor)
	case "precio_unitario":
		d.PrecioUnitario = formulario.PrecioDecimal(valor)
	}
}

// Guardar valida, coerce y envía la creación. Con una petición en vuelo el
// envío se ignora para no duplicar compras. En éxito: notificación, refetch y
// cierre; en fallo: notificación y el borrador queda intacto para reintentar.
func (c *Controlador) Guardar(ctx context.Context) {
	c.mu.Lock()
	if c.enVuelo {
		c.mu.Unlock()
		return
	}
	campos, err := validar(c.borrador)
	if err != nil {
		c.errores.Limpiar()
		c.errores.Marcar(campos...)
		c.mu.Unlock()
		c.not.Error(err.Error())
		return
	}
	c.errores.Limpiar()
	req, err := parsear(c.borrador)
	if err != nil {
		c.mu.Unlock()
		c.log.Error().Err(err).Msg("coerción del borrador de compra")
		c.not.Error("Por favor, completa todos los campos correctamente.")
		return
	}
	c.enVuelo = true
	c.mu.Unlock()

	err = c.api.CrearCompra(ctx, req)

	c.mu.Lock()
	c.enVuelo = false
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Msg("crear compra")
		c.not.Error("Hubo un problema al guardar la compra.")
		return
	}
	c.not.Exito("La compra ha sido creada correctamente.")
	c.RecargarCompras(ctx)
	c.CerrarDialogo()
}

// NombreInsumo resuelve el nombre de un insumo para mostrar en los detalles.
func (c *Controlador) NombreInsumo(id int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, in := range c.insumos {
		if in.ID == id {
			return in.Nombre
		}
	}
	return "Desconocido"
}

// PaginaActual rebanada de la vista filtrada para la página vigente.
func (c *Controlador) PaginaActual() []entity.Compra {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Compra(nil), listado.Pagina(c.filtradas, c.pagina, c.porPagina)...)
}

// NumerosDePagina botones de página 1..ceil(filtradas/porPagina).
func (c *Controlador) NumerosDePagina() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return listado.NumerosDePagina(listado.TotalPaginas(len(c.filtradas), c.porPagina))
}

// Pagina página vigente (1-based).
func (c *Controlador) Pagina() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagina
}

// Busqueda término vigente.
func (c *Controlador) Busqueda() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busqueda
}

// Proveedores lista de referencia para el select de proveedor.
func (c *Controlador) Proveedores() []entity.Proveedor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Proveedor(nil), c.proveedores...)
}

// Insumos lista de referencia para el select de insumo.
func (c *Controlador) Insumos() []entity.Insumo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Insumo(nil), c.insumos...)
}

// Dialogo estado del diálogo activo.
func (c *Controlador) Dialogo() Dialogo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogo
}

// Borrador copia del borrador en edición.
func (c *Controlador) Borrador() Borrador {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.borrador
	b.Detalles = append([]BorradorDetalle(nil), c.borrador.Detalles...)
	return b
}

// Seleccionada compra cargada en el diálogo de detalles.
func (c *Controlador) Seleccionada() entity.Compra {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seleccionada
}

// TieneError informa si un campo está marcado con error de validación.
func (c *Controlador) TieneError(campo string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errores.Tiene(campo)
}

// EnVuelo informa si hay un envío pendiente (la vista deshabilita el botón).
func (c *Controlador) EnVuelo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo
}
