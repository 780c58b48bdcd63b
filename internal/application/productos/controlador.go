// Package productos implementa el controlador de la página de productos
// terminados: listado con búsqueda y paginación, crear/editar/eliminar con
// confirmación, detalles y el diálogo de producción (lote efímero).
//
// La estrategia de notificación (toast, alerta, doble de prueba) entra por el
// puerto Notificador.
package productos

import (
	"context"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/application/formulario"
	"github.com/tu-usuario/panel-inventario/internal/application/listado"
	"github.com/tu-usuario/panel-inventario/internal/application/ports"
	"github.com/tu-usuario/panel-inventario/internal/domain"
	"github.com/tu-usuario/panel-inventario/internal/domain/entity"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

// Dialogo estado del diálogo activo de la página.
type Dialogo int

const (
	DialogoCerrado Dialogo = iota
	DialogoCrear
	DialogoEditar
	DialogoDetalles
	DialogoProduccion
	DialogoConfirmarBorrado
)

// Borrador producto en edición. Precio es cadena sanitizada; la coerción a
// decimal ocurre al enviar. ID cero significa creación.
type Borrador struct {
	ID          int
	Nombre      string
	Descripcion string
	Precio      string
}

// BorradorLote línea del lote de producción en edición.
type BorradorLote struct {
	IDProducto string
	Cantidad   string
}

// Controlador estado de la página de productos terminados.
type Controlador struct {
	api ports.ProductosAPI
	not ports.Notificador
	log *logger.Logger

	porPagina int

	mu        sync.Mutex
	productos []entity.Producto
	filtrados []entity.Producto
	busqueda  string
	pagina    int

	dialogo         Dialogo
	borrador        Borrador
	seleccionado    entity.Producto
	lote            []BorradorLote
	pendienteBorrar entity.Producto
	enVuelo         bool

	secuencia uint64
	aplicada  uint64
}

// NewControlador construye el controlador de la página.
func NewControlador(api ports.ProductosAPI, not ports.Notificador, log *logger.Logger, porPagina int) *Controlador {
	return &Controlador{
		api:       api,
		not:       not,
		log:       log,
		porPagina: porPagina,
		pagina:    1,
	}
}

// Recargar refetch completo del listado de productos (reemplazo total).
// Un fallo de red se registra y conserva el estado previo.
func (c *Controlador) Recargar(ctx context.Context) {
	c.mu.Lock()
	c.secuencia++
	seq := c.secuencia
	c.mu.Unlock()

	lista, err := c.api.ListarProductos(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("listar productos")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.aplicada {
		c.log.Debug().Uint64("secuencia", seq).Msg("refetch de productos obsoleto, descartado")
		return
	}
	c.aplicada = seq
	c.productos = lista
	c.refiltrar()
}

func (c *Controlador) refiltrar() {
	c.filtrados = listado.Filtrar(c.productos, c.busqueda, func(p entity.Producto) string {
		return p.Nombre
	})
	c.pagina = listado.Ajustar(c.pagina, listado.TotalPaginas(len(c.filtrados), c.porPagina))
}

// Buscar cambia el término de búsqueda (subcadena sobre el nombre del producto).
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
	c.pagina = listado.Ajustar(n, listado.TotalPaginas(len(c.filtrados), c.porPagina))
}

// AbrirCrear resetea el borrador y abre el diálogo en modo creación.
func (c *Controlador) AbrirCrear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador = Borrador{}
	c.dialogo = DialogoCrear
}

// AbrirEditar carga el producto seleccionado en el borrador (solo nombre,
// descripción y precio son editables; el stock lo mantiene el backend).
func (c *Controlador) AbrirEditar(p entity.Producto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador = Borrador{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio.String(),
	}
	c.dialogo = DialogoEditar
}

// VerDetalles abre el diálogo de detalles de solo lectura.
func (c *Controlador) VerDetalles(p entity.Producto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seleccionado = p
	c.dialogo = DialogoDetalles
}

// AbrirProduccion abre el diálogo de producción con una línea en blanco.
func (c *Controlador) AbrirProduccion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lote = []BorradorLote{{}}
	c.dialogo = DialogoProduccion
}

// SolicitarEliminacion abre la confirmación de borrado para el producto.
// Ninguna petición se emite hasta que el usuario afirme.
func (c *Controlador) SolicitarEliminacion(p entity.Producto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendienteBorrar = p
	c.dialogo = DialogoConfirmarBorrado
}

// CancelarEliminacion declina la confirmación: cero peticiones, estado intacto.
func (c *Controlador) CancelarEliminacion() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendienteBorrar = entity.Producto{}
	c.dialogo = DialogoCerrado
}

// CerrarDialogo descarta el borrador o el lote y vuelve a cerrado.
func (c *Controlador) CerrarDialogo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialogo = DialogoCerrado
	c.borrador = Borrador{}
	c.lote = nil
}

// CambiarNombre actualiza el nombre del borrador.
func (c *Controlador) CambiarNombre(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.Nombre = valor
}

// CambiarDescripcion actualiza la descripción del borrador.
func (c *Controlador) CambiarDescripcion(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.Descripcion = valor
}

// CambiarPrecio actualiza el precio sanitizando en cada tecleo.
func (c *Controlador) CambiarPrecio(valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.borrador.Precio = formulario.PrecioDecimal(valor)
}

// AgregarLote añade una línea en blanco al lote de producción.
func (c *Controlador) AgregarLote() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lote = append(c.lote, BorradorLote{})
}

// EliminarLote quita la línea del índice indicado.
func (c *Controlador) EliminarLote(i int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.lote) {
		return
	}
	c.lote = append(c.lote[:i], c.lote[i+1:]...)
}

// CambiarLote actualiza un campo de la línea i del lote (ambos solo dígitos).
func (c *Controlador) CambiarLote(i int, campo, valor string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= len(c.lote) {
		return
	}
	l := &c.lote[i]
	switch campo {
	case "id_producto":
		l.IDProducto = formulario.SoloDigitos(valor)
	case "cantidad":
		l.Cantidad = formulario.SoloDigitos(valor)
	}
}

// Guardar crea o actualiza según el borrador. En éxito: notificación, refetch
// y cierre; en fallo: notificación y el diálogo queda abierto para corregir.
func (c *Controlador) Guardar(ctx context.Context) {
	c.mu.Lock()
	if c.enVuelo {
		c.mu.Unlock()
		return
	}
	b := c.borrador
	precio, err := decimal.NewFromString(b.Precio)
	if err != nil {
		c.mu.Unlock()
		c.not.Error(domain.ErrPrecioInvalido.Error())
		return
	}
	c.enVuelo = true
	edicion := b.ID != 0
	c.mu.Unlock()

	if edicion {
		err = c.api.ActualizarProducto(ctx, b.ID, dto.ActualizarProductoRequest{
			Name:        b.Nombre,
			Description: b.Descripcion,
			Price:       precio,
		})
	} else {
		err = c.api.CrearProducto(ctx, dto.CrearProductoRequest{
			Name:        b.Nombre,
			Description: b.Descripcion,
			Price:       precio,
		})
	}

	c.mu.Lock()
	c.enVuelo = false
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Bool("edicion", edicion).Msg("guardar producto")
		c.not.Error("Hubo un problema al guardar el producto.")
		return
	}
	if edicion {
		c.not.Exito("El producto ha sido actualizado correctamente.")
	} else {
		c.not.Exito("El producto ha sido creado correctamente.")
	}
	c.Recargar(ctx)
	c.CerrarDialogo()
}

// GuardarProduccion valida y coerce el lote y lo envía como una sola acción de
// producción (todo-o-nada en el backend, sin resultado por línea). Cada línea
// exige producto y cantidad mayores a cero, igual que el validador del cliente.
func (c *Controlador) GuardarProduccion(ctx context.Context) {
	c.mu.Lock()
	if c.enVuelo {
		c.mu.Unlock()
		return
	}
	if len(c.lote) == 0 {
		c.mu.Unlock()
		c.not.Error(domain.ErrLoteVacio.Error())
		return
	}
	lineas := make([]dto.LineaProduccionRequest, 0, len(c.lote))
	for _, l := range c.lote {
		producto, _ := strconv.Atoi(l.IDProducto)
		cantidad, _ := strconv.Atoi(l.Cantidad)
		if producto <= 0 || cantidad <= 0 {
			c.mu.Unlock()
			c.not.Error(domain.ErrCamposIncompletos.Error())
			return
		}
		lineas = append(lineas, dto.LineaProduccionRequest{ProductID: producto, Quantity: cantidad})
	}
	c.enVuelo = true
	c.mu.Unlock()

	err := c.api.Producir(ctx, dto.ProducirRequest{ProductionBatch: lineas})

	c.mu.Lock()
	c.enVuelo = false
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Msg("enviar producción")
		c.not.Error("Hubo un problema al realizar la producción.")
		return
	}
	c.not.Exito("La producción ha sido realizada correctamente.")
	c.Recargar(ctx)
	c.CerrarDialogo()
}

// ConfirmarEliminacion afirma la confirmación pendiente y emite el borrado.
func (c *Controlador) ConfirmarEliminacion(ctx context.Context) {
	c.mu.Lock()
	if c.enVuelo {
		c.mu.Unlock()
		return
	}
	p := c.pendienteBorrar
	if p.ID == 0 {
		c.mu.Unlock()
		c.not.Error(domain.ErrSinSeleccion.Error())
		return
	}
	c.enVuelo = true
	c.mu.Unlock()

	err := c.api.EliminarProducto(ctx, p.ID)

	c.mu.Lock()
	c.enVuelo = false
	c.pendienteBorrar = entity.Producto{}
	c.dialogo = DialogoCerrado
	c.mu.Unlock()

	if err != nil {
		c.log.Error().Err(err).Int("id", p.ID).Msg("eliminar producto")
		c.not.Error("Hubo un problema al eliminar el producto.")
		return
	}
	c.not.Exito("El producto ha sido eliminado correctamente.")
	c.Recargar(ctx)
}

// NombreProducto resuelve el nombre de un producto del listado vigente.
func (c *Controlador) NombreProducto(id int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.productos {
		if p.ID == id {
			return p.Nombre
		}
	}
	return "Desconocido"
}

// PaginaActual rebanada de la vista filtrada para la página vigente.
func (c *Controlador) PaginaActual() []entity.Producto {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Producto(nil), listado.Pagina(c.filtrados, c.pagina, c.porPagina)...)
}

// NumerosDePagina botones de página 1..ceil(filtrados/porPagina).
func (c *Controlador) NumerosDePagina() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return listado.NumerosDePagina(listado.TotalPaginas(len(c.filtrados), c.porPagina))
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

// Productos listado completo (para el select del diálogo de producción).
func (c *Controlador) Productos() []entity.Producto {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]entity.Producto(nil), c.productos...)
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
	return c.borrador
}

// Lote copia del lote de producción en edición.
func (c *Controlador) Lote() []BorradorLote {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]BorradorLote(nil), c.lote...)
}

// Seleccionado producto cargado en el diálogo de detalles.
func (c *Controlador) Seleccionado() entity.Producto {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seleccionado
}

// PendienteBorrar producto en espera de confirmación de borrado.
func (c *Controlador) PendienteBorrar() entity.Producto {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendienteBorrar
}

// EnVuelo informa si hay un envío pendiente (la vista deshabilita el botón).
func (c *Controlador) EnVuelo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enVuelo
}
