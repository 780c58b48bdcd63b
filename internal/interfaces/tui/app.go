// Package tui pinta las páginas del panel (compras y productos terminados)
// con bubbletea. Toda la semántica de datos vive en los controladores de
// internal/application; aquí solo se renderiza y se despachan acciones.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tu-usuario/panel-inventario/internal/application/compras"
	"github.com/tu-usuario/panel-inventario/internal/application/productos"
	"github.com/tu-usuario/panel-inventario/internal/infrastructure/pdf"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

type pagina int

const (
	paginaCompras pagina = iota
	paginaProductos
)

// refrescarMsg fuerza un re-render tras completarse una llamada de red.
type refrescarMsg struct{}

// pdfListoMsg resultado de la exportación del comprobante.
type pdfListoMsg struct {
	ruta string
	err  error
}

// campoDialogo campo editable del diálogo activo: la vista lee valor() y
// escribe con cambiar(), que sanitiza en el controlador en cada tecleo.
type campoDialogo struct {
	etiqueta string
	clave    string
	valor    func() string
	cambiar  func(string)
}

// Modelo modelo raíz del programa.
type Modelo struct {
	ctx context.Context
	log *logger.Logger
	not *Notificador

	compras   *compras.Controlador
	productos *productos.Controlador
	generador *pdf.GeneradorComprobante

	pagina pagina
	ancho  int
	alto   int

	buscador textinput.Model
	buscando bool

	fila    int
	campo   int
	entrada textinput.Model

	cargando spinner.Model
	toast    *toast
	sigToast int
}

// NewModelo construye el modelo raíz.
func NewModelo(ctx context.Context, cc *compras.Controlador, cp *productos.Controlador, not *Notificador, log *logger.Logger) *Modelo {
	buscador := textinput.New()
	buscador.Placeholder = "Buscar por proveedor..."
	buscador.CharLimit = 80

	entrada := textinput.New()
	entrada.CharLimit = 120

	carga := spinner.New()
	carga.Spinner = spinner.Dot

	return &Modelo{
		ctx:       ctx,
		log:       log,
		not:       not,
		compras:   cc,
		productos: cp,
		generador: pdf.NewGeneradorComprobante(),
		buscador:  buscador,
		entrada:   entrada,
		cargando:  carga,
	}
}

// Init lanza la carga inicial de ambas páginas.
func (m *Modelo) Init() tea.Cmd {
	return tea.Batch(
		m.cargando.Tick,
		func() tea.Msg { m.compras.CargarTodo(m.ctx); return refrescarMsg{} },
		func() tea.Msg { m.productos.Recargar(m.ctx); return refrescarMsg{} },
	)
}

// Update despacha mensajes del programa y teclas del usuario.
func (m *Modelo) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ancho = msg.Width
		m.alto = msg.Height
		return m, nil

	case toastMsg:
		m.sigToast++
		t := toast{id: m.sigToast, tipo: msg.tipo, mensaje: msg.mensaje}
		m.toast = &t
		return m, t.expirar()

	case expirarToastMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.cargando, cmd = m.cargando.Update(msg)
		return m, cmd

	case pdfListoMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("exportar comprobante")
			m.not.Error("Hubo un problema al exportar el comprobante.")
		} else {
			m.not.Exito("Comprobante exportado en " + msg.ruta + ".")
		}
		return m, nil

	case refrescarMsg:
		m.ajustarFila()
		return m, nil

	case tea.KeyMsg:
		return m.manejarTecla(msg)
	}
	return m, nil
}

func (m *Modelo) manejarTecla(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.dialogoAbierto() {
		if m.pagina == paginaCompras {
			return m.teclaDialogoCompras(msg)
		}
		return m.teclaDialogoProductos(msg)
	}

	if m.buscando {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.buscando = false
			m.buscador.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.buscador, cmd = m.buscador.Update(msg)
			m.buscarEnPagina(m.buscador.Value())
			m.ajustarFila()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "tab":
		m.cambiarPagina()
		return m, nil
	case "/":
		m.buscando = true
		m.buscador.SetValue(m.busquedaDePagina())
		m.buscador.CursorEnd()
		return m, m.buscador.Focus()
	case "left", "h":
		m.irAPagina(m.paginaDePagina() - 1)
		m.ajustarFila()
		return m, nil
	case "right", "l":
		m.irAPagina(m.paginaDePagina() + 1)
		m.ajustarFila()
		return m, nil
	case "up", "k":
		if m.fila > 0 {
			m.fila--
		}
		return m, nil
	case "down", "j":
		if m.fila < m.filasVisibles()-1 {
			m.fila++
		}
		return m, nil
	}

	if m.pagina == paginaCompras {
		return m.teclaPaginaCompras(msg)
	}
	return m.teclaPaginaProductos(msg)
}

// dialogoAbierto informa si la página activa tiene un diálogo abierto.
func (m *Modelo) dialogoAbierto() bool {
	if m.pagina == paginaCompras {
		return m.compras.Dialogo() != compras.DialogoCerrado
	}
	return m.productos.Dialogo() != productos.DialogoCerrado
}

func (m *Modelo) cambiarPagina() {
	if m.pagina == paginaCompras {
		m.pagina = paginaProductos
		m.buscador.Placeholder = "Buscar por nombre..."
	} else {
		m.pagina = paginaCompras
		m.buscador.Placeholder = "Buscar por proveedor..."
	}
	m.buscando = false
	m.buscador.Blur()
	m.fila = 0
}

func (m *Modelo) buscarEnPagina(termino string) {
	if m.pagina == paginaCompras {
		m.compras.Buscar(termino)
	} else {
		m.productos.Buscar(termino)
	}
}

func (m *Modelo) busquedaDePagina() string {
	if m.pagina == paginaCompras {
		return m.compras.Busqueda()
	}
	return m.productos.Busqueda()
}

func (m *Modelo) irAPagina(n int) {
	if m.pagina == paginaCompras {
		m.compras.IrAPagina(n)
	} else {
		m.productos.IrAPagina(n)
	}
}

func (m *Modelo) paginaDePagina() int {
	if m.pagina == paginaCompras {
		return m.compras.Pagina()
	}
	return m.productos.Pagina()
}

func (m *Modelo) filasVisibles() int {
	if m.pagina == paginaCompras {
		return len(m.compras.PaginaActual())
	}
	return len(m.productos.PaginaActual())
}

// ajustarFila mantiene la selección dentro de la rebanada visible.
func (m *Modelo) ajustarFila() {
	if n := m.filasVisibles(); m.fila >= n {
		m.fila = n - 1
	}
	if m.fila < 0 {
		m.fila = 0
	}
}

// enfocarCampo carga en la entrada el valor vigente del campo enfocado.
func (m *Modelo) enfocarCampo(campos []campoDialogo) tea.Cmd {
	if len(campos) == 0 {
		return nil
	}
	if m.campo < 0 {
		m.campo = 0
	}
	if m.campo >= len(campos) {
		m.campo = len(campos) - 1
	}
	m.entrada.SetValue(campos[m.campo].valor())
	m.entrada.CursorEnd()
	return m.entrada.Focus()
}

// editarCampo pasa la tecla al input y refleja el valor sanitizado por el
// controlador (la sanitización ocurre en cada tecleo, no solo al enviar).
func (m *Modelo) editarCampo(campos []campoDialogo, msg tea.KeyMsg) tea.Cmd {
	if len(campos) == 0 || m.campo >= len(campos) {
		return nil
	}
	var cmd tea.Cmd
	m.entrada, cmd = m.entrada.Update(msg)
	campos[m.campo].cambiar(m.entrada.Value())
	m.entrada.SetValue(campos[m.campo].valor())
	m.entrada.CursorEnd()
	return cmd
}

// exportarComprobante genera el PDF de la compra vista en el diálogo de detalles.
func (m *Modelo) exportarComprobante() tea.Cmd {
	compra := m.compras.Seleccionada()
	return func() tea.Msg {
		datos, err := m.generador.Generar(compra, m.compras.NombreInsumo)
		if err != nil {
			return pdfListoMsg{err: err}
		}
		ruta := fmt.Sprintf("compra_%d.pdf", compra.ID)
		if err := os.WriteFile(ruta, datos, 0o644); err != nil {
			return pdfListoMsg{err: err}
		}
		return pdfListoMsg{ruta: ruta}
	}
}

// View pinta la página activa con su cabecera, toast y ayuda.
func (m *Modelo) View() string {
	var b strings.Builder

	pestanas := []string{
		estiloPestana.Render("Compras"),
		estiloPestana.Render("Productos Terminados"),
	}
	if m.pagina == paginaCompras {
		pestanas[0] = estiloPestanaActiva.Render("Compras")
	} else {
		pestanas[1] = estiloPestanaActiva.Render("Productos Terminados")
	}
	cabecera := estiloTitulo.Render("Panel de inventario") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, pestanas...)
	if m.toast != nil {
		cabecera += "  " + m.toast.vista()
	}
	if m.enVuelo() {
		cabecera += "  " + m.cargando.View() + estiloAyuda.Render("enviando...")
	}
	b.WriteString(cabecera + "\n\n")

	if m.dialogoAbierto() {
		if m.pagina == paginaCompras {
			b.WriteString(m.vistaDialogoCompras())
		} else {
			b.WriteString(m.vistaDialogoProductos())
		}
	} else {
		b.WriteString(m.vistaBusqueda() + "\n")
		if m.pagina == paginaCompras {
			b.WriteString(m.vistaCompras())
		} else {
			b.WriteString(m.vistaProductos())
		}
	}

	b.WriteString("\n" + m.ayuda())
	return b.String()
}

func (m *Modelo) vistaBusqueda() string {
	if m.buscando {
		return m.buscador.View()
	}
	termino := m.busquedaDePagina()
	if termino == "" {
		return estiloAyuda.Render("/ " + m.buscador.Placeholder)
	}
	return estiloAyuda.Render("/ filtro: ") + termino
}

func (m *Modelo) enVuelo() bool {
	if m.pagina == paginaCompras {
		return m.compras.EnVuelo()
	}
	return m.productos.EnVuelo()
}

// botonesDePagina pinta los números 1..ceil(filtrados/tamaño).
func botonesDePagina(numeros []int, actual int) string {
	if len(numeros) == 0 {
		return ""
	}
	botones := make([]string, 0, len(numeros))
	for _, n := range numeros {
		s := fmt.Sprintf("%d", n)
		if n == actual {
			botones = append(botones, estiloBotonPaginaActivo.Render(s))
		} else {
			botones = append(botones, estiloBotonPagina.Render(s))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, botones...)
}

func (m *Modelo) ayuda() string {
	if m.dialogoAbierto() {
		switch {
		case m.pagina == paginaCompras && m.compras.Dialogo() == compras.DialogoDetalles:
			return estiloAyuda.Render("p exportar PDF · esc cerrar")
		case m.pagina == paginaProductos && m.productos.Dialogo() == productos.DialogoDetalles:
			return estiloAyuda.Render("esc cerrar")
		case m.pagina == paginaProductos && m.productos.Dialogo() == productos.DialogoConfirmarBorrado:
			return estiloAyuda.Render("s/enter eliminar · n/esc cancelar")
		default:
			return estiloAyuda.Render("tab campo · ctrl+n línea · ctrl+d quitar línea · ctrl+s guardar · esc cancelar")
		}
	}
	if m.pagina == paginaCompras {
		return estiloAyuda.Render("n crear · enter detalles · / buscar · ←/→ página · tab productos · q salir")
	}
	return estiloAyuda.Render("n crear · e editar · x eliminar · p producción · enter detalles · / buscar · ←/→ página · tab compras · q salir")
}
