package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tu-usuario/panel-inventario/internal/application/productos"
)

// teclaPaginaProductos teclas de la página de productos con el diálogo cerrado.
func (m *Modelo) teclaPaginaProductos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	seleccionado := func() (int, bool) {
		visibles := m.productos.PaginaActual()
		if m.fila < len(visibles) {
			return m.fila, true
		}
		return 0, false
	}

	switch msg.String() {
	case "n":
		m.productos.AbrirCrear()
		m.campo = 0
		return m, m.enfocarCampo(m.camposProducto())
	case "e":
		if i, ok := seleccionado(); ok {
			m.productos.AbrirEditar(m.productos.PaginaActual()[i])
			m.campo = 0
			return m, m.enfocarCampo(m.camposProducto())
		}
		return m, nil
	case "x":
		if i, ok := seleccionado(); ok {
			m.productos.SolicitarEliminacion(m.productos.PaginaActual()[i])
		}
		return m, nil
	case "p":
		m.productos.AbrirProduccion()
		m.campo = 0
		return m, m.enfocarCampo(m.camposProduccion())
	case "enter", "v":
		if i, ok := seleccionado(); ok {
			m.productos.VerDetalles(m.productos.PaginaActual()[i])
		}
		return m, nil
	}
	return m, nil
}

// teclaDialogoProductos teclas con un diálogo de productos abierto.
func (m *Modelo) teclaDialogoProductos(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.productos.Dialogo() {
	case productos.DialogoDetalles:
		switch msg.String() {
		case "esc", "enter", "q":
			m.productos.CerrarDialogo()
		}
		return m, nil

	case productos.DialogoConfirmarBorrado:
		// Compuerta destructiva: declinar no emite ninguna petición.
		switch msg.String() {
		case "s", "enter":
			return m, func() tea.Msg {
				m.productos.ConfirmarEliminacion(m.ctx)
				return refrescarMsg{}
			}
		case "n", "esc":
			m.productos.CancelarEliminacion()
		}
		return m, nil

	case productos.DialogoProduccion:
		return m.teclaDialogoProduccion(msg)
	}

	// Crear o editar producto.
	campos := m.camposProducto()
	switch msg.String() {
	case "esc":
		m.productos.CerrarDialogo()
		m.entrada.Blur()
		return m, nil
	case "tab", "enter":
		m.campo = (m.campo + 1) % len(campos)
		return m, m.enfocarCampo(campos)
	case "shift+tab":
		m.campo = (m.campo - 1 + len(campos)) % len(campos)
		return m, m.enfocarCampo(campos)
	case "ctrl+s":
		return m, func() tea.Msg {
			m.productos.Guardar(m.ctx)
			return refrescarMsg{}
		}
	}
	return m, m.editarCampo(campos, msg)
}

func (m *Modelo) teclaDialogoProduccion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	campos := m.camposProduccion()
	switch msg.String() {
	case "esc":
		m.productos.CerrarDialogo()
		m.entrada.Blur()
		return m, nil
	case "tab", "enter":
		m.campo = (m.campo + 1) % len(campos)
		return m, m.enfocarCampo(campos)
	case "shift+tab":
		m.campo = (m.campo - 1 + len(campos)) % len(campos)
		return m, m.enfocarCampo(campos)
	case "ctrl+n":
		m.productos.AgregarLote()
		campos = m.camposProduccion()
		m.campo = len(campos) - 2 // primer campo de la línea nueva
		return m, m.enfocarCampo(campos)
	case "ctrl+d":
		m.productos.EliminarLote(m.campo / 2)
		campos = m.camposProduccion()
		if len(campos) == 0 {
			return m, nil
		}
		if m.campo >= len(campos) {
			m.campo = len(campos) - 1
		}
		return m, m.enfocarCampo(campos)
	case "ctrl+s":
		return m, func() tea.Msg {
			m.productos.GuardarProduccion(m.ctx)
			return refrescarMsg{}
		}
	}
	return m, m.editarCampo(campos, msg)
}

// camposProducto formulario de crear/editar producto (stock no es editable).
func (m *Modelo) camposProducto() []campoDialogo {
	return []campoDialogo{
		{
			etiqueta: "Nombre",
			valor:    func() string { return m.productos.Borrador().Nombre },
			cambiar:  m.productos.CambiarNombre,
		},
		{
			etiqueta: "Descripción",
			valor:    func() string { return m.productos.Borrador().Descripcion },
			cambiar:  m.productos.CambiarDescripcion,
		},
		{
			etiqueta: "Precio",
			valor:    func() string { return m.productos.Borrador().Precio },
			cambiar:  m.productos.CambiarPrecio,
		},
	}
}

// camposProduccion dos campos por línea del lote.
func (m *Modelo) camposProduccion() []campoDialogo {
	var campos []campoDialogo
	for i := range m.productos.Lote() {
		i := i
		campos = append(campos,
			campoDialogo{
				etiqueta: fmt.Sprintf("Línea %d · Producto (ID)", i+1),
				valor: func() string {
					if l := m.productos.Lote(); i < len(l) {
						return l[i].IDProducto
					}
					return ""
				},
				cambiar: func(v string) { m.productos.CambiarLote(i, "id_producto", v) },
			},
			campoDialogo{
				etiqueta: fmt.Sprintf("Línea %d · Cantidad", i+1),
				valor: func() string {
					if l := m.productos.Lote(); i < len(l) {
						return l[i].Cantidad
					}
					return ""
				},
				cambiar: func(v string) { m.productos.CambiarLote(i, "cantidad", v) },
			},
		)
	}
	return campos
}

// vistaProductos tabla de la página vigente más los botones de página.
func (m *Modelo) vistaProductos() string {
	visibles := m.productos.PaginaActual()
	if len(visibles) == 0 {
		return estiloAyuda.Render("Sin productos que mostrar.") + "\n"
	}

	var b strings.Builder
	b.WriteString(estiloCabeceraTabla.Render(fmt.Sprintf("%-20s %-28s %10s %7s", "Nombre", "Descripción", "Precio", "Stock")) + "\n")
	for i, p := range visibles {
		fila := fmt.Sprintf("%-20s %-28s %10s %7d", recortar(p.Nombre, 20), recortar(p.Descripcion, 28), "$"+p.Precio.StringFixed(2), p.Stock)
		if i == m.fila {
			b.WriteString(estiloFilaActiva.Render(fila) + "\n")
		} else {
			b.WriteString(fila + "\n")
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		estiloCabeceraTabla.Render("Productos terminados"),
		b.String(),
		botonesDePagina(m.productos.NumerosDePagina(), m.productos.Pagina()),
	)
}

// vistaDialogoProductos pinta el diálogo abierto de la página de productos.
func (m *Modelo) vistaDialogoProductos() string {
	switch m.productos.Dialogo() {
	case productos.DialogoDetalles:
		p := m.productos.Seleccionado()
		cuerpo := fmt.Sprintf("%s\n\nNombre\n  %s\nDescripción\n  %s\nPrecio\n  $%s\nStock\n  %d\n",
			estiloCabeceraTabla.Render("Detalles del Producto"),
			p.Nombre, p.Descripcion, p.Precio.StringFixed(2), p.Stock)
		return estiloDialogo.Render(cuerpo)

	case productos.DialogoConfirmarBorrado:
		p := m.productos.PendienteBorrar()
		cuerpo := fmt.Sprintf("%s\n\n¿Estás seguro de que deseas eliminar el producto %s?\n\n%s",
			estiloCabeceraTabla.Render("¿Estás seguro?"),
			p.Nombre,
			estiloAyuda.Render("s/enter: sí, eliminar · n/esc: cancelar"))
		return estiloDialogo.Render(cuerpo)

	case productos.DialogoProduccion:
		return m.vistaDialogoProduccion()
	}
	return m.vistaFormularioProducto()
}

func (m *Modelo) vistaFormularioProducto() string {
	titulo := "Crear Producto Terminado"
	if m.productos.Dialogo() == productos.DialogoEditar {
		titulo = "Editar Producto Terminado"
	}
	campos := m.camposProducto()
	var b strings.Builder
	b.WriteString(estiloCabeceraTabla.Render(titulo) + "\n\n")
	for i, c := range campos {
		etiqueta := estiloEtiqueta
		if i == m.campo {
			etiqueta = estiloEtiquetaActiva
		}
		b.WriteString(etiqueta.Render(c.etiqueta) + ": ")
		if i == m.campo {
			b.WriteString(m.entrada.View())
		} else {
			b.WriteString(c.valor())
		}
		b.WriteString("\n")
	}
	return estiloDialogo.Render(b.String())
}

func (m *Modelo) vistaDialogoProduccion() string {
	campos := m.camposProduccion()
	var b strings.Builder
	b.WriteString(estiloCabeceraTabla.Render("Crear Producción") + "\n\n")
	for i, c := range campos {
		etiqueta := estiloEtiqueta
		if i == m.campo {
			etiqueta = estiloEtiquetaActiva
		}
		b.WriteString(etiqueta.Render(c.etiqueta) + ": ")
		if i == m.campo {
			b.WriteString(m.entrada.View())
		} else {
			b.WriteString(c.valor())
		}
		b.WriteString("\n")
	}

	lote := m.productos.Lote()
	if len(lote) > 0 {
		b.WriteString("\n" + estiloEtiqueta.Render("Lote a producir:") + "\n")
		for _, l := range lote {
			nombre := "Desconocido"
			if id, ok := aEntero(l.IDProducto); ok {
				nombre = m.productos.NombreProducto(id)
			}
			b.WriteString(fmt.Sprintf("  • %s: Cantidad %s\n", nombre, l.Cantidad))
		}
	}
	return estiloDialogo.Render(b.String())
}

func recortar(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
