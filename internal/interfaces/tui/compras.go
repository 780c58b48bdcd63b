package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tu-usuario/panel-inventario/internal/application/compras"
)

// teclaPaginaCompras teclas de la página de compras con el diálogo cerrado.
func (m *Modelo) teclaPaginaCompras(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.compras.AbrirCrear()
		m.campo = 0
		return m, m.enfocarCampo(m.camposCrearCompra())
	case "enter", "v":
		visibles := m.compras.PaginaActual()
		if m.fila < len(visibles) {
			m.compras.VerDetalles(visibles[m.fila])
		}
		return m, nil
	}
	return m, nil
}

// teclaDialogoCompras teclas con un diálogo de compras abierto.
func (m *Modelo) teclaDialogoCompras(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.compras.Dialogo() == compras.DialogoDetalles {
		switch msg.String() {
		case "esc", "enter", "q":
			m.compras.CerrarDialogo()
			return m, nil
		case "p":
			return m, m.exportarComprobante()
		}
		return m, nil
	}

	// Diálogo de creación.
	campos := m.camposCrearCompra()
	switch msg.String() {
	case "esc":
		m.compras.CerrarDialogo()
		m.entrada.Blur()
		return m, nil
	case "tab", "enter":
		m.campo = (m.campo + 1) % len(campos)
		return m, m.enfocarCampo(campos)
	case "shift+tab":
		m.campo = (m.campo - 1 + len(campos)) % len(campos)
		return m, m.enfocarCampo(campos)
	case "ctrl+n":
		m.compras.AgregarDetalle()
		campos = m.camposCrearCompra()
		m.campo = len(campos) - 3 // primer campo de la línea nueva
		return m, m.enfocarCampo(campos)
	case "ctrl+d":
		if m.campo >= camposFijos {
			m.compras.EliminarDetalle((m.campo - camposFijos) / camposPorLinea)
			campos = m.camposCrearCompra()
			if m.campo >= len(campos) {
				m.campo = len(campos) - 1
			}
			return m, m.enfocarCampo(campos)
		}
		return m, nil
	case "ctrl+s":
		return m, func() tea.Msg {
			m.compras.Guardar(m.ctx)
			return refrescarMsg{}
		}
	}
	return m, m.editarCampo(campos, msg)
}

// Campos fijos del formulario antes de las líneas, y campos por línea.
const (
	camposFijos    = 3
	camposPorLinea = 3
)

// camposCrearCompra describe el formulario de creación: cabecera más tres
// campos por línea de detalle. Los closures leen instantáneas del controlador
// para no quedarse con índices viejos si una línea se elimina.
func (m *Modelo) camposCrearCompra() []campoDialogo {
	campos := []campoDialogo{
		{
			etiqueta: "Proveedor (ID)",
			clave:    compras.CampoProveedor,
			valor:    func() string { return m.compras.Borrador().IDProveedor },
			cambiar:  m.compras.CambiarProveedor,
		},
		{
			etiqueta: "Fecha de compra (AAAA-MM-DD)",
			clave:    compras.CampoFecha,
			valor:    func() string { return m.compras.Borrador().FechaCompra },
			cambiar:  m.compras.CambiarFecha,
		},
		{
			etiqueta: "Estado",
			clave:    compras.CampoEstado,
			valor:    func() string { return m.compras.Borrador().Estado },
			cambiar:  m.compras.CambiarEstado,
		},
	}
	for i := range m.compras.Borrador().Detalles {
		i := i
		campos = append(campos,
			campoDialogo{
				etiqueta: fmt.Sprintf("Línea %d · Insumo (ID)", i+1),
				clave:    compras.CampoDetalles,
				valor: func() string {
					if d := m.compras.Borrador().Detalles; i < len(d) {
						return d[i].IDInsumo
					}
					return ""
				},
				cambiar: func(v string) { m.compras.CambiarDetalle(i, "id_insumo", v) },
			},
			campoDialogo{
				etiqueta: fmt.Sprintf("Línea %d · Cantidad", i+1),
				clave:    compras.CampoDetalles,
				valor: func() string {
					if d := m.compras.Borrador().Detalles; i < len(d) {
						return d[i].Cantidad
					}
					return ""
				},
				cambiar: func(v string) { m.compras.CambiarDetalle(i, "cantidad", v) },
			},
			campoDialogo{
				etiqueta: fmt.Sprintf("Línea %d · Precio unitario", i+1),
				clave:    compras.CampoDetalles,
				valor: func() string {
					if d := m.compras.Borrador().Detalles; i < len(d) {
						return d[i].PrecioUnitario
					}
					return ""
				},
				cambiar: func(v string) { m.compras.CambiarDetalle(i, "precio_unitario", v) },
			},
		)
	}
	return campos
}

// vistaCompras tarjetas de la página vigente más los botones de página.
func (m *Modelo) vistaCompras() string {
	visibles := m.compras.PaginaActual()
	if len(visibles) == 0 {
		return estiloAyuda.Render("Sin compras que mostrar.") + "\n"
	}

	tarjetas := make([]string, 0, len(visibles))
	for i, c := range visibles {
		cuerpo := fmt.Sprintf("Proveedor: %s\nFecha de compra: %s\nEstado: %s",
			noVacio(c.Proveedor.Nombre, "Desconocido"), c.FechaCorta(), c.Estado)
		if i == m.fila {
			tarjetas = append(tarjetas, estiloTarjetaActiva.Render(cuerpo))
		} else {
			tarjetas = append(tarjetas, estiloTarjeta.Render(cuerpo))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		estiloCabeceraTabla.Render("Lista de Compras"),
		lipgloss.JoinHorizontal(lipgloss.Top, tarjetas...),
		botonesDePagina(m.compras.NumerosDePagina(), m.compras.Pagina()),
	)
}

// vistaDialogoCompras pinta el diálogo abierto de la página de compras.
func (m *Modelo) vistaDialogoCompras() string {
	if m.compras.Dialogo() == compras.DialogoDetalles {
		return m.vistaDetallesCompra()
	}
	return m.vistaCrearCompra()
}

func (m *Modelo) vistaCrearCompra() string {
	campos := m.camposCrearCompra()
	var b strings.Builder
	b.WriteString(estiloCabeceraTabla.Render("Crear Compra") + "\n\n")
	for i, c := range campos {
		etiqueta := estiloEtiqueta
		switch {
		case m.compras.TieneError(c.clave):
			etiqueta = estiloEtiquetaError
		case i == m.campo:
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

	borrador := m.compras.Borrador()
	if len(borrador.Detalles) == 0 {
		b.WriteString("\n" + estiloAyuda.Render("Sin líneas: ctrl+n añade un insumo a comprar."))
	} else {
		b.WriteString("\n" + estiloEtiqueta.Render("Insumos seleccionados:") + "\n")
		for _, d := range borrador.Detalles {
			nombre := "Desconocido"
			if id, ok := aEntero(d.IDInsumo); ok {
				nombre = m.compras.NombreInsumo(id)
			}
			b.WriteString(fmt.Sprintf("  • %s: Cantidad %s, Precio Unitario $%s\n", nombre, d.Cantidad, d.PrecioUnitario))
		}
	}
	return estiloDialogo.Render(b.String())
}

func (m *Modelo) vistaDetallesCompra() string {
	c := m.compras.Seleccionada()
	var b strings.Builder
	b.WriteString(estiloCabeceraTabla.Render("Detalles de la Compra") + "\n\n")
	b.WriteString(estiloEtiqueta.Render("Información del Proveedor") + "\n")
	b.WriteString(fmt.Sprintf("  ID Proveedor: %d\n  Nombre: %s\n  Contacto: %s\n",
		c.Proveedor.ID, c.Proveedor.Nombre, c.Proveedor.Contacto))
	if !c.Proveedor.CreadoEn.IsZero() {
		b.WriteString(fmt.Sprintf("  Creado: %s\n  Actualizado: %s\n",
			c.Proveedor.CreadoEn.Format("2006-01-02 15:04"),
			c.Proveedor.ActualizadoEn.Format("2006-01-02 15:04")))
	}
	b.WriteString(fmt.Sprintf("\nFecha de compra: %s   Estado: %s\n\n", c.FechaCorta(), c.Estado))

	b.WriteString(estiloCabeceraTabla.Render("ID Detalle  Insumo                Cantidad  Precio Unitario") + "\n")
	for _, d := range c.Detalles {
		b.WriteString(fmt.Sprintf("%-11d %-21s %-9d $%s\n",
			d.ID, m.compras.NombreInsumo(d.IDInsumo), d.Cantidad, d.PrecioUnitario.StringFixed(2)))
	}
	return estiloDialogo.Render(b.String())
}

func noVacio(s, respaldo string) string {
	if s != "" {
		return s
	}
	return respaldo
}

func aEntero(s string) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
