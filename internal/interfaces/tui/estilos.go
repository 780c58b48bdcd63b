package tui

import "github.com/charmbracelet/lipgloss"

var (
	estiloTitulo = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			Padding(0, 1)

	estiloPestana = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	estiloPestanaActiva = lipgloss.NewStyle().
				Padding(0, 2).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("63"))

	estiloTarjeta = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 1, 1, 0)

	estiloTarjetaActiva = estiloTarjeta.
				BorderForeground(lipgloss.Color("63"))

	estiloDialogo = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	estiloEtiqueta = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	estiloEtiquetaActiva = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	// Campo marcado con error de validación.
	estiloEtiquetaError = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196"))

	estiloCabeceraTabla = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Underline(true)

	estiloFilaActiva = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("63"))

	estiloBotonPagina = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("245"))

	estiloBotonPaginaActivo = lipgloss.NewStyle().
				Padding(0, 1).
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("63"))

	estiloToastExito = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("28")).
				Padding(0, 1)

	estiloToastError = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("124")).
				Padding(0, 1)

	estiloAyuda = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
