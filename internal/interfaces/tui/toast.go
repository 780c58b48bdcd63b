package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// duracionToast tiempo en pantalla de una notificación transitoria.
const duracionToast = 3 * time.Second

type tipoToast int

const (
	toastExito tipoToast = iota
	toastError
)

// toastMsg llega al modelo raíz cuando un controlador notifica.
type toastMsg struct {
	tipo    tipoToast
	mensaje string
}

// expirarToastMsg descarta la notificación visible.
type expirarToastMsg struct{ id int }

// Notificador implementación TUI del puerto de notificaciones: convierte cada
// notificación en un mensaje del programa bubbletea. Antes de arrancar el
// programa las notificaciones se descartan.
type Notificador struct {
	mu       sync.Mutex
	programa *tea.Program
}

// NewNotificador construye el notificador sin programa asociado todavía.
func NewNotificador() *Notificador { return &Notificador{} }

// SetPrograma asocia el programa una vez construido (el modelo necesita el
// notificador y el programa necesita el modelo).
func (n *Notificador) SetPrograma(p *tea.Program) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.programa = p
}

// Exito notificación de éxito.
func (n *Notificador) Exito(mensaje string) { n.enviar(toastMsg{tipo: toastExito, mensaje: mensaje}) }

// Error notificación de error.
func (n *Notificador) Error(mensaje string) { n.enviar(toastMsg{tipo: toastError, mensaje: mensaje}) }

func (n *Notificador) enviar(msg toastMsg) {
	n.mu.Lock()
	p := n.programa
	n.mu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// toast notificación visible con su identificador de expiración.
type toast struct {
	id      int
	tipo    tipoToast
	mensaje string
}

// vista pinta la notificación según su tipo.
func (t toast) vista() string {
	if t.tipo == toastError {
		return estiloToastError.Render(t.mensaje)
	}
	return estiloToastExito.Render(t.mensaje)
}

// expirar produce el comando que la descarta pasado el tiempo en pantalla.
func (t toast) expirar() tea.Cmd {
	id := t.id
	return tea.Tick(duracionToast, func(time.Time) tea.Msg {
		return expirarToastMsg{id: id}
	})
}
