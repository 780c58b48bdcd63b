package formulario

// Errores estado de error por campo del formulario: el controlador marca y la
// vista pinta.
type Errores map[string]bool

// Marcar enciende la marca de error de los campos indicados.
func (e Errores) Marcar(campos ...string) {
	for _, c := range campos {
		e[c] = true
	}
}

// Limpiar apaga todas las marcas (un intento que pasa validación limpia todo
// antes de enviar).
func (e Errores) Limpiar() {
	for c := range e {
		delete(e, c)
	}
}

// Tiene informa si el campo está marcado con error.
func (e Errores) Tiene(campo string) bool {
	return e[campo]
}
