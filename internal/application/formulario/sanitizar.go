// Package formulario contiene utilidades compartidas por los controladores de
// diálogo: sanitización de entrada por tecleo y el mapa declarativo de errores
// por campo que la vista pinta como estado de error.
package formulario

import "strings"

// SoloDigitos elimina todo carácter no numérico. Se aplica en cada tecleo a
// cantidades y referencias de insumo/producto. Idempotente: "12a3" -> "123",
// "123" -> "123".
func SoloDigitos(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PrecioDecimal conserva dígitos y a lo sumo un punto decimal: el primero se
// queda, los siguientes se eliminan como cualquier otro no numérico.
// "12.3.4" -> "12.34". Idempotente.
func PrecioDecimal(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	conPunto := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && !conPunto:
			conPunto = true
			b.WriteRune(r)
		}
	}
	return b.String()
}
