// Package listado implementa el filtrado por búsqueda y la paginación de las
// páginas del panel. Todo es puro y determinista: mismas entradas, misma salida,
// preservando el orden de la lista fuente.
package listado

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizar pasa a minúsculas y elimina diacríticos (NFD + Mn), de modo que
// "Almacén" y "almacen" coincidan en la búsqueda. Se aplica a ambos lados de
// la comparación.
func Normalizar(s string) string {
	// El transformador NFD lleva estado; se construye por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	limpio, _, err := transform.String(t, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(limpio)
}

// Filtrar devuelve la subsecuencia de fuente cuyos campos de despliegue
// contienen el término (insensible a mayúsculas y acentos). Término vacío
// devuelve la lista completa.
func Filtrar[T any](fuente []T, termino string, campo func(T) string) []T {
	t := Normalizar(termino)
	filtrados := make([]T, 0, len(fuente))
	for _, it := range fuente {
		if strings.Contains(Normalizar(campo(it)), t) {
			filtrados = append(filtrados, it)
		}
	}
	return filtrados
}
