package formulario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/panel-inventario/internal/application/formulario"
)

func TestSoloDigitos(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		{"12a3", "123"},
		{"abc", ""},
		{"", ""},
		{"007", "007"},
		{"1.5", "15"},
		{"-42", "42"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, formulario.SoloDigitos(c.entrada), "entrada=%q", c.entrada)
	}
}

func TestPrecioDecimal(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		// El primer punto se conserva; los siguientes se eliminan.
		{"12.3.4", "12.34"},
		{"2.50", "2.50"},
		{"abc2.5x", "2.5"},
		{".5", ".5"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, formulario.PrecioDecimal(c.entrada), "entrada=%q", c.entrada)
	}
}

// Propiedad: los sanitizadores son idempotentes; pasar dos veces no cambia nada.
func TestSanitizadores_Idempotentes(t *testing.T) {
	entradas := []string{"12a3", "12.3.4", "2.50", "", "abc", "007", "1,000.99"}
	for _, e := range entradas {
		una := formulario.SoloDigitos(e)
		assert.Equal(t, una, formulario.SoloDigitos(una), "SoloDigitos entrada=%q", e)

		unaPrecio := formulario.PrecioDecimal(e)
		assert.Equal(t, unaPrecio, formulario.PrecioDecimal(unaPrecio), "PrecioDecimal entrada=%q", e)
	}
}

func TestErrores(t *testing.T) {
	e := formulario.Errores{}
	e.Marcar("id_proveedor", "estado")
	assert.True(t, e.Tiene("id_proveedor"))
	assert.True(t, e.Tiene("estado"))
	assert.False(t, e.Tiene("fecha_compra"))

	e.Limpiar()
	assert.False(t, e.Tiene("id_proveedor"))
	assert.False(t, e.Tiene("estado"))
}
