package listado_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/panel-inventario/internal/application/listado"
)

func TestTotalPaginas(t *testing.T) {
	casos := []struct {
		total, porPagina, esperado int
	}{
		{0, 6, 0},
		{1, 6, 1},
		{6, 6, 1},
		{7, 6, 2},
		{13, 6, 3},
		{3, 3, 1},
		{4, 3, 2},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, listado.TotalPaginas(c.total, c.porPagina),
			"total=%d porPagina=%d", c.total, c.porPagina)
	}
}

// Propiedad: la suma de las rebanadas de todas las páginas reconstruye la
// lista filtrada completa.
func TestPagina_LasRebanadasCubrenTodo(t *testing.T) {
	for total := 0; total <= 20; total++ {
		for porPagina := 1; porPagina <= 7; porPagina++ {
			filtrados := make([]int, total)
			for i := range filtrados {
				filtrados[i] = i
			}

			paginas := listado.TotalPaginas(total, porPagina)
			juntos := []int{}
			for p := 1; p <= paginas; p++ {
				juntos = append(juntos, listado.Pagina(filtrados, p, porPagina)...)
			}
			assert.Equal(t, filtrados, juntos, "total=%d porPagina=%d", total, porPagina)
		}
	}
}

// La página actual siempre queda dentro de [1, max(1, totalPaginas)], incluso
// cuando el filtro encoge la lista por debajo de la página vigente.
func TestAjustar_SiempreDentroDeRango(t *testing.T) {
	assert.Equal(t, 1, listado.Ajustar(1, 3))
	assert.Equal(t, 3, listado.Ajustar(3, 3))
	assert.Equal(t, 3, listado.Ajustar(9, 3), "fuera de rango por arriba se ajusta a la última")
	assert.Equal(t, 1, listado.Ajustar(0, 3))
	assert.Equal(t, 1, listado.Ajustar(-2, 3))
	assert.Equal(t, 1, listado.Ajustar(5, 0), "lista vacía deja la página en 1")
}

func TestPagina_FueraDeRangoDevuelveVacio(t *testing.T) {
	filtrados := []int{1, 2, 3}
	assert.Empty(t, listado.Pagina(filtrados, 2, 6))
	assert.Empty(t, listado.Pagina(filtrados, 0, 6))
}

func TestNumerosDePagina(t *testing.T) {
	assert.Nil(t, listado.NumerosDePagina(0))
	assert.Equal(t, []int{1, 2, 3}, listado.NumerosDePagina(3))
}
