package mockapi_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/infrastructure/memoria"
	"github.com/tu-usuario/panel-inventario/internal/interfaces/mockapi"
)

func nuevaApp(t *testing.T) *fiber.App {
	t.Helper()
	return mockapi.NewApp(memoria.NewAlmacen())
}

func pedir(t *testing.T, app *fiber.App, metodo, ruta string, cuerpo any) *http.Response {
	t.Helper()
	var lector io.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		lector = bytes.NewReader(datos)
	}
	req := httptest.NewRequest(metodo, ruta, lector)
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodificar[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestSemilla(t *testing.T) {
	app := nuevaApp(t)

	resp := pedir(t, app, "GET", "/api/proveedores", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodificar[[]dto.ProveedorResponse](t, resp), 3)

	resp = pedir(t, app, "GET", "/api/insumos", nil)
	assert.Len(t, decodificar[[]dto.InsumoResponse](t, resp), 5)

	resp = pedir(t, app, "GET", "/api/productos", nil)
	assert.Len(t, decodificar[[]dto.ProductoResponse](t, resp), 3)

	resp = pedir(t, app, "GET", "/api/compras", nil)
	assert.Empty(t, decodificar[[]dto.CompraResponse](t, resp))
}

// Crear una compra asigna identificadores y embebe el proveedor completo.
func TestCrearCompra(t *testing.T) {
	app := nuevaApp(t)

	resp := pedir(t, app, "POST", "/api/compras", map[string]any{
		"supplierId":   3,
		"purchaseDate": "2024-01-15",
		"status":       "Completado",
		"lines": []map[string]any{
			{"itemId": 5, "quantity": 10, "unitPrice": 2.5},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	creada := decodificar[dto.CompraResponse](t, resp)
	assert.Equal(t, 1, creada.ID)
	assert.Equal(t, "Almacén Don Pedro", creada.Supplier.Name)
	assert.Equal(t, "2024-01-15T00:00:00Z", creada.PurchaseDate)
	require.Len(t, creada.Lines, 1)
	assert.NotZero(t, creada.Lines[0].ID)

	resp = pedir(t, app, "GET", "/api/compras", nil)
	assert.Len(t, decodificar[[]dto.CompraResponse](t, resp), 1)
}

func TestCrearCompra_ProveedorInexistente(t *testing.T) {
	app := nuevaApp(t)

	resp := pedir(t, app, "POST", "/api/compras", map[string]any{
		"supplierId":   99,
		"purchaseDate": "2024-01-15",
		"status":       "Completado",
		"lines":        []map[string]any{{"itemId": 1, "quantity": 1, "unitPrice": 1.0}},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodificar[dto.ErrorResponse](t, resp).Code)
}

func TestProductos_CicloCompleto(t *testing.T) {
	app := nuevaApp(t)

	// Crear con stock cero.
	resp := pedir(t, app, "POST", "/api/productos", map[string]any{
		"name": "Croissant", "description": "Hojaldre", "price": 3.5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	creado := decodificar[dto.ProductoResponse](t, resp)
	assert.Equal(t, 4, creado.ID)
	assert.Zero(t, creado.Stock)

	// Actualizar no toca el stock.
	resp = pedir(t, app, "PUT", "/api/productos/4", map[string]any{
		"name": "Croissant de almendra", "description": "Hojaldre", "price": 4.0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	actualizado := decodificar[dto.ProductoResponse](t, resp)
	assert.Equal(t, "Croissant de almendra", actualizado.Name)
	assert.Zero(t, actualizado.Stock)

	// Eliminar lo quita del listado.
	resp = pedir(t, app, "DELETE", "/api/productos/4", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = pedir(t, app, "GET", "/api/productos", nil)
	assert.Len(t, decodificar[[]dto.ProductoResponse](t, resp), 3)

	resp = pedir(t, app, "DELETE", "/api/productos/4", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// La producción incrementa el stock de cada línea de forma todo-o-nada.
func TestProducir(t *testing.T) {
	app := nuevaApp(t)

	resp := pedir(t, app, "POST", "/api/productos/producir", map[string]any{
		"productionBatch": []map[string]any{
			{"productId": 2, "quantity": 15},
			{"productId": 3, "quantity": 4},
		},
	})
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = pedir(t, app, "GET", "/api/productos", nil)
	productos := decodificar[[]dto.ProductoResponse](t, resp)
	porID := make(map[int]dto.ProductoResponse, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}
	assert.Equal(t, 21, porID[2].Stock, "6 + 15")
	assert.Equal(t, 24, porID[3].Stock, "20 + 4")
}

// Una línea inválida anula el lote completo: ningún stock cambia.
func TestProducir_TodoONada(t *testing.T) {
	app := nuevaApp(t)

	resp := pedir(t, app, "POST", "/api/productos/producir", map[string]any{
		"productionBatch": []map[string]any{
			{"productId": 2, "quantity": 15},
			{"productId": 99, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = pedir(t, app, "GET", "/api/productos", nil)
	for _, p := range decodificar[[]dto.ProductoResponse](t, resp) {
		if p.ID == 2 {
			assert.Equal(t, 6, p.Stock, "el stock no cambió")
		}
	}
}

func TestCuerpoInvalido(t *testing.T) {
	app := nuevaApp(t)

	req := httptest.NewRequest("POST", "/api/compras", bytes.NewReader([]byte("{no es json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
