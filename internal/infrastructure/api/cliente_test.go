package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/infrastructure/api"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

func nuevoCliente(t *testing.T, manejador http.HandlerFunc) *api.Cliente {
	t.Helper()
	servidor := httptest.NewServer(manejador)
	t.Cleanup(servidor.Close)
	return api.NewCliente(servidor.URL, 5*time.Second, logger.Nop())
}

// El cuerpo de creación sale con las claves inglesas del contrato y el precio
// como número JSON, no como cadena.
func TestCrearCompra_CuerpoDelContrato(t *testing.T) {
	var capturado map[string]any
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/compras", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		cuerpo, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(cuerpo, &capturado))
		w.WriteHeader(http.StatusCreated)
	})

	err := cliente.CrearCompra(context.Background(), dto.CrearCompraRequest{
		SupplierID:   3,
		PurchaseDate: "2024-01-15",
		Status:       "Completado",
		Lines: []dto.LineaCompraRequest{
			{ItemID: 5, Quantity: 10, UnitPrice: decimal.RequireFromString("2.5")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, float64(3), capturado["supplierId"])
	assert.Equal(t, "2024-01-15", capturado["purchaseDate"])
	assert.Equal(t, "Completado", capturado["status"])
	lineas := capturado["lines"].([]any)
	require.Len(t, lineas, 1)
	linea := lineas[0].(map[string]any)
	assert.Equal(t, float64(5), linea["itemId"])
	assert.Equal(t, float64(10), linea["quantity"])
	assert.Equal(t, float64(2.5), linea["unitPrice"], "el precio viaja como número")
}

// El validador frena cuerpos malformados antes de tocar la red.
func TestCrearCompra_ValidadorAntesDeLaRed(t *testing.T) {
	peticiones := 0
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		peticiones++
	})

	err := cliente.CrearCompra(context.Background(), dto.CrearCompraRequest{
		PurchaseDate: "2024-01-15",
		Status:       "Completado",
		Lines:        []dto.LineaCompraRequest{{ItemID: 5, Quantity: 10}},
	})
	require.Error(t, err)
	assert.Zero(t, peticiones, "sin SupplierID nada sale a la red")

	err = cliente.CrearCompra(context.Background(), dto.CrearCompraRequest{
		SupplierID:   3,
		PurchaseDate: "2024-01-15",
		Status:       "Completado",
	})
	require.Error(t, err)
	assert.Zero(t, peticiones, "sin líneas tampoco")
}

// El lote de producción pasa por la misma barrera: una cantidad en cero se
// rechaza antes de tocar la red, igual que en el controlador.
func TestProducir_ValidadorAntesDeLaRed(t *testing.T) {
	peticiones := 0
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		peticiones++
	})

	err := cliente.Producir(context.Background(), dto.ProducirRequest{
		ProductionBatch: []dto.LineaProduccionRequest{{ProductID: 2, Quantity: 0}},
	})
	require.Error(t, err)
	assert.Zero(t, peticiones)

	require.NoError(t, cliente.Producir(context.Background(), dto.ProducirRequest{
		ProductionBatch: []dto.LineaProduccionRequest{{ProductID: 2, Quantity: 15}},
	}))
	assert.Equal(t, 1, peticiones)
}

// El listado normaliza el campo heredado de líneas y trunca la fecha ISO.
func TestListarCompras_NormalizaRespuesta(t *testing.T) {
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/compras", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id":1,"supplierId":3,"purchaseDate":"2024-01-15T00:00:00Z","status":"Completado",
			 "supplier":{"id":3,"name":"El Trigal","contact":"311 555 0101"},
			 "lines":[{"id":9,"itemId":5,"quantity":10,"unitPrice":2.5}]},
			{"id":2,"supplierId":1,"purchaseDate":"2024-02-01T00:00:00Z","status":"Pendiente",
			 "supplier":{"id":1,"name":"La Cosecha"},
			 "detalleComprasCompra":[{"id":11,"itemId":2,"quantity":4,"unitPrice":1.2}]}
		]`)
	})

	compras, err := cliente.ListarCompras(context.Background())
	require.NoError(t, err)
	require.Len(t, compras, 2)

	assert.Equal(t, "2024-01-15", compras[0].FechaCorta())
	assert.Equal(t, "El Trigal", compras[0].Proveedor.Nombre)
	require.Len(t, compras[0].Detalles, 1)
	assert.Equal(t, 5, compras[0].Detalles[0].IDInsumo)

	// La segunda compra trae las líneas bajo el campo heredado.
	require.Len(t, compras[1].Detalles, 1)
	assert.Equal(t, 2, compras[1].Detalles[0].IDInsumo)
	assert.True(t, decimal.RequireFromString("1.2").Equal(compras[1].Detalles[0].PrecioUnitario))
}

// Un error del backend con cuerpo estándar se propaga con código y mensaje.
func TestErrorDelBackend_SePropaga(t *testing.T) {
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"code":"NOT_FOUND","message":"producto no encontrado"}`)
	})

	err := cliente.EliminarProducto(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "producto no encontrado")
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

// Sin cuerpo de error decodificable se reporta al menos el estado HTTP.
func TestErrorDelBackend_SinCuerpo(t *testing.T) {
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := cliente.ListarProductos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

// Rutas de productos: método y path correctos para cada operación.
func TestProductos_RutasYMetodos(t *testing.T) {
	type llamada struct{ metodo, ruta string }
	var llamadas []llamada
	cliente := nuevoCliente(t, func(w http.ResponseWriter, r *http.Request) {
		llamadas = append(llamadas, llamada{r.Method, r.URL.Path})
		if r.Method == http.MethodGet {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, `[]`)
		}
	})

	ctx := context.Background()
	precio := decimal.RequireFromString("3.5")
	_, err := cliente.ListarProductos(ctx)
	require.NoError(t, err)
	require.NoError(t, cliente.CrearProducto(ctx, dto.CrearProductoRequest{Name: "Croissant", Price: precio}))
	require.NoError(t, cliente.ActualizarProducto(ctx, 12, dto.ActualizarProductoRequest{Name: "Croissant", Price: precio}))
	require.NoError(t, cliente.EliminarProducto(ctx, 12))
	require.NoError(t, cliente.Producir(ctx, dto.ProducirRequest{
		ProductionBatch: []dto.LineaProduccionRequest{{ProductID: 2, Quantity: 15}},
	}))

	assert.Equal(t, []llamada{
		{"GET", "/api/productos"},
		{"POST", "/api/productos"},
		{"PUT", "/api/productos/12"},
		{"DELETE", "/api/productos/12"},
		{"POST", "/api/productos/producir"},
	}, llamadas)
}
