// Package api implementa el cliente de sincronización contra el backend REST
// del inventario. Cada operación lleva un ID de correlación y queda en el log;
// los cuerpos de mutación pasan por el validador como segunda barrera antes de
// salir a la red.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

// El backend espera montos como números JSON, no como cadenas.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Cliente cliente HTTP del backend. Satisface ports.ComprasAPI y ports.ProductosAPI.
type Cliente struct {
	base     string
	http     *http.Client
	log      *logger.Logger
	validate *validator.Validate
}

// NewCliente construye el cliente para la URL base dada.
func NewCliente(baseURL string, timeout time.Duration, log *logger.Logger) *Cliente {
	return &Cliente{
		base:     strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		log:      log,
		validate: validator.New(),
	}
}

// get emite un GET y decodifica la respuesta JSON en out.
func (c *Cliente) get(ctx context.Context, ruta string, out any) error {
	return c.hacer(ctx, http.MethodGet, ruta, nil, out)
}

// enviar emite una mutación con cuerpo JSON, validado antes de salir.
func (c *Cliente) enviar(ctx context.Context, metodo, ruta string, cuerpo any) error {
	if cuerpo != nil {
		if err := c.validate.Struct(cuerpo); err != nil {
			return fmt.Errorf("cuerpo inválido para %s %s: %w", metodo, ruta, err)
		}
	}
	return c.hacer(ctx, metodo, ruta, cuerpo, nil)
}

func (c *Cliente) hacer(ctx context.Context, metodo, ruta string, cuerpo, out any) error {
	var lector io.Reader
	if cuerpo != nil {
		datos, err := json.Marshal(cuerpo)
		if err != nil {
			return fmt.Errorf("serializar cuerpo de %s %s: %w", metodo, ruta, err)
		}
		lector = bytes.NewReader(datos)
	}

	req, err := http.NewRequestWithContext(ctx, metodo, c.base+ruta, lector)
	if err != nil {
		return fmt.Errorf("construir petición %s %s: %w", metodo, ruta, err)
	}
	idPeticion := uuid.New().String()
	req.Header.Set("X-Request-ID", idPeticion)
	req.Header.Set("Accept", "application/json")
	if cuerpo != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	inicio := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("peticion", idPeticion).Str("metodo", metodo).Str("ruta", ruta).Msg("petición fallida")
		return fmt.Errorf("%s %s: %w", metodo, ruta, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("peticion", idPeticion).
		Str("metodo", metodo).
		Str("ruta", ruta).
		Int("status", resp.StatusCode).
		Dur("duracion", time.Since(inicio)).
		Msg("petición completada")

	if resp.StatusCode >= 400 {
		return errorDeRespuesta(metodo, ruta, resp)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decodificar respuesta de %s %s: %w", metodo, ruta, err)
		}
	}
	return nil
}

// errorDeRespuesta intenta extraer el cuerpo de error estándar del backend.
func errorDeRespuesta(metodo, ruta string, resp *http.Response) error {
	var cuerpo dto.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&cuerpo); err == nil && cuerpo.Message != "" {
		return fmt.Errorf("%s %s: %s (%s)", metodo, ruta, cuerpo.Message, cuerpo.Code)
	}
	return fmt.Errorf("%s %s: HTTP %d", metodo, ruta, resp.StatusCode)
}
