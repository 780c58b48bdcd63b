// Package mockapi expone el almacén en memoria bajo el contrato REST que el
// panel consume. Sirve para desarrollo local sin el backend real y para la
// prueba end-to-end.
package mockapi

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/panel-inventario/internal/application/dto"
	"github.com/tu-usuario/panel-inventario/internal/domain"
	"github.com/tu-usuario/panel-inventario/internal/infrastructure/memoria"
)

// NewApp construye la aplicación Fiber sobre el almacén dado.
func NewApp(almacen *memoria.Almacen) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())

	api := app.Group("/api")

	api.Get("/compras", func(c *fiber.Ctx) error {
		return c.JSON(almacen.Compras())
	})
	api.Post("/compras", func(c *fiber.Ctx) error {
		var in dto.CrearCompraRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		compra, err := almacen.CrearCompra(in)
		if err != nil {
			return responderError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(compra)
	})

	api.Get("/proveedores", func(c *fiber.Ctx) error {
		return c.JSON(almacen.Proveedores())
	})
	api.Get("/insumos", func(c *fiber.Ctx) error {
		return c.JSON(almacen.Insumos())
	})

	api.Get("/productos", func(c *fiber.Ctx) error {
		return c.JSON(almacen.Productos())
	})
	api.Post("/productos", func(c *fiber.Ctx) error {
		var in dto.CrearProductoRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if in.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusCreated).JSON(almacen.CrearProducto(in))
	})
	api.Post("/productos/producir", func(c *fiber.Ctx) error {
		var in dto.ProducirRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if err := almacen.Producir(in); err != nil {
			return responderError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
	api.Put("/productos/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
		}
		var in dto.ActualizarProductoRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		p, err := almacen.ActualizarProducto(id, in)
		if err != nil {
			return responderError(c, err)
		}
		return c.JSON(p)
	})
	api.Delete("/productos/:id", func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
		}
		if err := almacen.EliminarProducto(id); err != nil {
			return responderError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

func responderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
