package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrCamposIncompletos = errors.New("por favor, completa todos los campos correctamente")
	ErrInsumosDuplicados = errors.New("no se pueden seleccionar insumos duplicados")
	ErrEnvioEnCurso      = errors.New("ya hay un envío en curso")
	ErrPrecioInvalido    = errors.New("el precio no es un número válido")
	ErrLoteVacio         = errors.New("el lote de producción no tiene líneas")
	ErrSinSeleccion      = errors.New("no hay una entidad seleccionada")
)
