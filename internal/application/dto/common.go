package dto

// ErrorResponse cuerpo de error HTTP del backend.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
