package dto

// ErrorResponse cuerpo de error HTTP. Detail lleva el error subyacente cuando
// aporta contexto (fallos de infraestructura); vacío en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// MessageResponse cuerpo de confirmación simple (ej. borrado exitoso).
type MessageResponse struct {
	Message string `json:"message"`
}
