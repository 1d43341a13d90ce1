package dto

// ErrorResponse cuerpo de error HTTP.
// Available solo se informa en conflictos por stock insuficiente.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
}

// CountResponse respuesta con un conteo (p. ej. notificaciones marcadas).
type CountResponse struct {
	Count int `json:"count"`
}
