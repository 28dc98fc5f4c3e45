package dto

// Response is the uniform wire envelope for every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MessageDTO wraps plain confirmation messages, e.g. after a delete.
type MessageDTO struct {
	Message string `json:"message" example:"blog deleted successfully."`
}
