package model

// ErrorDetail describes a single field-level problem
type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is the standard error payload for all endpoints
type ErrorResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// MessageResponse is a minimal success payload
type MessageResponse struct {
	Message string `json:"message"`
}
