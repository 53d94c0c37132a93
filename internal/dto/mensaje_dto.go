package dto

// MensajeResponse is the success envelope of every mutating endpoint.
type MensajeResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
