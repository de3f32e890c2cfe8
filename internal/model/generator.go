package model

// GenerateResponse represents a successful password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
}
