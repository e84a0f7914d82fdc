package domain

import "time"

// Door é uma porta controlada. Identification é o serial gravado no controlador e é único.
type Door struct {
	ID             string    `json:"id"`
	Identification string    `json:"identification"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DoorInput é o payload de criação e edição de portas.
type DoorInput struct {
	Identification string `json:"identification" example:"A1B2C3D4"`
	Description    string `json:"description" example:"Portaria principal"`
}
