package entity

import "time"

// Company representa una empresa que publica productos en el catálogo.
type Company struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
