package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Solo interesa aquí como puente
// entre categorías y empresas: la vista agregada de una categoría obtiene sus
// empresas a través de los productos que la referencian.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	CompanyID  string
	Price      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
