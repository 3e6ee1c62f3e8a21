package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// SubcategoryRepository define el puerto de lectura para las subcategorías.
// Este servicio no las muta; solo las resuelve al componer la vista de una categoría.
type SubcategoryRepository interface {
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error)
}
