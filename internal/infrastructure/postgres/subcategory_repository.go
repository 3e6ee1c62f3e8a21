package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository construye el adaptador de lectura para subcategorías.
func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepo {
	return &SubcategoryRepo{pool: pool}
}

// ListByCategory devuelve las subcategorías cuya referencia apunta a la categoría dada.
func (r *SubcategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Subcategory, error) {
	query := `
		SELECT id, category_id, name, created_at, updated_at
		FROM subcategories WHERE category_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
