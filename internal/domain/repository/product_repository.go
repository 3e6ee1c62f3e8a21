package repository

import "context"

// ProductRepository define el puerto de lectura sobre productos.
// DistinctCompanyIDs proyecta el conjunto (sin duplicados) de empresas con al
// menos un producto en la categoría indicada; varios productos de la misma
// empresa colapsan en una sola entrada.
type ProductRepository interface {
	DistinctCompanyIDs(ctx context.Context, categoryID string) ([]string, error)
}
