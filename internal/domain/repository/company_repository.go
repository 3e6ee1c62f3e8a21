package repository

import (
	"context"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// CompanyRepository define el puerto de lectura sobre empresas.
// ListByIDs ignora ids inexistentes (referencias colgantes toleradas).
type CompanyRepository interface {
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Company, error)
}
