package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/ports"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

// PlaceholderImageURL imagen de relleno para categorías sin logo en las vistas.
const PlaceholderImageURL = "/uploads/placeholder.jpg"

// CategoryUseCase aplica las reglas de negocio del recurso Category: las cinco
// operaciones CRUD, la composición de la vista agregada y el ciclo de vida del
// logo en el asset host.
type CategoryUseCase struct {
	categories    repository.CategoryRepository
	subcategories repository.SubcategoryRepository
	products      repository.ProductRepository
	companies     repository.CompanyRepository
	assets        ports.AssetStore
	log           *logger.Logger
}

// NewCategoryUseCase construye el caso de uso con sus puertos de persistencia y almacenamiento.
func NewCategoryUseCase(
	categories repository.CategoryRepository,
	subcategories repository.SubcategoryRepository,
	products repository.ProductRepository,
	companies repository.CompanyRepository,
	assets ports.AssetStore,
	log *logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categories:    categories,
		subcategories: subcategories,
		products:      products,
		companies:     companies,
		assets:        assets,
		log:           log,
	}
}

// List devuelve todas las categorías con sus subcategorías y empresas resueltas.
// El orden es el natural del repositorio.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, cat := range list {
		view, err := uc.composeView(ctx, cat)
		if err != nil {
			return nil, err
		}
		items = append(items, *view)
	}
	return items, nil
}

// GetByID devuelve la vista agregada de una categoría: la categoría, sus
// subcategorías y el conjunto de empresas con al menos un producto en ella.
// Las cuatro lecturas son secuenciales y sin transacción: la vista refleja el
// estado que cada lectura encuentra (consistencia eventual).
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	cat, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}
	return uc.composeView(ctx, cat)
}

// Create crea una categoría y, si llega un archivo, sube el logo al asset host
// antes de persistir. El id es un UUID nuevo; ninguna escritura ocurre si el
// nombre falta.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest, file *ports.FileUpload) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	cat := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if file != nil {
		stored, err := uc.assets.Upload(ctx, *file)
		if err != nil {
			return nil, err
		}
		cat.Logo = &stored.URL
		cat.LogoAssetID = &stored.Key
	}

	if err := uc.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return emptyView(cat), nil
}

// Update aplica una actualización parcial. Si llega un archivo nuevo y la
// categoría ya tenía logo, el objeto anterior se borra del asset host antes de
// escribir; un fallo en ese borrado se registra y no aborta (se tolera un
// objeto huérfano antes que perder la mutación). El archivo nuevo siempre gana
// sobre cualquier valor de logo presente en el cuerpo.
// Devuelve (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest, file *ports.FileUpload) (*dto.CategoryResponse, error) {
	cat, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil
	}

	if in.Name != "" {
		cat.Name = in.Name
	}
	if in.Logo != nil {
		cat.Logo = in.Logo
	}

	if file != nil {
		if cat.LogoAssetID != nil {
			if err := uc.assets.Delete(ctx, *cat.LogoAssetID); err != nil {
				uc.log.Warn().Err(err).Str("category_id", id).Str("asset_key", *cat.LogoAssetID).
					Msg("no se pudo borrar el logo anterior, queda huérfano en el asset host")
			}
		}
		stored, err := uc.assets.Upload(ctx, *file)
		if err != nil {
			return nil, err
		}
		cat.Logo = &stored.URL
		cat.LogoAssetID = &stored.Key
	}

	cat.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return uc.composeView(ctx, cat)
}

// Delete elimina una categoría. Si tiene logo, su objeto se borra del asset
// host antes del registro; un fallo ahí se registra y no bloquea el borrado
// del registro. Devuelve domain.ErrNotFound si la categoría no existe.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	cat, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return domain.ErrNotFound
	}

	if cat.LogoAssetID != nil {
		if err := uc.assets.Delete(ctx, *cat.LogoAssetID); err != nil {
			uc.log.Warn().Err(err).Str("category_id", id).Str("asset_key", *cat.LogoAssetID).
				Msg("no se pudo borrar el logo, queda huérfano en el asset host")
		}
	}

	return uc.categories.Delete(ctx, id)
}

// composeView resuelve las relaciones reales de la categoría: subcategorías
// por category_id y empresas vía la proyección DISTINCT sobre productos.
// El resultado sobrescribe cualquier referencia embebida en el registro crudo.
func (uc *CategoryUseCase) composeView(ctx context.Context, cat *entity.Category) (*dto.CategoryResponse, error) {
	subs, err := uc.subcategories.ListByCategory(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	companyIDs, err := uc.products.DistinctCompanyIDs(ctx, cat.ID)
	if err != nil {
		return nil, err
	}
	var companies []*entity.Company
	if len(companyIDs) > 0 {
		companies, err = uc.companies.ListByIDs(ctx, companyIDs)
		if err != nil {
			return nil, err
		}
	}

	view := emptyView(cat)
	for _, s := range subs {
		view.Subcategories = append(view.Subcategories, dto.SubcategoryResponse{
			ID:         s.ID,
			CategoryID: s.CategoryID,
			Name:       s.Name,
			CreatedAt:  s.CreatedAt,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	for _, c := range companies {
		view.Companies = append(view.Companies, dto.CompanyResponse{
			ID:    c.ID,
			Name:  c.Name,
			Email: c.Email,
			Phone: c.Phone,
		})
	}
	return view, nil
}

// emptyView convierte la entidad a respuesta con las listas de relaciones vacías.
func emptyView(cat *entity.Category) *dto.CategoryResponse {
	imageURL := PlaceholderImageURL
	if cat.Logo != nil && *cat.Logo != "" {
		imageURL = *cat.Logo
	}
	return &dto.CategoryResponse{
		ID:            cat.ID,
		Name:          cat.Name,
		Logo:          cat.Logo,
		ImageURL:      imageURL,
		Subcategories: []dto.SubcategoryResponse{},
		Companies:     []dto.CompanyResponse{},
		CreatedAt:     cat.CreatedAt,
		UpdatedAt:     cat.UpdatedAt,
	}
}
