package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. Llega como
// multipart/form-data; el archivo de logo viaja aparte (campo "logo").
type CreateCategoryRequest struct {
	Name string `json:"name" form:"name" validate:"required,min=1,max=200"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (campos opcionales).
// Si la petición incluye un archivo de logo nuevo, este siempre gana sobre el
// valor de Logo presente en el cuerpo.
type UpdateCategoryRequest struct {
	Name string  `json:"name" form:"name" validate:"omitempty,min=1,max=200"`
	Logo *string `json:"logo" form:"logo"`
}

// SubcategoryResponse subcategoría dentro de la vista de una categoría.
type SubcategoryResponse struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CompanyResponse empresa dentro de la vista de una categoría.
type CompanyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CategoryResponse vista de una categoría. Subcategories y Companies se
// resuelven en el momento de la lectura contra las colecciones reales, nunca
// desde arreglos desnormalizados; siempre presentes ([] si no hay relaciones).
// ImageURL es Logo, o la imagen de relleno cuando la categoría no tiene logo.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Logo          *string               `json:"logo"`
	ImageURL      string                `json:"imageUrl"`
	Subcategories []SubcategoryResponse `json:"subcategories_id"`
	Companies     []CompanyResponse     `json:"companies_id"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
