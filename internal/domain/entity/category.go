package entity

import "time"

// Category representa una categoría del catálogo. Logo es la URL pública del
// objeto en el asset host; LogoAssetID es la clave nativa del objeto, guardada
// en el momento de la subida para poder borrarlo sin adivinar nada a partir de
// la URL. Ambos son nil cuando la categoría no tiene imagen.
type Category struct {
	ID          string
	Name        string
	Logo        *string
	LogoAssetID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Subcategory representa una subcategoría asociada a una categoría.
// CategoryID puede apuntar a una categoría ya eliminada; no se aplica
// integridad referencial en esta capa.
type Subcategory struct {
	ID         string
	CategoryID string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
