package ports

import (
	"context"
	"io"
)

// FileUpload transporta un archivo recibido por HTTP hacia la capa de aplicación
// sin acoplarla a multipart.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// StoredAsset es el resultado de subir un archivo al asset host: la URL pública
// y la clave nativa del objeto. La clave se persiste junto a la URL para que el
// borrado posterior no dependa de parsear la URL.
type StoredAsset struct {
	Key string
	URL string
}

// AssetStore define el puerto de salida hacia el servicio de almacenamiento de
// imágenes. Cualquier adaptador (MinIO, S3, mock) debe implementar esta interfaz.
// Siguiendo el principio de inversión de dependencias (DIP), la aplicación solo
// conoce este contrato, no la implementación concreta.
type AssetStore interface {
	// Upload guarda el archivo y devuelve la URL pública y la clave del objeto.
	Upload(ctx context.Context, file FileUpload) (*StoredAsset, error)
	// Delete elimina el objeto identificado por su clave.
	Delete(ctx context.Context, key string) error
}
