// Package minio implementa el puerto AssetStore sobre MinIO (o cualquier
// servicio S3-compatible). Cada logo se guarda bajo una clave UUID que se
// devuelve junto con la URL pública; el borrado usa esa clave directamente,
// sin derivar nada de la URL.
package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/tu-usuario/catalogo-api/internal/application/ports"
	"github.com/tu-usuario/catalogo-api/pkg/config"
)

var _ ports.AssetStore = (*AssetStore)(nil)

// AssetStore adaptador de almacenamiento de logos sobre MinIO.
type AssetStore struct {
	client    *minio.Client
	bucket    string
	publicURL string // base para URLs públicas; si está vacía se construye desde el endpoint
	endpoint  string
	secure    bool
}

// NewAssetStore construye el cliente MinIO con credenciales estáticas.
func NewAssetStore(cfg config.StorageConfig) (*AssetStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("cliente minio: %w", err)
	}
	return &AssetStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		endpoint:  cfg.Endpoint,
		secure:    cfg.UseSSL,
	}, nil
}

// Upload sube el archivo bajo una clave UUID (conservando la extensión original)
// y devuelve la clave y la URL pública del objeto.
func (s *AssetStore) Upload(ctx context.Context, file ports.FileUpload) (*ports.StoredAsset, error) {
	key := uuid.New().String() + strings.ToLower(path.Ext(file.Filename))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, file.Reader, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("subir objeto %s: %w", key, err)
	}
	return &ports.StoredAsset{Key: key, URL: s.objectURL(key)}, nil
}

// Delete elimina el objeto por su clave.
func (s *AssetStore) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("borrar objeto %s: %w", key, err)
	}
	return nil
}

func (s *AssetStore) objectURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}
	scheme := "http"
	if s.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}
