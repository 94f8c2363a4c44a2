package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"blackstone_back_end/internal/database"
)

// UploadImage pousse une image dans le bucket et renvoie son chemin objet.
// Le nom est préfixé d'un UUID pour éviter les collisions entre uploads admin.
func UploadImage(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	f, err := file.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	objectName := path.Join(folder, uuid.NewString()+"-"+file.Filename)
	bucket := os.Getenv("MINIO_BUCKET")

	_, err = database.MinIO.PutObject(ctx, bucket, objectName, f, file.Size,
		minio.PutObjectOptions{ContentType: file.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return objectName, nil
}

// GenerateSignedURL génère une URL de lecture signée avec expiration
func GenerateSignedURL(ctx context.Context, objectPath string, duration time.Duration) (string, error) {
	if database.MinIO == nil {
		return "", fmt.Errorf("MinIO non initialisé")
	}

	bucket := os.Getenv("MINIO_BUCKET")

	// Accepte aussi une URL complète héritée des anciens uploads
	key := objectPath
	if idx := strings.Index(key, "/"+bucket+"/"); idx >= 0 {
		key = key[idx+len(bucket)+2:]
	}

	reqParams := make(url.Values)
	presignedURL, err := database.MinIO.PresignedGetObject(ctx, bucket, key, duration, reqParams)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// SignImageURLs signe une liste d'objets pour l'affichage boutique
func SignImageURLs(ctx context.Context, objectPaths []string) []string {
	signed := make([]string, 0, len(objectPaths))
	for _, p := range objectPaths {
		if p == "" {
			continue
		}
		if u, err := GenerateSignedURL(ctx, p, 24*time.Hour); err == nil {
			signed = append(signed, u)
		}
	}
	return signed
}
