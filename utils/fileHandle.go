package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"simdiklat_backend/config"

	"github.com/google/uuid"
)

// SaveUploadedFile stores a multipart upload into the configured upload
// directory under a random filename and returns the stored filename.
func SaveUploadedFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	destDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	newFilename := uuid.NewString() + ext
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return newFilename, nil
}

// GetFileURL builds the public URL of a stored upload.
func GetFileURL(filename string) string {
	if filename == "" {
		return ""
	}
	return config.AppConfig.BaseURL + "/uploads/" + filename
}
