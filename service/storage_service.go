package service

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"linedori-web/utils"
)

// UploadURLPrefix is the public path uploads are served under
const UploadURLPrefix = "/uploads/"

// StorageService stores uploaded files on local disk
// Implements StorageServiceInterface
type StorageService struct {
	dir string
}

// NewStorageService creates a StorageService rooted at dir, creating it when missing
func NewStorageService(dir string) (*StorageService, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &StorageService{dir: dir}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// Dir returns the directory files are written to
func (s *StorageService) Dir() string {
	return s.dir
}

// SaveImage optimizes an image and stores it under a name encoding its aspect ratio.
// Returns the public URL path, e.g. /uploads/<uuid>.1.50.jpg
func (s *StorageService) SaveImage(data []byte) (string, error) {
	optimized, err := OptimizeImage(data)
	if err != nil {
		return "", err
	}
	name := utils.AspectFileName(uuid.NewString(), optimized.Width, optimized.Height, ".jpg")
	return s.write(name, optimized.Data)
}

// SaveFile stores data as-is under a random name keeping the extension of originalName
func (s *StorageService) SaveFile(data []byte, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	return s.write(uuid.NewString()+ext, data)
}

func (s *StorageService) write(name string, data []byte) (string, error) {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	log.Printf("💾 Stored upload %s (%d bytes)", name, len(data))
	return UploadURLPrefix + name, nil
}

// Remove deletes the files behind the given public URL paths.
// Paths outside the upload prefix and missing files are skipped; failures are only logged.
func (s *StorageService) Remove(urlPaths ...string) {
	for _, p := range urlPaths {
		if !strings.HasPrefix(p, UploadURLPrefix) {
			continue
		}
		name := path.Base(p)
		if name == "." || name == "/" || name == ".." {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  Warning: failed to remove upload %s: %v", name, err)
			continue
		}
		log.Printf("🗑️  Removed upload %s", name)
	}
}
