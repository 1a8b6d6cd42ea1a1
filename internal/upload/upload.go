// Package upload stores product images on local disk.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// URLPrefix is the path the router serves stored files under.
const URLPrefix = "/uploads"

// DiskStorage writes uploads into Dir and links them below BaseURL.
type DiskStorage struct {
	Dir     string
	BaseURL string
}

// NewDiskStorage creates dir if needed.
func NewDiskStorage(dir, baseURL string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &DiskStorage{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the file under a random name, keeping its extension, and
// returns its public URL.
func (s *DiskStorage) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(s.Dir, name)); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return s.URL(name), nil
}

// URL returns the public address of a stored file.
func (s *DiskStorage) URL(name string) string {
	return s.BaseURL + URLPrefix + "/" + name
}
