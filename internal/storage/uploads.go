// Package storage grava os uploads de fotos em disco local.
package storage

import (
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BrunoCesarAngst/semprelimpa-piscinas/internal/httperr"
)

// Extensões aceitas para fotos de piscina e galeria.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ErrInvalidExtension sinaliza upload fora da allow-list.
var ErrInvalidExtension = httperr.ErrBusiness("invalid_file_type")

type Uploads struct {
	dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// Save grava o arquivo mantendo o nome original (sem dedup, como o
// sistema sempre fez) e devolve o caminho relativo gravado.
func (u *Uploads) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	name := filepath.Base(file.Filename)

	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", ErrInvalidExtension
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(u.dir, name)
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", err
	}

	return dest, nil
}
