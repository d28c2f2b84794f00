// Package images gera miniaturas WebP para as fotos da galeria.
package images

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	thumbWidth  = 480
	webpQuality = 80
)

// Thumbnail decodifica a imagem, reduz para thumbWidth mantendo a
// proporção, grava como WebP ao lado do original e devolve o caminho
// gerado.
func Thumbnail(srcPath string) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", err
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width > thumbWidth {
		height = height * thumbWidth / width
		width = thumbWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	thumbPath := thumbName(srcPath)
	out, err := os.Create(thumbPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if err := webp.Encode(out, dst, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	return thumbPath, nil
}

func thumbName(srcPath string) string {
	ext := filepath.Ext(srcPath)
	return strings.TrimSuffix(srcPath, ext) + "_thumb.webp"
}
