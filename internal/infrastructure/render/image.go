package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

const jpegQuality = 90

// Decode превращает байты изображения в image.Image с учётом EXIF-ориентации.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image")
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// Open загружает изображение с диска.
func Open(fileName string) (image.Image, error) {
	img, err := imaging.Open(fileName, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", fileName, err)
	}
	return img, nil
}

// Normalize приводит большую сторону изображения к size с сохранением пропорций.
// Уменьшение идёт усредняющим фильтром, увеличение — кубическим.
func Normalize(img image.Image, size int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if size <= 0 || w == 0 || h == 0 {
		return img
	}

	var newW, newH int
	if w > h {
		newW, newH = size, int(float64(size)/float64(w)*float64(h))
	} else {
		newW, newH = int(float64(size)/float64(h)*float64(w)), size
	}
	newW, newH = max(newW, 1), max(newH, 1)
	if newW == w && newH == h {
		return imaging.Clone(img)
	}

	filter := imaging.CatmullRom
	if w > newW || h > newH {
		filter = imaging.Box
	}
	return imaging.Resize(img, newW, newH, filter)
}

// Grayscale возвращает серую копию изображения для детектора.
func Grayscale(img image.Image) *image.NRGBA {
	return imaging.Grayscale(img)
}

// EncodeJPEG кодирует изображение в JPEG.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
}

// JPEGBytes кодирует изображение в JPEG и возвращает байты.
func JPEGBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, img); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Save записывает изображение на диск, формат определяется по расширению.
func Save(img image.Image, fileName string) error {
	return imaging.Save(img, fileName, imaging.JPEGQuality(jpegQuality))
}
