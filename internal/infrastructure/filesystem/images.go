package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/h2non/filetype"
	"github.com/karrick/godirwalk"
)

// ErrNoImages возвращается, если по пути не нашлось ни одного изображения.
var ErrNoImages = errors.New("no images found")

// Extensions поддерживаемые расширения файлов
var Extensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// headerSize байты, которых хватает filetype для определения формата
const headerSize = 261

// HasImageExtension проверяет расширение без учёта регистра
func HasImageExtension(fileName string) bool {
	return Extensions[strings.ToLower(filepath.Ext(fileName))]
}

// ListImages возвращает изображения по пути: сам файл или файлы каталога.
// Вложенные каталоги не обходятся.
func ListImages(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("input path: %w", err)
	}

	var files []string
	if !info.IsDir() {
		files = append(files, path)
	} else {
		root := filepath.Clean(path)
		err = godirwalk.Walk(root, &godirwalk.Options{
			Unsorted: true,
			Callback: func(name string, de *godirwalk.Dirent) error {
				if de.IsDir() {
					if name == root {
						return nil
					}
					return godirwalk.SkipThis
				}
				files = append(files, name)
				return nil
			},
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", path, err)
		}
	}

	images := files[:0]
	for _, f := range files {
		if !HasImageExtension(f) {
			continue
		}
		if ok, err := IsImage(f); err != nil || !ok {
			continue
		}
		images = append(images, f)
	}
	sort.Strings(images)

	if len(images) == 0 {
		return nil, ErrNoImages
	}
	return images, nil
}

// IsImage проверяет содержимое файла по сигнатуре
func IsImage(fileName string) (bool, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, headerSize)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return filetype.IsImage(head[:n]), nil
}

// OutputName возвращает путь к результату: <dir>/<имя без расширения>_<suffix>.jpg
func OutputName(dir, input, suffix string) string {
	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"_"+suffix+".jpg")
}
