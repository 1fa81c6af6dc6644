package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"blogplatform/internal/config"
)

// Storage сохраняет загруженное изображение и возвращает публичный путь,
// который записывается в поле image поста.
type Storage interface {
	SaveImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

// NewStorage выбирает бэкенд по конфигурации
func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Backend {
	case "minio":
		return NewMinIOClient(cfg)
	case "local", "":
		return NewLocalStorage(cfg.Storage.UploadDir)
	default:
		return nil, fmt.Errorf("неизвестный бэкенд хранилища: %q", cfg.Storage.Backend)
	}
}

// LocalStorage пишет файлы в каталог, который отдается статикой по /uploads/
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог загрузок: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// SaveImage сохраняет файл под именем из метки времени загрузки и
// исходного расширения: /uploads/<unix-millis><ext>
func (s *LocalStorage) SaveImage(_ context.Context, fileName string, file io.Reader, _ int64) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(fileName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("ошибка при создании файла изображения: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("ошибка при записи изображения: %w", err)
	}

	return "/uploads/" + name, nil
}
