package port

import (
	"context"
	"image"

	"toon-face/internal/domain/entity"
)

// FeatureDetector интерфейс каскадного детектора признаков лица
type FeatureDetector interface {
	// Detect ищет кандидатов всех четырёх классов на нормализованном изображении
	Detect(ctx context.Context, img image.Image) (*entity.Candidates, error)

	// Close освобождает ресурсы детектора
	Close() error
}
