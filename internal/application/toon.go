package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"toon-face/internal/domain/entity"
	"toon-face/internal/domain/port"
	"toon-face/internal/domain/toon"
	"toon-face/internal/infrastructure/render"
	"toon-face/internal/log"
)

// ErrDetectorNotConfigured возвращается, если сервис собран без детектора.
var ErrDetectorNotConfigured = errors.New("detector is not configured")

// ToonOptions настройки генерации
type ToonOptions struct {
	ProfileSize int    // большая сторона нормализованного изображения
	Seed        uint64 // 0 — сид от текущего времени
}

type ToonService struct {
	detector port.FeatureDetector
	opts     ToonOptions
	stream   atomic.Uint64
}

// ToonImages результат генерации в виде изображений.
type ToonImages struct {
	Result *entity.ToonResult
	Toon   image.Image // нормализованное фото с оверлеем
	Debug  image.Image // рамки кандидатов, nil если не запрошено
}

// ToonOutput результат генерации в виде JPEG для отправки пользователю.
type ToonOutput struct {
	Result *entity.ToonResult
	Toon   []byte // nil, если лицо не найдено
	Debug  []byte
}

// NewToonService создаёт сервис, который рисует мультяшные лица поверх фото.
func NewToonService(detector port.FeatureDetector, opts ToonOptions) *ToonService {
	return &ToonService{detector: detector, opts: opts}
}

// Render декодирует фото, рисует оверлей и возвращает JPEG.
func (s *ToonService) Render(ctx context.Context, photo []byte, debug bool) (*ToonOutput, error) {
	img, err := render.Decode(photo)
	if err != nil {
		return nil, err
	}

	images, err := s.RenderImage(ctx, img, s.newRand(), debug)
	if err != nil {
		return nil, err
	}

	out := &ToonOutput{Result: images.Result}
	if images.Result.HasFace() {
		if out.Toon, err = render.JPEGBytes(images.Toon); err != nil {
			return nil, err
		}
	}
	if images.Debug != nil {
		if out.Debug, err = render.JPEGBytes(images.Debug); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RenderImage нормализует изображение, ищет кандидатов и рисует оверлей обоих каналов.
func (s *ToonService) RenderImage(ctx context.Context, img image.Image, rng port.RandomSource, debug bool) (*ToonImages, error) {
	if s.detector == nil {
		return nil, ErrDetectorNotConfigured
	}

	normalized := render.Normalize(img, s.opts.ProfileSize)

	candidates, err := s.detector.Detect(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("detect features: %w", err)
	}

	canvas := render.NewCanvas(normalized)
	report := toon.Generate(canvas, candidates, rng)

	b := normalized.Bounds()
	result := &entity.ToonResult{
		ImageWidth:  b.Dx(),
		ImageHeight: b.Dy(),
		Candidates:  *candidates,
		Report:      report,
	}
	logReport(result)

	images := &ToonImages{Result: result, Toon: canvas.Image()}
	if debug {
		dbg := render.NewCanvas(normalized)
		render.DrawCandidates(dbg, candidates)
		render.DrawFrames(dbg, report)
		images.Debug = dbg.Image()
	}
	return images, nil
}

func (s *ToonService) newRand() *rand.Rand {
	seed := s.opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, s.stream.Add(1)))
}

func logReport(result *entity.ToonResult) {
	for _, ch := range result.Report.Channels {
		fields := log.Fields{
			"channel": ch.Name,
			"faces":   ch.FaceCount,
			"eyes":    ch.EyeCount,
		}
		if ch.Drawn {
			fields["face"] = ch.Face.String()
			log.Debug(fields, "toon: requirements met, overlay drawn")
			continue
		}
		fields["reason"] = string(ch.Reason)
		log.Debug(fields, "toon: channel skipped")
	}
}
