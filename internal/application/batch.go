package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"toon-face/internal/infrastructure/filesystem"
	"toon-face/internal/infrastructure/render"
	"toon-face/internal/log"
)

// BatchOptions параметры пакетной обработки
type BatchOptions struct {
	Input   string // файл или каталог с изображениями
	Output  string // каталог для результатов
	Debug   bool   // сохранять картинку с рамками кандидатов
	Workers int
	Seed    uint64 // 0 — сид от текущего времени
}

// BatchSummary итог пакетной обработки
type BatchSummary struct {
	RunID    string
	Total    int
	Success  int
	Failed   int // ошибки чтения, детектора или записи
	Elapsed  time.Duration
	Written  []string
}

type BatchService struct {
	toon *ToonService
}

func NewBatchService(toon *ToonService) *BatchService {
	return &BatchService{toon: toon}
}

// Run обрабатывает все изображения по пути. Каждое изображение получает
// свой холст и свой генератор случайных чисел, сид которого равен Seed + номер.
func (s *BatchService) Run(ctx context.Context, opts BatchOptions) (*BatchSummary, error) {
	start := time.Now()

	files, err := filesystem.ListImages(opts.Input)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	summary := &BatchSummary{RunID: uuid.NewString(), Total: len(files)}
	written := make([][]string, len(files))
	var success, failures atomic.Int64
	logger := log.With(log.Fields{"run": summary.RunID})
	logger.Infof("batch: found %s in %s", english.Plural(len(files), "image", "images"), opts.Input)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entry := logger.WithField("file", file)
			entry.Infof("image %d/%d", i+1, len(files))

			out, matched, err := s.processFile(gctx, file, opts, seed+uint64(i))
			written[i] = out
			switch {
			case err != nil:
				failures.Add(1)
				entry.Errorf("batch: %s", err)
			case !matched:
				entry.Info("batch: no usable face")
			default:
				success.Add(1)
				entry.Info("batch: success")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, w := range written {
		summary.Written = append(summary.Written, w...)
	}
	summary.Success = int(success.Load())
	summary.Failed = int(failures.Load())
	summary.Elapsed = time.Since(start)

	logger.Infof("batch: %d of %s matched in %s", summary.Success, english.Plural(summary.Total, "image", "images"), summary.Elapsed)
	return summary, nil
}

// processFile возвращает пути записанных файлов и признак найденного лица.
// Отладочная картинка пишется и для изображений без лица.
func (s *BatchService) processFile(ctx context.Context, file string, opts BatchOptions, seed uint64) ([]string, bool, error) {
	img, err := render.Open(file)
	if err != nil {
		return nil, false, err
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	images, err := s.toon.RenderImage(ctx, img, rng, opts.Debug)
	if err != nil {
		return nil, false, err
	}

	var out []string
	if images.Debug != nil {
		debugName := filesystem.OutputName(opts.Output, file, "debug")
		if err := render.Save(images.Debug, debugName); err != nil {
			return out, false, fmt.Errorf("save %s: %w", debugName, err)
		}
		out = append(out, debugName)
	}

	if !images.Result.HasFace() {
		return out, false, nil
	}

	toonName := filesystem.OutputName(opts.Output, file, "toon")
	if err := render.Save(images.Toon, toonName); err != nil {
		return out, false, fmt.Errorf("save %s: %w", toonName, err)
	}
	return append(out, toonName), true, nil
}
