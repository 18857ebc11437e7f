package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/urfave/cli"

	"toon-face/config"
	telegram "toon-face/internal/api"
	app "toon-face/internal/application"
	"toon-face/internal/container"
	"toon-face/internal/infrastructure/storage"
	"toon-face/internal/infrastructure/vision"
	"toon-face/internal/log"
)

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "toon-face"
	cliApp.Usage = "Draws cartoon eyes and mouth over the faces found in photos"
	cliApp.Commands = []cli.Command{
		{
			Name:   "bot",
			Usage:  "Starts the Telegram bot",
			Action: botAction,
		},
		{
			Name:  "batch",
			Usage: "Renders every image in a file or directory",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Usage: "image `PATH` or directory"},
				cli.StringFlag{Name: "output, o", Usage: "output `DIR`", Value: "."},
				cli.BoolFlag{Name: "debug, d", Usage: "also save candidate rectangles"},
				cli.IntFlag{Name: "workers, w", Usage: "number of parallel workers, overrides WORKERS"},
				cli.Uint64Flag{Name: "seed, s", Usage: "random seed, overrides SEED"},
			},
			Action: batchAction,
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(log.Fields{"error": err.Error()}, "toon-face: exit")
	}
}

// setup загружает настройки, логгер и детектор
func setup() (*config.Config, *vision.CascadeDetector, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log.Init(log.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	detector, err := vision.NewCascadeDetector(vision.NewCascadeFiles(cfg.CascadePaths()))
	if err != nil {
		return nil, nil, fmt.Errorf("create detector: %w", err)
	}

	return cfg, detector, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func botAction(c *cli.Context) error {
	cfg, detector, err := setup()
	if err != nil {
		return err
	}
	defer detector.Close()

	if cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}

	// Создаём хранилище пользователей
	userRepo := storage.NewCacheUserRepository(cfg.SessionTTL)

	// Собираем сервисы приложения
	appContainer := container.New(userRepo, detector, app.ToonOptions{
		ProfileSize: cfg.ProfileSize,
		Seed:        cfg.Seed,
	})

	// Создаём бота
	bot, err := telegram.NewBot(cfg.TelegramToken, appContainer)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	ctx, stop := signalContext()
	defer stop()

	log.Info(nil, "toon-face: bot is running")
	return bot.Run(ctx)
}

func batchAction(c *cli.Context) error {
	input := c.String("input")
	if input == "" {
		return errors.New("--input is required")
	}

	cfg, detector, err := setup()
	if err != nil {
		return err
	}
	defer detector.Close()

	workers := cfg.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}
	seed := cfg.Seed
	if c.IsSet("seed") {
		seed = c.Uint64("seed")
	}

	appContainer := container.New(storage.NewCacheUserRepository(cfg.SessionTTL), detector, app.ToonOptions{
		ProfileSize: cfg.ProfileSize,
		Seed:        seed,
	})

	ctx, stop := signalContext()
	defer stop()

	summary, err := appContainer.BatchService.Run(ctx, app.BatchOptions{
		Input:   input,
		Output:  c.String("output"),
		Debug:   c.Bool("debug"),
		Workers: workers,
		Seed:    seed,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%s of %s succeeded, %s written in %s\n",
		english.Plural(summary.Success, "image", ""),
		english.Plural(summary.Total, "image", ""),
		english.Plural(len(summary.Written), "file", ""),
		summary.Elapsed.Round(time.Millisecond))

	return nil
}
