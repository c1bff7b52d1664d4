package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ebarkley/dungeoneer/internal/config"
	"github.com/ebarkley/dungeoneer/internal/game"
	"github.com/ebarkley/dungeoneer/internal/narrative"
	"github.com/ebarkley/dungeoneer/internal/repo"
	"github.com/ebarkley/dungeoneer/internal/telemetry"
	"github.com/ebarkley/dungeoneer/internal/tui"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	var tracer trace.Tracer
	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("telemetry disabled: %v", err)
			tracer = telemetry.NoopTracer()
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Printf("telemetry shutdown: %v", err)
				}
			}()
			tracer = telemetry.Tracer("game")
		}
	} else {
		tracer = telemetry.NoopTracer()
	}

	gen, err := narrative.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("creating narrative generator: %w", err)
	}
	defer gen.Close()

	r := repo.NewFileRepository(cfg.SaveDir)
	svc := game.NewService(r, gen, game.NewRNG(time.Now().UnixNano()), tracer)

	return tui.Run(svc, r, cfg.PlayerName)
}
