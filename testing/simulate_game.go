package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ebarkley/dungeoneer/internal/config"
	"github.com/ebarkley/dungeoneer/internal/game"
	"github.com/ebarkley/dungeoneer/internal/narrative"
	"github.com/ebarkley/dungeoneer/internal/repo"
	"github.com/ebarkley/dungeoneer/internal/telemetry"
)

const player = "simulated-adventurer"

// A fixed command script that walks the whole surface: start an
// adventure, push deeper a few times, check the shop loop, and leave.
var script = [][]string{
	{"start"},
	{"continue"},
	{"continue"},
	{"continue"},
	{"stats"},
	{"inventory"},
	{"shop"},
	{"sell", "all"},
	{"buy", "1"},
	{"use", "1"},
	{"continue"},
	{"flee"},
	{"stats"},
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gen, err := narrative.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create narrative generator: %v", err)
	}
	defer gen.Close()

	r := repo.NewFileRepository(cfg.SaveDir)
	svc := game.NewService(r, gen, game.NewRNG(time.Now().UnixNano()), telemetry.NoopTracer())

	for i, cmd := range script {
		fmt.Printf("--- Step %d: /%s %v ---\n", i+1, cmd[0], cmd[1:])
		response := svc.Handle(ctx, cmd[0], player, cmd[1:])
		fmt.Println(response)
		fmt.Println()
	}
}
