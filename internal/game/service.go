// Package game implements the adventure progression engine: the dungeon
// encounter state machine, combat resolution, the shop, and the command
// surface the chat transport calls into.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ebarkley/dungeoneer/internal/models"
	"github.com/ebarkley/dungeoneer/internal/narrative"
	"github.com/ebarkley/dungeoneer/internal/repo"
)

// Service handles one player command per call: load records, apply the
// operation, persist, and answer with text. It never raises to the
// transport; every failure becomes a user-facing message.
type Service struct {
	repo   repo.Repository
	gen    narrative.Generator
	shop   *Shop
	rng    *RNG
	tracer trace.Tracer
}

func NewService(r repo.Repository, gen narrative.Generator, rng *RNG, tracer trace.Tracer) *Service {
	return &Service{
		repo:   r,
		gen:    gen,
		shop:   NewShop(),
		rng:    rng,
		tracer: tracer,
	}
}

// Handle runs a single command for a player and returns the response text.
func (s *Service) Handle(ctx context.Context, command, actor string, args []string) string {
	ctx, span := s.tracer.Start(ctx, "game."+command,
		trace.WithAttributes(attribute.String("player.name", actor)))
	defer span.End()

	response, err := s.dispatch(ctx, command, actor, args)
	if err == nil {
		return response
	}

	switch {
	case errors.Is(err, repo.ErrNotFound):
		return "No adventure found. Use /start to begin a new one."
	case errors.Is(err, models.ErrInvalid):
		return userMessage(err)
	default:
		span.RecordError(err)
		log.Printf("command %q for %s failed: %v", command, actor, err)
		return "Something went wrong in the dungeon's depths. Please try again later."
	}
}

func (s *Service) dispatch(ctx context.Context, command, actor string, args []string) (string, error) {
	switch command {
	case "start":
		return s.start(ctx, actor)
	case "continue":
		return s.continueAdventure(ctx, actor)
	case "flee":
		return s.flee(ctx, actor)
	case "escape":
		return s.escape(ctx, actor)
	case "equip":
		return s.equip(actor, args)
	case "sell":
		return s.sell(actor, args)
	case "buy":
		return s.buy(actor, args)
	case "use":
		return s.use(actor, args)
	case "inventory":
		return s.inventory(actor)
	case "stats":
		return s.stats(actor)
	case "shop":
		return s.shop.Display(), nil
	default:
		return "", fmt.Errorf("%w: unknown command %q", models.ErrInvalid, command)
	}
}

func (s *Service) equip(actor string, args []string) (string, error) {
	index, err := indexArg(args, "equip")
	if err != nil {
		return "", err
	}
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	msg, err := p.EquipArmor(index)
	if err != nil {
		return "", err
	}
	return msg, s.repo.SavePlayer(p)
}

func (s *Service) sell(actor string, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: sell needs an inventory number or \"all\"", models.ErrInvalid)
	}
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}

	if args[0] == "all" {
		sold, msg := p.SellAllTreasures()
		for _, t := range sold {
			if err := s.repo.DeleteTreasure(actor, t.ID); err != nil {
				return "", err
			}
		}
		return msg, s.repo.SavePlayer(p)
	}

	index, err := indexArg(args, "sell")
	if err != nil {
		return "", err
	}
	t, msg, err := p.SellTreasure(index)
	if err != nil {
		return "", err
	}
	if err := s.repo.DeleteTreasure(actor, t.ID); err != nil {
		return "", err
	}
	return msg, s.repo.SavePlayer(p)
}

func (s *Service) buy(actor string, args []string) (string, error) {
	index, err := indexArg(args, "buy")
	if err != nil {
		return "", err
	}
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	msg, err := s.shop.Buy(index, p)
	if err != nil {
		return "", err
	}
	return msg, s.repo.SavePlayer(p)
}

func (s *Service) use(actor string, args []string) (string, error) {
	index, err := indexArg(args, "use")
	if err != nil {
		return "", err
	}
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	msg, err := p.UseItem(index)
	if err != nil {
		return "", err
	}
	return msg, s.repo.SavePlayer(p)
}

func (s *Service) inventory(actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	return p.DescribeInventory(), nil
}

func (s *Service) stats(actor string) (string, error) {
	p, err := s.repo.LoadPlayer(actor)
	if err != nil {
		return "", err
	}
	return p.DescribeStats(), nil
}

// userMessage turns a validation error into a sentence for the player.
func userMessage(err error) string {
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// indexArg parses a 1-based position argument into a 0-based index.
func indexArg(args []string, command string) (int, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: %s needs an item number", models.ErrInvalid, command)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an item number", models.ErrInvalid, args[0])
	}
	return n - 1, nil
}
