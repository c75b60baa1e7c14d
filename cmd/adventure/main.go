// Package main provides the console inventory demo binary: it loads the
// item catalog, builds a player from configuration, and runs the text menu
// on stdin/stdout.
package main

import (
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cory-johannsen/adventure/internal/config"
	"github.com/cory-johannsen/adventure/internal/game/item"
	"github.com/cory-johannsen/adventure/internal/game/menu"
	"github.com/cory-johannsen/adventure/internal/game/player"
	"github.com/cory-johannsen/adventure/internal/observability"
)

func main() {
	configPath := flag.String("config", "configs/demo.yaml", "path to configuration file")
	itemsDir := flag.String("items-dir", "", "path to item YAML definitions directory (overrides config)")
	playerName := flag.String("name", "", "player name (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	dir := cfg.Content.ItemsDir
	if *itemsDir != "" {
		dir = *itemsDir
	}
	defs, err := item.LoadDefs(dir)
	if err != nil {
		logger.Fatal("loading item definitions", zap.Error(err))
	}

	registry := item.NewRegistry()
	for _, d := range defs {
		if err := registry.Register(d); err != nil {
			logger.Fatal("registering item definition", zap.Error(err))
		}
	}
	logger.Info("item catalog loaded",
		zap.String("dir", dir),
		zap.Int("items", registry.Len()),
	)

	name := cfg.Player.Name
	if *playerName != "" {
		name = *playerName
	}
	p, err := player.New(player.Stats{
		Name:        name,
		MaxHealth:   cfg.Player.MaxHealth,
		BaseAttack:  cfg.Player.BaseAttack,
		BaseDefense: cfg.Player.BaseDefense,
	}, logger)
	if err != nil {
		logger.Fatal("creating player", zap.Error(err))
	}

	m := menu.New(p, registry, os.Stdin, os.Stdout, logger)
	if err := m.Run(); err != nil {
		logger.Fatal("menu loop", zap.Error(err))
	}
	logger.Info("session ended", zap.String("player", p.Name()))
}
