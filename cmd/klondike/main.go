package main

import (
	"log"

	"github.com/jask/klondike/internal/cards"
	"github.com/jask/klondike/internal/config"
	"github.com/jask/klondike/internal/engine"
	"github.com/jask/klondike/internal/logging"
	"github.com/jask/klondike/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := logging.Open(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closeLog()

	var deckOpts []cards.Option
	if cfg.Game.Seed != 0 {
		deckOpts = append(deckOpts, cards.WithSeed(cfg.Game.Seed))
	}
	if cfg.Game.Ordered {
		deckOpts = append(deckOpts, cards.Ordered())
	}
	deck := cards.NewDeck(deckOpts...)

	eng := engine.New(deck, engine.WithLogger(logger))
	eng.AddListener(engine.ListenerFunc(func() {
		logger.Debug("game state changed", "deal", eng.DealID(), "deck", eng.DeckSize())
	}))

	app, err := tui.New(eng, cfg.UI.Theme)
	if err != nil {
		log.Fatalf("tui: %v", err)
	}
	if err := tui.Run(app); err != nil {
		log.Fatalf("run: %v", err)
	}
}
