/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"embed"
	"time"

	"github.com/Seednode/guessbox/games/guesser"
	"go.uber.org/zap"
)

//go:embed data/*
var data embed.FS

const (
	builtinEntities = "data/entities.json"
	builtinMatrix   = "data/trait-matrix.json"
)

func loadCatalog(cfg *Config) (*guesser.Catalog, error) {
	if cfg.catalog == "" {
		return guesser.DefaultCatalog(), nil
	}

	return loadFile(cfg, cfg.catalog, "", guesser.LoadCatalog)
}

// loadEngine builds the engine from the configured data files, falling back
// to the built-in dataset for any that are unset.
func loadEngine(cfg *Config) (*guesser.Engine, error) {
	startTime := time.Now()

	ec, err := cfg.engineConfig()
	if err != nil {
		return nil, err
	}

	entities, err := loadFile(cfg, cfg.entities, builtinEntities, guesser.LoadEntities)
	if err != nil {
		return nil, err
	}

	matrix, err := loadFile(cfg, cfg.matrix, builtinMatrix, guesser.LoadMatrix)
	if err != nil {
		return nil, err
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	engine, err := guesser.NewEngine(entities, matrix, catalog, ec,
		guesser.WithLogger(cfg.log().Named("engine")),
		guesser.WithJitter(guesser.NewSeededJitter(seed)),
	)
	if err != nil {
		return nil, err
	}

	cfg.log().Info("loaded dataset",
		zap.Int("entities", engine.NumEntities()),
		zap.Int("traits", catalog.Len()),
		zap.Int("matrix_rows", matrix.Len()),
		zap.Uint64("seed", seed),
		zap.Duration("elapsed", time.Since(startTime).Round(time.Microsecond)),
	)

	return engine, nil
}
