package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/leadpilot/sector-cli/internal/batch"
	"github.com/leadpilot/sector-cli/internal/cascade"
	"github.com/leadpilot/sector-cli/internal/normalize"
	"github.com/leadpilot/sector-cli/internal/override"
	"github.com/leadpilot/sector-cli/internal/store"
	"github.com/leadpilot/sector-cli/internal/taxonomy"
	"github.com/leadpilot/sector-cli/pkg/llm"
	"github.com/leadpilot/sector-cli/pkg/registry"
	"github.com/leadpilot/sector-cli/pkg/websearch"
)

// appEnv bundles everything a command needs once configuration is loaded.
type appEnv struct {
	Store        store.Store
	Catalog      *taxonomy.Catalog
	Orchestrator *cascade.Orchestrator
	Runner       *batch.Runner
}

func (e *appEnv) Close() {
	if err := e.Store.Close(); err != nil {
		zap.L().Warn("close store", zap.Error(err))
	}
}

func initApp(ctx context.Context) (*appEnv, error) {
	st, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "migrate store")
	}

	sectors := taxonomy.Builtin()
	if cfg.Taxonomy.Path != "" {
		sectors, err = taxonomy.LoadFile(cfg.Taxonomy.Path)
		if err != nil {
			_ = st.Close()
			return nil, eris.Wrap(err, "load taxonomy file")
		}
		zap.L().Info("taxonomy file loaded", zap.String("path", cfg.Taxonomy.Path), zap.Int("sectors", len(sectors)))
	}

	catalog := taxonomy.NewCatalog(sectors, st)
	if err := catalog.Reload(ctx); err != nil {
		_ = st.Close()
		return nil, eris.Wrap(err, "load catalog")
	}

	registryClient := registry.NewClient(
		registry.WithBaseURL(cfg.Registry.BaseURL),
		registry.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Registry.TimeoutSecs) * time.Second}),
	)
	webClient := websearch.NewClient(
		websearch.WithBaseURL(cfg.Search.BaseURL),
		websearch.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Search.TimeoutSecs) * time.Second}),
	)

	// The language-model stage is optional; without a key the cascade ends
	// at web scoring.
	var classifier llm.Classifier
	if cfg.Anthropic.Key != "" {
		classifier = llm.NewClassifier(cfg.Anthropic.Key, llm.WithModel(cfg.Anthropic.Model))
	} else {
		zap.L().Debug("SECTOR_ANTHROPIC_KEY not set, language-model stage disabled")
	}

	orchestrator := cascade.New(
		normalize.New(cfg.Normalize.PersonalDomains...),
		override.NewTable(),
		catalog,
		registryClient,
		webClient,
		classifier,
	)

	return &appEnv{
		Store:        st,
		Catalog:      catalog,
		Orchestrator: orchestrator,
		Runner:       batch.NewRunner(orchestrator, cfg.Batch.RatePerSec),
	}, nil
}
