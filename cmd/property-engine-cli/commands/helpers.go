package commands

import (
	"fmt"

	"github.com/findy-ai/property-engine/cmd/property-engine-cli/ui"
	"github.com/findy-ai/property-engine/internal/config"
	"github.com/findy-ai/property-engine/internal/dataset"
	"github.com/findy-ai/property-engine/internal/llm"
	"github.com/findy-ai/property-engine/internal/observability"
	"github.com/findy-ai/property-engine/pkg/engine"
)

// buildEngine loads config, the listings snapshot, and wires an engine for a
// one-shot CLI command. The logger stays quiet unless --verbose is set, and
// the model fallback is wired when the config enables it.
func buildEngine() (*engine.Engine, *config.Config, error) {
	ui.Init(noColor, verbose)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	level := "error"
	if verbose {
		level = "debug"
	}
	logger := observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      "console",
		ServiceName: cfg.Observability.ServiceName,
	})

	var completer llm.Completer
	if cfg.LLM.Enabled {
		completer = llm.NewClient(llm.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		})
	}

	loader := dataset.NewLoader(cfg.Dataset.Path, cfg.Dataset.Delimiter, logger)
	eng := engine.New(loader, engine.Options{Logger: logger, Completer: completer, MaxResults: cfg.Finder.MaxResults})
	return eng, cfg, nil
}

func formatPrice(price int) string {
	if price <= 0 {
		return "-"
	}
	return fmt.Sprintf("$%d", price)
}
