// Package engine is the public facade of the property engine. It wires the
// dataset, the rule-based finder, market statistics, the response cache, and
// the optional language-model fallback behind one API used by both the HTTP
// server and the CLI.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/findy-ai/property-engine/internal/cache"
	"github.com/findy-ai/property-engine/internal/dataset"
	"github.com/findy-ai/property-engine/internal/finder"
	"github.com/findy-ai/property-engine/internal/llm"
	"github.com/findy-ai/property-engine/internal/market"
	"github.com/findy-ai/property-engine/internal/observability"
)

// Chat reply sources, in fallback order.
const (
	SourceFinder = "csv-finder"
	SourceLLM    = "llm"
	SourceStatic = "static"
)

// staticFallback is the last-resort reply when neither the finder nor the
// language model produced an answer.
const staticFallback = "No pude interpretar tu consulta. Probá con algo como " +
	"\"departamentos de 2 dormitorios en Nueva Córdoba hasta $120,000\" o " +
	"escribí \"ayuda\" para ver ejemplos."

// Engine answers chat messages and structured searches over the property
// snapshot.
type Engine struct {
	provider  dataset.Provider
	finder    *finder.Service
	cache     cache.Client
	completer llm.Completer
	logger    *observability.Logger
	cacheTTL  time.Duration
}

// Options configures optional engine collaborators.
type Options struct {
	// Cache stores chat and search responses; nil disables caching.
	Cache    cache.Client
	CacheTTL time.Duration
	// Completer answers messages the rule-based finder cannot; nil
	// disables the language-model tier.
	Completer llm.Completer
	Logger    *observability.Logger
	// MaxResults caps how many listings a chat reply expands; zero keeps
	// the finder's default.
	MaxResults int
}

// ChatResult is the engine's answer to one chat message.
type ChatResult struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	Fallback  bool      `json:"fallback"`
	Source    string    `json:"source"`

	Criteria     finder.Criteria    `json:"criteria"`
	Results      []dataset.Property `json:"results,omitempty"`
	TotalMatches int                `json:"totalMatches"`
}

// New creates an Engine over a property provider.
func New(provider dataset.Provider, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = observability.Nop()
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Engine{
		provider:  provider,
		finder:    finder.NewService(provider, logger, opts.MaxResults),
		cache:     opts.Cache,
		completer: opts.Completer,
		logger:    logger.WithComponent("engine"),
		cacheTTL:  ttl,
	}
}

// Chat answers one message with its conversation context and history. The
// rule-based finder answers whenever it understands the message; otherwise the
// language model is tried, and a static reply closes the gap when that too is
// unavailable.
func (e *Engine) Chat(ctx context.Context, message, convContext string, history []finder.Message) ChatResult {
	// Only context-free messages are cacheable; history and context change
	// the answer.
	cacheKey := cache.QueryKey("chat", message)
	cacheable := len(history) == 0 && convContext == ""
	if e.cache != nil && cacheable {
		if cached, err := e.cache.Get(ctx, cacheKey); err == nil {
			var result ChatResult
			if json.Unmarshal(cached, &result) == nil {
				return result
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			e.logger.Warn().Err(err).Msg("cache lookup failed")
		}
	}

	result := e.answer(ctx, message, convContext, history)

	if e.cache != nil && cacheable {
		if data, err := json.Marshal(result); err == nil {
			if err := e.cache.Set(ctx, cacheKey, data, e.cacheTTL); err != nil {
				e.logger.Warn().Err(err).Msg("cache store failed")
			}
		}
	}
	return result
}

func (e *Engine) answer(ctx context.Context, message, convContext string, history []finder.Message) ChatResult {
	resp := e.finder.GenerateResponse(message, history)
	understood := resp.Conversational || !resp.Criteria.IsEmpty() || finder.IsModification(message)
	if understood {
		return ChatResult{
			Response:     resp.Reply,
			Timestamp:    time.Now().UTC(),
			Source:       SourceFinder,
			Criteria:     resp.Criteria,
			Results:      resp.Results,
			TotalMatches: resp.TotalMatches,
		}
	}

	if e.completer != nil {
		if reply, err := e.complete(ctx, message, convContext, history); err == nil {
			return ChatResult{
				Response:  reply,
				Timestamp: time.Now().UTC(),
				Fallback:  true,
				Source:    SourceLLM,
			}
		} else {
			e.logger.Warn().Err(err).Msg("language model fallback failed")
		}
	}

	return ChatResult{
		Response:  staticFallback,
		Timestamp: time.Now().UTC(),
		Fallback:  true,
		Source:    SourceStatic,
	}
}

func (e *Engine) complete(ctx context.Context, message, convContext string, history []finder.Message) (string, error) {
	messages := make([]llm.ChatMessage, 0, len(history)+1)
	for _, msg := range history {
		messages = append(messages, llm.ChatMessage{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, llm.ChatMessage{Role: "user", Content: message})

	system := llm.SystemPrompt(e.Stats())
	if annotated := finder.AnnotateContext(convContext, history); annotated != "" {
		system += "\n\nContexto de la conversación: " + annotated
	}
	return e.completer.Complete(ctx, system, messages)
}

// Search runs structured criteria against the snapshot.
func (e *Engine) Search(c finder.Criteria) []dataset.Property {
	return e.finder.Search(c)
}

// SearchQuery extracts criteria from free text and runs them, returning the
// criteria alongside the matches so callers can show what was understood.
func (e *Engine) SearchQuery(query string) (finder.Criteria, []dataset.Property) {
	c := finder.Extract(query)
	return c, e.finder.Search(c)
}

// Stats computes market statistics over the full snapshot.
func (e *Engine) Stats() market.Stats {
	return market.Compute(e.provider.Load())
}

// StatsFiltered computes statistics over a type/neighborhood slice of the
// snapshot.
func (e *Engine) StatsFiltered(propertyType, neighborhood string) market.Stats {
	return market.Compute(market.Filter(e.provider.Load(), propertyType, neighborhood))
}

// Count reports the snapshot size.
func (e *Engine) Count() int {
	return e.provider.Count()
}

// Reload forces a snapshot re-read on providers that support it and drops
// every cached response.
func (e *Engine) Reload(ctx context.Context) int {
	type reloader interface{ Reload() []dataset.Property }

	n := e.provider.Count()
	if r, ok := e.provider.(reloader); ok {
		n = len(r.Reload())
	}
	if e.cache != nil {
		for _, prefix := range []string{"chat:", "search:"} {
			if err := e.cache.DeleteByPrefix(ctx, prefix); err != nil {
				e.logger.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidation failed")
			}
		}
	}
	return n
}
