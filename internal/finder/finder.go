package finder

import (
	"github.com/findy-ai/property-engine/internal/dataset"
	"github.com/findy-ai/property-engine/internal/observability"
)

// Service turns chat messages into property search replies. It is the main
// entry point of the engine: classification, criteria extraction, history
// merging, filtering, and formatting all run behind GenerateResponse.
type Service struct {
	provider   dataset.Provider
	logger     *observability.Logger
	maxResults int

	// searchFn is swappable from tests to observe whether the filter
	// engine ran at all.
	searchFn func([]dataset.Property, Criteria) []dataset.Property
}

// Response carries the reply text plus the structured view of how it was
// produced, for API consumers that want more than prose.
type Response struct {
	Reply          string             `json:"reply"`
	Conversational bool               `json:"conversational"`
	Criteria       Criteria           `json:"criteria"`
	Results        []dataset.Property `json:"results,omitempty"`
	TotalMatches   int                `json:"totalMatches"`
}

// NewService builds a Service over a property provider. maxResults caps how
// many listings a reply expands; zero or negative falls back to the default.
func NewService(provider dataset.Provider, logger *observability.Logger, maxResults int) *Service {
	if logger == nil {
		logger = observability.Nop()
	}
	if maxResults <= 0 {
		maxResults = maxDisplayed
	}
	return &Service{
		provider:   provider,
		logger:     logger.WithComponent("finder"),
		maxResults: maxResults,
		searchFn:   SearchRecords,
	}
}

// GenerateResponse answers one chat turn. Small talk is answered without
// loading criteria or touching the snapshot filter; everything else goes
// through extraction, optional history merging, and the filter engine.
func (s *Service) GenerateResponse(message string, history []Message) Response {
	if category, ok := ClassifyConversational(message); ok {
		s.logger.Debug().
			Str("category", string(category)).
			Msg("conversational message, skipping search")
		return Response{
			Reply:          ConversationalReply(category, s.provider.Count()),
			Conversational: true,
		}
	}

	criteria := Extract(message)
	if IsModification(message) {
		if previous := PreviousCriteria(history); !previous.IsEmpty() {
			criteria = ApplyModification(previous, message)
		}
	}

	results := s.searchFn(s.provider.Load(), criteria)
	s.logger.Debug().
		Str("criteria", criteria.String()).
		Int("matches", len(results)).
		Msg("search completed")

	shown := results
	if len(shown) > s.maxResults {
		shown = shown[:s.maxResults]
	}
	return Response{
		Reply:        FormatResults(results, criteria, s.maxResults),
		Criteria:     criteria,
		Results:      shown,
		TotalMatches: len(results),
	}
}

// Search applies extraction and filtering without chat formatting, for the
// structured search endpoint.
func (s *Service) Search(c Criteria) []dataset.Property {
	return s.searchFn(s.provider.Load(), c)
}
