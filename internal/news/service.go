package news

import (
	"context"
	"time"

	"smartsignals/internal/api"
	"smartsignals/internal/interfaces"
	"smartsignals/internal/logger"
	"smartsignals/internal/store"
	"smartsignals/internal/types"
)

// Service is the headline collaborator: it scrapes the configured sources and
// reports unavailability as an empty list, never as an error.
type Service struct {
	scraper      *Scraper
	client       *api.Client
	sources      []store.NewsSource
	maxHeadlines int
}

var _ interfaces.HeadlineProvider = (*Service)(nil)

// NewService builds the headline service from config.
func NewService(cfg *store.Config) *Service {
	timeout := time.Duration(cfg.News.TimeoutSeconds) * time.Second
	return &Service{
		scraper: NewScraper(cfg.News.Sources, timeout),
		client: api.NewClient(
			api.WithTimeout(timeout),
			api.WithLogging(true),
		),
		sources:      cfg.News.Sources,
		maxHeadlines: cfg.News.MaxHeadlines,
	}
}

// Headlines collects current market headlines, falling back to a direct fetch
// when the collector yields nothing. An empty result means the news feeds are
// unavailable right now.
func (s *Service) Headlines(ctx context.Context) []types.Headline {
	headlines := s.scraper.Scrape(ctx, s.maxHeadlines)
	if len(headlines) == 0 {
		logger.Warn(ctx, "Collector returned no headlines, trying direct fetch")
		headlines = fallbackFetch(ctx, s.client, s.sources, s.maxHeadlines)
	}
	return headlines
}
