package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"smartsignals/internal/logger"
	"smartsignals/internal/store"
	"smartsignals/internal/types"
)

// Scraper collects market headlines from the configured news pages.
type Scraper struct {
	sources []store.NewsSource
	timeout time.Duration
}

// NewScraper creates a scraper for the given sources.
func NewScraper(sources []store.NewsSource, timeout time.Duration) *Scraper {
	return &Scraper{
		sources: sources,
		timeout: timeout,
	}
}

// Scrape fetches headlines from every source. Per-source failures are logged
// and skipped; the caller sees only whatever headlines were collected.
func (s *Scraper) Scrape(ctx context.Context, maxHeadlines int) []types.Headline {
	headlines := []types.Headline{}
	seen := map[string]bool{}

	for _, source := range s.sources {
		if len(headlines) >= maxHeadlines {
			break
		}
		items, err := s.scrapeSource(ctx, source, maxHeadlines-len(headlines))
		if err != nil {
			logger.ErrorWithErr(ctx, "Failed to scrape source", err, "source", source.Name)
			continue
		}
		for _, h := range items {
			if seen[h.Title] {
				continue
			}
			seen[h.Title] = true
			headlines = append(headlines, h)
		}
	}

	logger.Info(ctx, "Headline scraping completed", "sources", len(s.sources), "headlines", len(headlines))
	return headlines
}

// scrapeSource pulls headline text from a single news page.
func (s *Scraper) scrapeSource(ctx context.Context, source store.NewsSource, maxHeadlines int) ([]types.Headline, error) {
	headlines := []types.Headline{}

	c := colly.NewCollector(
		colly.AllowedDomains(hostOf(source.URL)),
		colly.MaxDepth(1),
		colly.Async(false),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	})

	c.OnHTML(source.Selector, func(e *colly.HTMLElement) {
		if len(headlines) >= maxHeadlines {
			return
		}
		title := strings.TrimSpace(e.Text)
		if title == "" {
			return
		}
		headlines = append(headlines, types.Headline{
			Source: source.Name,
			Title:  title,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "source", source.Name, "url", r.Request.URL.String())
	})

	if err := c.Visit(source.URL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", source.URL, err)
	}
	c.Wait()

	return headlines, nil
}

func hostOf(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
