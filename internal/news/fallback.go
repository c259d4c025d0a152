package news

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"smartsignals/internal/api"
	"smartsignals/internal/logger"
	"smartsignals/internal/store"
	"smartsignals/internal/types"
)

// fallbackFetch retries the sources with a plain HTTP GET and a goquery parse
// when the collector came back empty. Some of the news pages intermittently
// reject crawler traffic while serving browser-shaped requests.
func fallbackFetch(ctx context.Context, client *api.Client, sources []store.NewsSource, maxHeadlines int) []types.Headline {
	headlines := []types.Headline{}

	for _, source := range sources {
		if len(headlines) >= maxHeadlines {
			break
		}

		resp, err := client.GET(ctx, source.URL, api.BrowserHeaders())
		if err != nil {
			logger.Warn(ctx, "Fallback fetch failed", "source", source.Name, "error", err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
		if err != nil {
			logger.Warn(ctx, "Fallback parse failed", "source", source.Name, "error", err)
			continue
		}

		doc.Find(source.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			title := strings.TrimSpace(sel.Text())
			if title != "" {
				headlines = append(headlines, types.Headline{
					Source: source.Name,
					Title:  title,
				})
			}
			return len(headlines) < maxHeadlines
		})
	}

	return headlines
}
