package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartsignals/internal/api"
	"smartsignals/internal/store"
)

const marketsPage = `<html><body>
<ul>
<li class="clearfix"><h2>Sensex rallies 500 points on strong global cues</h2></li>
<li class="clearfix"><h2>Nifty ends above 24,800 as banks surge</h2></li>
<li class="clearfix"><h2>Rupee slips against dollar</h2></li>
</ul>
</body></html>`

func newsServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(marketsPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScraperCollectsHeadlines(t *testing.T) {
	srv := newsServer(t)

	s := NewScraper([]store.NewsSource{
		{Name: "TestSource", URL: srv.URL + "/markets/", Selector: "li.clearfix h2"},
	}, 5*time.Second)

	got := s.Scrape(context.Background(), 10)
	if len(got) != 3 {
		t.Fatalf("headlines = %d, want 3", len(got))
	}
	if got[0].Source != "TestSource" {
		t.Errorf("source = %q, want TestSource", got[0].Source)
	}
	if got[0].Title != "Sensex rallies 500 points on strong global cues" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestScraperRespectsLimit(t *testing.T) {
	srv := newsServer(t)

	s := NewScraper([]store.NewsSource{
		{Name: "TestSource", URL: srv.URL, Selector: "li.clearfix h2"},
	}, 5*time.Second)

	got := s.Scrape(context.Background(), 2)
	if len(got) != 2 {
		t.Fatalf("headlines = %d, want 2", len(got))
	}
}

func TestScraperUnreachableSourceIsEmpty(t *testing.T) {
	s := NewScraper([]store.NewsSource{
		{Name: "Dead", URL: "http://127.0.0.1:1/news", Selector: "h2"},
	}, 500*time.Millisecond)

	got := s.Scrape(context.Background(), 10)
	if len(got) != 0 {
		t.Fatalf("headlines from unreachable source = %d, want 0", len(got))
	}
}

func TestFallbackFetch(t *testing.T) {
	srv := newsServer(t)

	client := api.NewClient(api.WithTimeout(5 * time.Second))
	sources := []store.NewsSource{
		{Name: "TestSource", URL: srv.URL, Selector: "li.clearfix h2"},
	}

	got := fallbackFetch(context.Background(), client, sources, 10)
	if len(got) != 3 {
		t.Fatalf("fallback headlines = %d, want 3", len(got))
	}
	if got[2].Title != "Rupee slips against dollar" {
		t.Errorf("title = %q", got[2].Title)
	}
}

func TestServiceUnavailableMeansEmpty(t *testing.T) {
	cfg := &store.Config{}
	cfg.News.MaxHeadlines = 5
	cfg.News.TimeoutSeconds = 1
	cfg.News.Sources = []store.NewsSource{
		{Name: "Dead", URL: "http://127.0.0.1:1/news", Selector: "h2"},
	}

	svc := NewService(cfg)
	got := svc.Headlines(context.Background())
	if len(got) != 0 {
		t.Fatalf("headlines = %d, want 0 (unavailable)", len(got))
	}
}
