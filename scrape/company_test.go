package scrape_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/coverletter"
	"github.com/fwojciec/coverletter/goquery"
	clhttp "github.com/fwojciec/coverletter/http"
	"github.com/fwojciec/coverletter/mock"
	"github.com/fwojciec/coverletter/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sitePages returns a mock fetcher serving pages keyed by URL. Missing pages fail.
func sitePages(pages map[string]string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if html, ok := pages[url]; ok {
				return html, nil
			}
			return "", errors.New("HTTP 404 for " + url)
		},
	}
}

func TestCompanyCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("builds profile from landing page and sub-pages", func(t *testing.T) {
		t.Parallel()

		fetcher := sitePages(map[string]string{
			"https://acme.example":             `<html><head><title>Acme Bio | Home</title></head><body><nav>Menu</nav><p>Welcome to Acme.</p></body></html>`,
			"https://acme.example/about":       `<html><body><main>We make medicines.</main></body></html>`,
			"https://acme.example/about-us":    `<html><body><main>Founded in 2010.</main></body></html>`,
			"https://acme.example/our-science": `<html><body><main>RNA platform.</main></body></html>`,
			"https://acme.example/pipeline":    `<html><body><main>Three programs in Phase 2.</main></body></html>`,
		})

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		result := c.Crawl(context.Background(), "acme.example/careers")

		require.True(t, result.Success)
		require.NotNil(t, result.Data)
		assert.Equal(t, "https://acme.example", result.SourceURL)
		assert.Equal(t, "Acme Bio", result.Data.Name)
		assert.Equal(t, "Welcome to Acme.", result.Data.RawContent)
		assert.Equal(t, "We make medicines. Founded in 2010.", result.Data.Mission)
		assert.Equal(t, "RNA platform. Three programs in Phase 2.", result.Data.Science)
	})

	t.Run("fails when landing page fetch fails", func(t *testing.T) {
		t.Parallel()

		fetcher := sitePages(map[string]string{
			"https://acme.example/about": `<html><body><main>About</main></body></html>`,
		})

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		result := c.Crawl(context.Background(), "https://acme.example")

		assert.False(t, result.Success)
		assert.Nil(t, result.Data)
		assert.Contains(t, result.Error, "404")
	})

	t.Run("succeeds with empty fields when every sub-page fails", func(t *testing.T) {
		t.Parallel()

		fetcher := sitePages(map[string]string{
			"https://acme.example": `<html><head><title>Acme</title></head><body>Landing</body></html>`,
		})

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		result := c.Crawl(context.Background(), "https://acme.example")

		require.True(t, result.Success)
		assert.Empty(t, result.Data.Mission)
		assert.Empty(t, result.Data.Science)
		assert.Equal(t, "Landing", result.Data.RawContent)
		assert.Empty(t, result.Error)
	})

	t.Run("truncates landing snapshot and sub-page contributions", func(t *testing.T) {
		t.Parallel()

		fetcher := sitePages(map[string]string{
			"https://acme.example":       `<html><body>` + strings.Repeat("l", 6000) + `</body></html>`,
			"https://acme.example/about": `<html><body><main>` + strings.Repeat("a", 4000) + `</main></body></html>`,
		})

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		result := c.Crawl(context.Background(), "https://acme.example")

		require.True(t, result.Success)
		assert.Len(t, result.Data.RawContent, scrape.MaxRawContentLength)
		assert.Len(t, result.Data.Mission, scrape.MaxPageContentLength)
	})

	t.Run("applies shorter deadline to sub-pages", func(t *testing.T) {
		t.Parallel()

		var landing, sub atomic.Int64
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				deadline, _ := ctx.Deadline()
				remaining := int64(time.Until(deadline))
				if url == "https://acme.example" {
					landing.Store(remaining)
				} else {
					sub.Store(remaining)
				}
				return "<html><body>x</body></html>", nil
			},
		}

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		c.Crawl(context.Background(), "https://acme.example")

		assert.Greater(t, time.Duration(landing.Load()), 9*time.Second)
		assert.LessOrEqual(t, time.Duration(sub.Load()), scrape.DefaultPageTimeout)
	})

	t.Run("isolates slow sub-pages", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				switch url {
				case "https://acme.example":
					return "<html><body>Landing</body></html>", nil
				case "https://acme.example/pipeline":
					<-ctx.Done()
					return "", ctx.Err()
				case "https://acme.example/about":
					return "<html><body><main>About us.</main></body></html>", nil
				}
				return "", errors.New("not found")
			},
		}

		c := scrape.NewCompanyCrawler(fetcher, goquery.NewExtractor())
		c.PageTimeout = 20 * time.Millisecond
		result := c.Crawl(context.Background(), "https://acme.example")

		require.True(t, result.Success)
		assert.Equal(t, "About us.", result.Data.Mission)
		assert.Empty(t, result.Data.Science)
	})

	t.Run("waits on limiter before each sub-page", func(t *testing.T) {
		t.Parallel()

		var waits atomic.Int32
		limiter := &mock.HostLimiter{
			WaitFn: func(_ context.Context, host string) error {
				assert.Equal(t, "acme.example", host)
				waits.Add(1)
				return nil
			},
		}

		c := scrape.NewCompanyCrawler(sitePages(map[string]string{
			"https://acme.example": "<html><body>x</body></html>",
		}), goquery.NewExtractor())
		c.Limiter = limiter
		result := c.Crawl(context.Background(), "https://acme.example")

		require.True(t, result.Success)
		assert.Equal(t, int32(len(scrape.DefaultSubPaths)), waits.Load())
	})

	t.Run("fails on invalid URL", func(t *testing.T) {
		t.Parallel()

		c := scrape.NewCompanyCrawler(&mock.Fetcher{}, &mock.Extractor{})
		result := c.Crawl(context.Background(), "")

		assert.False(t, result.Success)
		assert.Equal(t, "URL is required", result.Error)
	})

	t.Run("crawls a live server tolerating missing pages", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/{$}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><head><title>Helix Therapeutics - Home</title></head><body><p>Helix home.</p></body></html>`))
		})
		mux.HandleFunc("/our-science", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body><article>Antibody engineering.</article></body></html>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		c := scrape.NewCompanyCrawler(clhttp.NewFetcher(), goquery.NewExtractor())
		result := c.Crawl(context.Background(), server.URL+"/jobs/42")

		require.True(t, result.Success)
		assert.Equal(t, server.URL, result.SourceURL)
		assert.Equal(t, "Helix Therapeutics", result.Data.Name)
		assert.Equal(t, "Antibody engineering.", result.Data.Science)
		assert.Empty(t, result.Data.Mission)
	})
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"acme.example", "https://acme.example"},
		{"https://acme.example/about?x=1", "https://acme.example"},
		{"http://acme.example:8080/a/b", "http://acme.example:8080"},
		{"  HTTPS://acme.example/  ", "https://acme.example"},
	}
	for _, tt := range tests {
		got, err := scrape.Origin(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := scrape.Origin("https://")
	require.Error(t, err)
	assert.Equal(t, coverletter.EINVALID, coverletter.ErrorCode(err))
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, scrape.CategoryMission, scrape.Classify("/about"))
	assert.Equal(t, scrape.CategoryMission, scrape.Classify("/about-us"))
	assert.Equal(t, scrape.CategoryMission, scrape.Classify("/our-mission"))
	assert.Equal(t, scrape.CategoryScience, scrape.Classify("/our-science"))
	assert.Equal(t, scrape.CategoryScience, scrape.Classify("/pipeline"))
	assert.Equal(t, scrape.CategoryMission, scrape.Classify("/about-our-science"))
	assert.Equal(t, scrape.CategoryNone, scrape.Classify("/careers"))
}

func TestHostLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows burst then blocks", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewHostLimiter(1, 1)
		require.NoError(t, l.Wait(context.Background(), "a.example"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, l.Wait(ctx, "a.example"))
	})

	t.Run("tracks hosts independently", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewHostLimiter(1, 1)
		require.NoError(t, l.Wait(context.Background(), "a.example"))
		require.NoError(t, l.Wait(context.Background(), "b.example"))
	})
}
