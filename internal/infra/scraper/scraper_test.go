package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adcopy/config"
	domainerrors "adcopy/internal/domain/errors"

	"github.com/chromedp/cdproto/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longCopy = "Our running shoes are built for long distances with a cushioned sole, " +
	"breathable mesh and a grippy outsole that holds on wet pavement."

func TestExtract(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("prefers main over body and strips noise", func(t *testing.T) {
		html := `<html><head>
			<title> Trail   Shoes </title>
			<meta name="description" content="Shoes for trails">
			<meta name="keywords" content="running, trail , ,shoes">
			<meta property="og:title" content="OG Trail">
			</head><body>
			<nav>Home About</nav>
			<main><script>var x = 1;</script><p>` + longCopy + `</p><div class="ad">Buy now</div></main>
			<footer>Copyright</footer>
			</body></html>`

		page, err := Extract(strings.NewReader(html), 10000, now)
		require.NoError(t, err)

		assert.Equal(t, "Trail Shoes", page.Title)
		assert.Equal(t, longCopy, page.Content)
		assert.Equal(t, "Shoes for trails", page.Metadata.Description)
		assert.Equal(t, []string{"running", "trail", "shoes"}, page.Metadata.Keywords)
		assert.Equal(t, "OG Trail", page.Metadata.OGTitle)
		assert.Equal(t, now, page.Metadata.ScrapedAt)
	})

	t.Run("short main falls through to body", func(t *testing.T) {
		html := `<html><body><main>Short</main><section>` + longCopy + `</section></body></html>`

		page, err := Extract(strings.NewReader(html), 10000, now)
		require.NoError(t, err)
		assert.Equal(t, "Short "+longCopy, page.Content)
	})

	t.Run("separates adjacent block elements", func(t *testing.T) {
		html := `<html><body><main><h1>Summer Sale</h1><p>` + longCopy + `</p>` +
			`<ul><li>Free shipping</li><li>Easy returns</li></ul><p>Made in <b>Port</b>land<br>Oregon</p></main></body></html>`

		page, err := Extract(strings.NewReader(html), 10000, now)
		require.NoError(t, err)
		assert.Equal(t, "Summer Sale "+longCopy+" Free shipping Easy returns Made in Portland Oregon", page.Content)
	})

	t.Run("thin page keeps the short text", func(t *testing.T) {
		page, err := Extract(strings.NewReader(`<html><body><div id="app">Loading</div></body></html>`), 10000, now)
		require.NoError(t, err)
		assert.Equal(t, "Loading", page.Content)
		assert.Empty(t, page.Metadata.Keywords)
	})

	t.Run("truncates with marker", func(t *testing.T) {
		page, err := Extract(strings.NewReader(`<html><body><main>`+longCopy+`</main></body></html>`), 20, now)
		require.NoError(t, err)
		assert.Equal(t, longCopy[:20]+"...", page.Content)
	})
}

func TestStaticFetcher_Fetch(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)

			return
		}
		_, _ = w.Write([]byte(`<html><head><title>Landing</title></head><body><article>` + longCopy + `</article></body></html>`))
	}))
	t.Cleanup(server.Close)

	fetcher := newStaticFetcher(&config.ScraperConfig{MaxContentLength: 10000}, server.Client())

	page, err := fetcher.Fetch(context.Background(), server.URL+"/landing")
	require.NoError(t, err)
	assert.Equal(t, "Landing", page.Title)
	assert.Equal(t, longCopy, page.Content)
	assert.Equal(t, defaultUserAgent, gotAgent)

	_, err = fetcher.Fetch(context.Background(), server.URL+"/missing")
	var upstream *domainerrors.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
}

func TestIdleTracker(t *testing.T) {
	t.Run("fires on network idle of the navigated document", func(t *testing.T) {
		tracker := newIdleTracker()
		tracker.observe(&page.EventLifecycleEvent{Name: "init", LoaderID: "doc"})
		tracker.observe(&page.EventLifecycleEvent{Name: "init", LoaderID: "iframe"})
		tracker.observe(&page.EventLifecycleEvent{Name: "networkIdle", LoaderID: "iframe"})

		select {
		case <-tracker.idle:
			t.Fatal("idle fired for a subframe")
		default:
		}

		tracker.observe(&page.EventLifecycleEvent{Name: "load", LoaderID: "doc"})
		tracker.observe(&page.EventLifecycleEvent{Name: "networkIdle", LoaderID: "doc"})
		tracker.observe(&page.EventLifecycleEvent{Name: "networkIdle", LoaderID: "doc"})

		err := tracker.wait(time.Second)(context.Background())
		assert.NoError(t, err)
	})

	t.Run("ignores idle events before navigation", func(t *testing.T) {
		tracker := newIdleTracker()
		tracker.observe(&page.EventLifecycleEvent{Name: "networkIdle", LoaderID: "blank"})
		tracker.observe("unrelated event")

		select {
		case <-tracker.idle:
			t.Fatal("idle fired without a navigation")
		default:
		}
	})

	t.Run("proceeds after the limit", func(t *testing.T) {
		tracker := newIdleTracker()

		start := time.Now()
		err := tracker.wait(20 * time.Millisecond)(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		tracker := newIdleTracker()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := tracker.wait(time.Minute)(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
