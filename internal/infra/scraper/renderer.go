package scraper

import (
	"context"
	"strings"
	"sync"
	"time"

	"adcopy/config"
	"adcopy/internal/domain/entity"
	domainerrors "adcopy/internal/domain/errors"
	"adcopy/internal/domain/service"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	defaultSettleDelay = 2 * time.Second
	networkIdleTimeout = 10 * time.Second
)

// BrowserRenderer implements service.PageRenderer with headless Chrome. Every
// Render starts its own browser process and shuts it down afterwards.
type BrowserRenderer struct {
	execPath    string
	userAgent   string
	timeout     time.Duration
	settleDelay time.Duration
	maxLength   int
}

// NewBrowserRenderer creates the renderer from the scraper config section.
func NewBrowserRenderer(cfg *config.Config) service.PageRenderer {
	settle := cfg.Scraper.SettleDelay
	if settle <= 0 {
		settle = defaultSettleDelay
	}
	userAgent := cfg.Scraper.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &BrowserRenderer{
		execPath:    cfg.Scraper.ChromePath,
		userAgent:   userAgent,
		timeout:     cfg.Scraper.Timeout,
		settleDelay: settle,
		maxLength:   cfg.Scraper.MaxContentLength,
	}
}

// Render loads url, waits for the page to settle and extracts the rendered DOM.
func (r *BrowserRenderer) Render(ctx context.Context, url string) (*entity.PageContent, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if r.timeout > 0 {
		var cancelTimeout context.CancelFunc
		browserCtx, cancelTimeout = context.WithTimeout(browserCtx, r.timeout+networkIdleTimeout+r.settleDelay)
		defer cancelTimeout()
	}

	idle := newIdleTracker()
	chromedp.ListenTarget(browserCtx, idle.observe)

	var html string
	err := chromedp.Run(browserCtx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		idle.wait(networkIdleTimeout),
		chromedp.Sleep(r.settleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, domainerrors.NewUpstreamError("scraper", "render", 0, "", err)
	}

	return Extract(strings.NewReader(html), r.maxLength, time.Now())
}

func (r *BrowserRenderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.UserAgent(r.userAgent),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	return opts
}

// idleTracker watches page lifecycle events and fires once the first document
// loaded after lifecycle events were enabled reports networkIdle.
type idleTracker struct {
	mu       sync.Mutex
	loaderID cdp.LoaderID
	idle     chan struct{}
	once     sync.Once
}

func newIdleTracker() *idleTracker {
	return &idleTracker{idle: make(chan struct{})}
}

func (t *idleTracker) observe(ev any) {
	e, ok := ev.(*page.EventLifecycleEvent)
	if !ok {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Name {
	case "init":
		if t.loaderID == "" {
			t.loaderID = e.LoaderID
		}
	case "networkIdle":
		if t.loaderID != "" && e.LoaderID == t.loaderID {
			t.once.Do(func() { close(t.idle) })
		}
	}
}

// wait blocks until networkIdle or until limit passes. Pages that keep a
// connection open never go idle, so the limit is not an error.
func (t *idleTracker) wait(limit time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		timer := time.NewTimer(limit)
		defer timer.Stop()

		select {
		case <-t.idle:
			return nil
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
