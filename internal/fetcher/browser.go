package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/jovalie/political-forecast/internal/config"
	"github.com/jovalie/political-forecast/internal/types"
)

// BrowserFetcher renders trending pages with a headless browser via Rod.
// The trending page builds its rows client-side and lazy-loads below the
// fold, so a plain HTTP GET returns an empty shell; rendering plus scroll
// passes is the only way to observe the full row set.
type BrowserFetcher struct {
	browser    *rod.Browser
	cfg        *config.Config
	logger     *slog.Logger
	useStealth bool
	pagePool   chan *rod.Page
	maxPages   int
}

// BrowserOption configures the BrowserFetcher.
type BrowserOption func(*BrowserFetcher)

// WithStealth enables stealth page patches.
func WithStealth() BrowserOption {
	return func(bf *BrowserFetcher) { bf.useStealth = true }
}

// WithMaxPages sets the maximum number of concurrent browser pages.
func WithMaxPages(n int) BrowserOption {
	return func(bf *BrowserFetcher) { bf.maxPages = n }
}

// NewBrowserFetcher launches a headless Chromium and connects to it.
func NewBrowserFetcher(cfg *config.Config, logger *slog.Logger, opts ...BrowserOption) (*BrowserFetcher, error) {
	bf := &BrowserFetcher{
		cfg:      cfg,
		logger:   logger.With("component", "browser_fetcher"),
		maxPages: cfg.Scan.Concurrency,
	}

	for _, opt := range opts {
		opt(bf)
	}

	launchURL, err := launchBrowser()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(launchURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	bf.browser = browser
	bf.pagePool = make(chan *rod.Page, bf.maxPages)

	bf.logger.Info("browser fetcher ready",
		"max_pages", bf.maxPages,
		"stealth", bf.useStealth,
	)

	return bf, nil
}

// launchBrowser starts a Chromium instance with appropriate flags.
func launchBrowser() (string, error) {
	l := launcher.New().
		Headless(true).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Set("disable-blink-features", "AutomationControlled")

	return l.Launch()
}

// Fetch renders a region's trending page and returns the settled markup.
func (bf *BrowserFetcher) Fetch(ctx context.Context, region types.Region) (*types.PageContent, error) {
	start := time.Now()
	pageURL := RegionURL(bf.cfg.Source.URLTemplate, region)

	page, err := bf.getPage()
	if err != nil {
		return nil, &types.FetchError{Region: region.Name, URL: pageURL, Err: err, Retryable: true}
	}
	defer bf.putPage(page)

	page = page.Context(ctx)

	if ua := bf.userAgent(); ua != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: ua}); err != nil {
			bf.logger.Warn("failed to set user agent", "error", err)
		}
	}

	if err := page.Navigate(pageURL); err != nil {
		return nil, &types.FetchError{Region: region.Name, URL: pageURL, Err: err, Retryable: true}
	}

	// Wait for the client-side render to settle; timeout here is advisory
	// since a partially rendered page may still carry usable rows.
	if err := page.WaitStable(300 * time.Millisecond); err != nil {
		bf.logger.Warn("page stability timeout, continuing", "region", region.Code, "error", err)
	}

	if bf.cfg.Source.SettleWait > 0 {
		select {
		case <-ctx.Done():
			return nil, &types.FetchError{Region: region.Name, URL: pageURL, Err: ctx.Err(), Retryable: false}
		case <-time.After(bf.cfg.Source.SettleWait):
		}
	}

	// Scroll passes trigger lazy-loaded rows below the fold.
	for i := 0; i < bf.cfg.Source.ScrollPasses; i++ {
		if _, err := page.Eval(`() => window.scrollBy(0, window.innerHeight)`); err != nil {
			bf.logger.Debug("scroll eval failed", "region", region.Code, "pass", i, "error", err)
			break
		}
		select {
		case <-ctx.Done():
			return nil, &types.FetchError{Region: region.Name, URL: pageURL, Err: ctx.Err(), Retryable: false}
		case <-time.After(500 * time.Millisecond):
		}
	}

	html, err := page.HTML()
	if err != nil {
		return nil, &types.FetchError{Region: region.Name, URL: pageURL, Err: err, Retryable: true}
	}

	duration := time.Since(start)
	bf.logger.Debug("browser fetch complete",
		"region", region.Code,
		"url", pageURL,
		"size", len(html),
		"duration", duration,
	)

	return types.NewPageContent(region, pageURL, []byte(html), duration), nil
}

// Close shuts down the browser and releases resources.
func (bf *BrowserFetcher) Close() error {
	close(bf.pagePool)
	for page := range bf.pagePool {
		_ = page.Close()
	}
	if bf.browser != nil {
		return bf.browser.Close()
	}
	return nil
}

// getPage retrieves a page from the pool or creates a new one.
func (bf *BrowserFetcher) getPage() (*rod.Page, error) {
	select {
	case page := <-bf.pagePool:
		return page, nil
	default:
	}
	if bf.useStealth {
		return stealth.Page(bf.browser)
	}
	return bf.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
}

// putPage returns a page to the pool.
func (bf *BrowserFetcher) putPage(page *rod.Page) {
	// Navigate to blank to free memory from the last page
	_ = page.Navigate("about:blank")

	select {
	case bf.pagePool <- page:
	default:
		_ = page.Close() // Pool full, close the page
	}
}

func (bf *BrowserFetcher) userAgent() string {
	if len(bf.cfg.Source.UserAgents) == 0 {
		return ""
	}
	return bf.cfg.Source.UserAgents[0]
}
