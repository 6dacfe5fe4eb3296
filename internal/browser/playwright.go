package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightDriver runs Chromium through the Playwright driver. It needs the
// Playwright browsers installed on the host.
type PlaywrightDriver struct{}

func (PlaywrightDriver) Launch(ctx context.Context, cfg LaunchConfig) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError("launch", KindLaunch, err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, newError("launch", KindLaunch, err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	for _, sw := range cfg.switches() {
		opts.Args = append(opts.Args, "--"+sw)
	}
	if cfg.ExecPath != "" {
		opts.ExecutablePath = playwright.String(cfg.ExecPath)
	}

	b, err := pw.Chromium.Launch(opts)
	if err != nil {
		_ = pw.Stop()
		return nil, newError("launch", KindLaunch, err)
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if cfg.UserAgent != "" {
		contextOpts.UserAgent = playwright.String(cfg.UserAgent)
	}
	bctx, err := b.NewContext(contextOpts)
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, newError("launch", KindLaunch, err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		_ = b.Close()
		_ = pw.Stop()
		return nil, newError("launch", KindLaunch, err)
	}
	page.SetDefaultTimeout(milliseconds(elementActionTimeout))

	return &playwrightSession{pw: pw, browser: b, page: page}, nil
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	page    playwright.Page
	closed  bool
}

func milliseconds(d time.Duration) float64 {
	return float64(d / time.Millisecond)
}

// Playwright has no context support, so cancellation is only observed
// between calls.
func (s *playwrightSession) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return newError("navigate", KindNavigation, err)
	}
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		Timeout: playwright.Float(milliseconds(navigationTimeout)),
	})
	if err != nil {
		return newError("navigate", KindNavigation, err)
	}
	return nil
}

func (s *playwrightSession) WaitForElement(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return waitError("wait "+selector, err)
	}
	err := s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateAttached,
		Timeout: playwright.Float(milliseconds(timeout)),
	})
	if err != nil {
		if errors.Is(err, playwright.ErrTimeout) {
			return newError("wait "+selector, KindTimeout, err)
		}
		return waitError("wait "+selector, err)
	}
	return nil
}

func (s *playwrightSession) FindElement(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return newError("find "+selector, KindExtraction, err)
	}
	n, err := s.page.Locator(selector).Count()
	if err != nil {
		return newError("find "+selector, KindExtraction, err)
	}
	if n == 0 {
		return newError("find "+selector, KindNotFound, nil)
	}
	return nil
}

func (s *playwrightSession) FillAndSubmit(ctx context.Context, inputSelector, value, submitSelector string) error {
	for _, sel := range []string{inputSelector, submitSelector} {
		if err := s.FindElement(ctx, sel); err != nil {
			return err
		}
	}

	if err := s.page.Locator(inputSelector).First().Fill(value); err != nil {
		return newError("fill "+inputSelector, KindExtraction, err)
	}
	if err := s.page.Locator(submitSelector).First().Click(); err != nil {
		return newError("submit "+submitSelector, KindExtraction, err)
	}
	return nil
}

func (s *playwrightSession) ExtractTableRows(ctx context.Context, tableSelector string) ([][]string, error) {
	if err := s.FindElement(ctx, tableSelector); err != nil {
		return nil, err
	}

	v, err := s.page.Locator(tableSelector).First().Evaluate("el => el.outerHTML", nil)
	if err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}
	html, ok := v.(string)
	if !ok {
		return nil, newError("extract "+tableSelector, KindExtraction, fmt.Errorf("unexpected outerHTML type %T", v))
	}

	rows, err := ParseTableRows(html)
	if err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}
	return rows, nil
}

func (s *playwrightSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	if err := errors.Join(s.browser.Close(), s.pw.Stop()); err != nil {
		return newError("close", KindClose, err)
	}
	return nil
}
