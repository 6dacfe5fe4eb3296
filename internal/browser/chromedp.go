package browser

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
)

// ChromedpDriver talks to Chromium over the DevTools protocol via chromedp.
type ChromedpDriver struct{}

func (ChromedpDriver) Launch(ctx context.Context, cfg LaunchConfig) (Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
	)
	for _, sw := range cfg.switches() {
		opts = append(opts, chromedp.Flag(sw, true))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// An empty Run starts the browser and opens the first tab.
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, newError("launch", KindLaunch, err)
	}

	return &chromedpSession{
		ctx:         browserCtx,
		cancel:      cancelBrowser,
		cancelAlloc: cancelAlloc,
	}, nil
}

type chromedpSession struct {
	ctx         context.Context
	cancel      context.CancelFunc
	cancelAlloc context.CancelFunc
	closed      bool
}

// opContext derives an action context from the browser context that also
// ends when the caller's ctx does.
func (s *chromedpSession) opContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	opCtx, cancel := context.WithTimeout(s.ctx, timeout)
	stop := context.AfterFunc(ctx, cancel)
	return opCtx, func() {
		stop()
		cancel()
	}
}

func (s *chromedpSession) Navigate(ctx context.Context, url string) error {
	opCtx, cancel := s.opContext(ctx, navigationTimeout)
	defer cancel()

	if err := chromedp.Run(opCtx, chromedp.Navigate(url)); err != nil {
		return newError("navigate", KindNavigation, err)
	}
	return nil
}

func (s *chromedpSession) WaitForElement(ctx context.Context, selector string, timeout time.Duration) error {
	opCtx, cancel := s.opContext(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(opCtx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return waitError("wait "+selector, err)
	}
	return nil
}

func (s *chromedpSession) FindElement(ctx context.Context, selector string) error {
	opCtx, cancel := s.opContext(ctx, elementActionTimeout)
	defer cancel()

	var nodes []*cdp.Node
	if err := chromedp.Run(opCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0))); err != nil {
		return newError("find "+selector, KindExtraction, err)
	}
	if len(nodes) == 0 {
		return newError("find "+selector, KindNotFound, nil)
	}
	return nil
}

func (s *chromedpSession) FillAndSubmit(ctx context.Context, inputSelector, value, submitSelector string) error {
	for _, sel := range []string{inputSelector, submitSelector} {
		if err := s.FindElement(ctx, sel); err != nil {
			return err
		}
	}

	opCtx, cancel := s.opContext(ctx, elementActionTimeout)
	defer cancel()

	err := chromedp.Run(opCtx,
		chromedp.SendKeys(inputSelector, value, chromedp.ByQuery),
		chromedp.Click(submitSelector, chromedp.ByQuery),
	)
	if err != nil {
		return waitError("fill "+inputSelector, err)
	}
	return nil
}

func (s *chromedpSession) ExtractTableRows(ctx context.Context, tableSelector string) ([][]string, error) {
	if err := s.FindElement(ctx, tableSelector); err != nil {
		return nil, err
	}

	opCtx, cancel := s.opContext(ctx, elementActionTimeout)
	defer cancel()

	var html string
	if err := chromedp.Run(opCtx, chromedp.OuterHTML(tableSelector, &html, chromedp.ByQuery)); err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}

	rows, err := ParseTableRows(html)
	if err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}
	return rows, nil
}

func (s *chromedpSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := chromedp.Cancel(s.ctx)
	s.cancel()
	s.cancelAlloc()
	if err != nil {
		return newError("close", KindClose, err)
	}
	return nil
}
