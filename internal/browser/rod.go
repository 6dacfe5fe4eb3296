package browser

import (
	"context"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// RodDriver launches Chromium through go-rod's launcher.
type RodDriver struct{}

func (RodDriver) Launch(ctx context.Context, cfg LaunchConfig) (Session, error) {
	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		Leakless(false)
	for _, sw := range cfg.switches() {
		l = l.Set(flags.Flag(sw))
	}
	if cfg.UserAgent != "" {
		l = l.Set("user-agent", cfg.UserAgent)
	}
	if cfg.ExecPath != "" {
		l = l.Bin(cfg.ExecPath)
	}

	controlURL, err := l.Launch()
	if err != nil {
		return nil, newError("launch", KindLaunch, err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Kill()
		return nil, newError("launch", KindLaunch, err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = b.Close()
		l.Kill()
		return nil, newError("launch", KindLaunch, err)
	}

	return &rodSession{launcher: l, browser: b, page: page}, nil
}

type rodSession struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *rod.Page
	closed   bool
}

func (s *rodSession) Navigate(ctx context.Context, url string) error {
	p := s.page.Context(ctx).Timeout(navigationTimeout)
	if err := p.Navigate(url); err != nil {
		return newError("navigate", KindNavigation, err)
	}
	if err := p.WaitLoad(); err != nil {
		return newError("navigate", KindNavigation, err)
	}
	return nil
}

func (s *rodSession) WaitForElement(ctx context.Context, selector string, timeout time.Duration) error {
	if _, err := s.page.Context(ctx).Timeout(timeout).Element(selector); err != nil {
		return waitError("wait "+selector, err)
	}
	return nil
}

func (s *rodSession) find(ctx context.Context, selector string) (*rod.Element, error) {
	has, el, err := s.page.Context(ctx).Has(selector)
	if err != nil {
		return nil, newError("find "+selector, KindExtraction, err)
	}
	if !has {
		return nil, newError("find "+selector, KindNotFound, nil)
	}
	return el, nil
}

func (s *rodSession) FindElement(ctx context.Context, selector string) error {
	_, err := s.find(ctx, selector)
	return err
}

func (s *rodSession) FillAndSubmit(ctx context.Context, inputSelector, value, submitSelector string) error {
	input, err := s.find(ctx, inputSelector)
	if err != nil {
		return err
	}
	submit, err := s.find(ctx, submitSelector)
	if err != nil {
		return err
	}

	if err := input.Context(ctx).Timeout(elementActionTimeout).Input(value); err != nil {
		return waitError("fill "+inputSelector, err)
	}
	if err := submit.Context(ctx).Timeout(elementActionTimeout).Click(proto.InputMouseButtonLeft, 1); err != nil {
		return waitError("submit "+submitSelector, err)
	}
	return nil
}

func (s *rodSession) ExtractTableRows(ctx context.Context, tableSelector string) ([][]string, error) {
	table, err := s.find(ctx, tableSelector)
	if err != nil {
		return nil, err
	}

	html, err := table.HTML()
	if err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}

	rows, err := ParseTableRows(html)
	if err != nil {
		return nil, newError("extract "+tableSelector, KindExtraction, err)
	}
	return rows, nil
}

func (s *rodSession) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	err := s.browser.Close()
	s.launcher.Kill()
	s.launcher.Cleanup()
	if err != nil {
		return newError("close", KindClose, err)
	}
	return nil
}
