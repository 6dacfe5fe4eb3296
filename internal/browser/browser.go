// Package browser drives a headless Chromium for pages that only render
// their data client side. A Driver launches one Session per caller; sessions
// are never shared or pooled and must be closed by whoever launched them.
package browser

import (
	"context"
	"fmt"
	"time"
)

// LaunchConfig controls how the browser process is started.
type LaunchConfig struct {
	Headless      bool
	DisableGPU    bool
	NoSandbox     bool
	DisableDevShm bool
	UserAgent     string
	// ExecPath overrides the auto-detected Chromium binary when set.
	ExecPath string
}

// DefaultLaunchConfig is headless Chromium with GPU, sandbox and /dev/shm
// usage disabled, which is what container hosts need.
func DefaultLaunchConfig(userAgent string) LaunchConfig {
	return LaunchConfig{
		Headless:      true,
		DisableGPU:    true,
		NoSandbox:     true,
		DisableDevShm: true,
		UserAgent:     userAgent,
	}
}

// switches lists the Chromium command line switches implied by c, without
// the leading dashes. Headless and the user agent are engine options.
func (c LaunchConfig) switches() []string {
	var out []string
	if c.DisableGPU {
		out = append(out, "disable-gpu")
	}
	if c.NoSandbox {
		out = append(out, "no-sandbox")
	}
	if c.DisableDevShm {
		out = append(out, "disable-dev-shm-usage")
	}
	return out
}

const (
	navigationTimeout    = 30 * time.Second
	elementActionTimeout = 5 * time.Second
)

type Driver interface {
	Launch(ctx context.Context, cfg LaunchConfig) (Session, error)
}

// Session is a single launched browser with one open page.
type Session interface {
	Navigate(ctx context.Context, url string) error
	// WaitForElement blocks until selector is present, failing with ErrTimeout.
	WaitForElement(ctx context.Context, selector string, timeout time.Duration) error
	// FindElement reports ErrNotFound without waiting when selector is absent.
	FindElement(ctx context.Context, selector string) error
	FillAndSubmit(ctx context.Context, inputSelector, value, submitSelector string) error
	// ExtractTableRows returns the td texts of every tr in the first table
	// matching selector. Header rows come back with zero cells.
	ExtractTableRows(ctx context.Context, tableSelector string) ([][]string, error)
	Close() error
}

// New returns the driver for the named engine.
func New(engine string) (Driver, error) {
	switch engine {
	case "chromedp":
		return ChromedpDriver{}, nil
	case "rod":
		return RodDriver{}, nil
	case "playwright":
		return PlaywrightDriver{}, nil
	default:
		return nil, fmt.Errorf("unknown browser engine %q", engine)
	}
}
