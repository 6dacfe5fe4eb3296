// Package market looks up mandi prices by scraping the e-NAM trade dashboard
// in a headless browser, degrading to a small mock table on any failure.
package market

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pauljones0/farmassist-api/internal/browser"
	"github.com/pauljones0/farmassist-api/internal/models"
	"github.com/pauljones0/farmassist-api/internal/scraper"
)

const minCells = 5

type PriceSource interface {
	GetMarketPrices(ctx context.Context, cropName string) []models.PriceRecord
}

type Options struct {
	SourceURL   string
	Selectors   scraper.MarketSelectors
	Launch      browser.LaunchConfig
	WaitTimeout time.Duration
	SettleDelay time.Duration
}

type Service struct {
	driver browser.Driver
	opts   Options
}

func New(driver browser.Driver, opts Options) *Service {
	return &Service{driver: driver, opts: opts}
}

// GetMarketPrices never fails. Live rows are returned when the scrape works
// and matches something; otherwise the mock rows for cropName, possibly none.
func (s *Service) GetMarketPrices(ctx context.Context, cropName string) []models.PriceRecord {
	prices, err := s.scrape(ctx, cropName)
	if err != nil {
		slog.Warn("Market price scrape failed, using mock data", "crop", cropName, "kind", browser.KindOf(err).String(), "error", err)
		return FallbackPrices(cropName)
	}
	if len(prices) == 0 {
		slog.Info("No live prices matched, using mock data", "crop", cropName)
		return FallbackPrices(cropName)
	}
	return prices
}

func (s *Service) scrape(ctx context.Context, cropName string) (prices []models.PriceRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			prices, err = nil, fmt.Errorf("panic during market scrape: %v", r)
		}
	}()

	session, err := s.driver.Launch(ctx, s.opts.Launch)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			slog.Warn("Failed to close browser session", "error", closeErr)
		}
	}()

	sel := s.opts.Selectors
	if err := session.Navigate(ctx, s.opts.SourceURL); err != nil {
		return nil, err
	}
	if err := session.WaitForElement(ctx, sel.Table, s.opts.WaitTimeout); err != nil {
		return nil, err
	}

	s.applyCropFilter(ctx, session, cropName)

	rows, err := session.ExtractTableRows(ctx, sel.Table)
	if err != nil {
		return nil, err
	}
	return matchRows(rows, cropName), nil
}

// applyCropFilter narrows the table to cropName when the page offers a
// filter form. Its absence or failure is not an error.
func (s *Service) applyCropFilter(ctx context.Context, session browser.Session, cropName string) {
	sel := s.opts.Selectors
	for _, control := range []string{sel.CropInput, sel.SubmitButton} {
		if err := session.FindElement(ctx, control); err != nil {
			if errors.Is(err, browser.ErrNotFound) {
				slog.Info("No crop filter form found, scraping table directly", "selector", control)
			} else {
				slog.Warn("Crop filter lookup failed", "selector", control, "error", err)
			}
			return
		}
	}

	if err := session.FillAndSubmit(ctx, sel.CropInput, cropName, sel.SubmitButton); err != nil {
		slog.Warn("Crop filter submit failed, scraping table directly", "error", err)
		return
	}

	if s.opts.SettleDelay <= 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(s.opts.SettleDelay):
	}
}

// matchRows skips the header row and keeps rows with enough cells whose crop
// cell contains cropName, ignoring case.
func matchRows(rows [][]string, cropName string) []models.PriceRecord {
	if len(rows) <= 1 {
		return nil
	}
	needle := strings.ToLower(cropName)

	var prices []models.PriceRecord
	for _, cells := range rows[1:] {
		if len(cells) < minCells {
			continue
		}
		if !strings.Contains(strings.ToLower(cells[1]), needle) {
			continue
		}
		prices = append(prices, models.PriceRecord{
			Location:   strings.TrimSpace(cells[0]),
			Crop:       strings.TrimSpace(cells[1]),
			MinPrice:   strings.TrimSpace(cells[2]),
			ModalPrice: strings.TrimSpace(cells[3]),
			MaxPrice:   strings.TrimSpace(cells[4]),
		})
	}
	return prices
}
