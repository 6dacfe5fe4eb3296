package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/pauljones0/farmassist-api/internal/config"
	"github.com/pauljones0/farmassist-api/internal/models"
)

type SchemeSource interface {
	ScrapeSchemes(ctx context.Context) ([]models.Scheme, error)
}

// Client scrapes the agriculture ministry home page for scheme headings.
type Client struct {
	httpClient     *http.Client
	schemesURL     string
	allowedDomains []string
	selectors      SchemeSelectors
}

func New(cfg *config.Config, selectors SchemeSelectors) *Client {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		schemesURL:     cfg.SchemesURL,
		allowedDomains: cfg.AllowedDomains,
		selectors:      selectors,
	}
}

// ScrapeSchemes returns one scheme per non-empty heading. The description is
// the first following sibling paragraph, if any. Repeated names keep their
// first position but take the last description seen.
func (c *Client) ScrapeSchemes(ctx context.Context) ([]models.Scheme, error) {
	doc, err := c.fetchHTMLContent(ctx, c.schemesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch or parse schemes page %s: %w", c.schemesURL, err)
	}

	var order []string
	byName := make(map[string]models.Scheme)
	doc.Find(c.selectors.Title).Each(func(_ int, s *goquery.Selection) {
		title := normalizeSpace(s.Text())
		if title == "" {
			return
		}
		var description string
		if p := s.NextAllFiltered(c.selectors.Description).First(); p.Length() > 0 {
			description = normalizeSpace(p.Text())
		}
		if _, seen := byName[title]; !seen {
			order = append(order, title)
		}
		byName[title] = models.Scheme{Name: title, Description: description}
	})

	schemes := make([]models.Scheme, 0, len(order))
	for _, name := range order {
		schemes = append(schemes, byName[name])
	}
	slog.Info("Scraped government schemes", "count", len(schemes))
	return schemes, nil
}

func (c *Client) fetchHTMLContent(ctx context.Context, urlStr string) (*goquery.Document, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL %s: %w", urlStr, err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL scheme %s: only http and https allowed", parsedURL.Scheme)
	}

	hostname := parsedURL.Hostname()
	allowed := false
	for _, domain := range c.allowedDomains {
		if hostname == domain {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("security violation: URL hostname %s is not in allowlist", hostname)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %s: %w", urlStr, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %s: %w", urlStr, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL %s: status code %d", urlStr, res.StatusCode)
	}

	body, err := charset.NewReader(res.Body, res.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", urlStr, err)
	}
	return goquery.NewDocumentFromReader(body)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
