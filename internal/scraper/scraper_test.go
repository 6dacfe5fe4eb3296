package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pauljones0/farmassist-api/internal/config"
	"github.com/pauljones0/farmassist-api/internal/models"
)

const schemesHTML = `<!DOCTYPE html>
<html><body>
	<section>
		<h3>PM-KISAN</h3>
		<p>Income support of Rs 6000 per year.</p>
	</section>
	<section>
		<h3>  Soil Health
			Card </h3>
		<span>ignored</span>
		<p>Soil testing for every farm.</p>
	</section>
	<section>
		<h3></h3>
		<p>Orphan paragraph.</p>
	</section>
	<section>
		<h3>Crop Insurance</h3>
	</section>
	<section>
		<h3>PM-KISAN</h3>
		<p>Updated description.</p>
	</section>
</body></html>`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		SchemesURL:     server.URL + "/en/",
		AllowedDomains: []string{"127.0.0.1"},
		HTTPTimeout:    5 * time.Second,
	}
	return New(cfg, DefaultSelectors().Schemes)
}

func TestScrapeSchemes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/en/" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(schemesHTML))
	})

	got, err := client.ScrapeSchemes(context.Background())
	if err != nil {
		t.Fatalf("ScrapeSchemes() error = %v", err)
	}

	want := []models.Scheme{
		{Name: "PM-KISAN", Description: "Updated description."},
		{Name: "Soil Health Card", Description: "Soil testing for every farm."},
		{Name: "Crop Insurance", Description: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ScrapeSchemes() = %+v, want %+v", got, want)
	}
}

func TestScrapeSchemes_DecodesLegacyCharset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Réforme" in Latin-1.
		w.Write([]byte("<html><body><h3>R\xe9forme</h3></body></html>"))
	})

	got, err := client.ScrapeSchemes(context.Background())
	if err != nil {
		t.Fatalf("ScrapeSchemes() error = %v", err)
	}
	if len(got) != 1 || got[0].Name != "Réforme" {
		t.Errorf("expected decoded name Réforme, got %+v", got)
	}
}

func TestScrapeSchemes_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ScrapeSchemes(context.Background())
	if err == nil {
		t.Fatal("expected error for non-200 status")
	}
	if !strings.Contains(err.Error(), "status code 502") {
		t.Errorf("error should mention status code, got %v", err)
	}
}

func TestFetchHTMLContent_Allowlist(t *testing.T) {
	client := New(&config.Config{AllowedDomains: []string{"agriwelfare.gov.in"}}, DefaultSelectors().Schemes)

	tests := []struct {
		name string
		url  string
	}{
		{name: "Foreign host", url: "https://example.com/"},
		{name: "Bad scheme", url: "ftp://agriwelfare.gov.in/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := client.fetchHTMLContent(context.Background(), tt.url); err == nil {
				t.Errorf("fetchHTMLContent(%q) should fail", tt.url)
			}
		})
	}
}
