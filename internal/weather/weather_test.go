package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestClient(url string) *Client {
	c := New(url, "test-key", 5*time.Second, 1)
	c.rateLimiter = rate.NewLimiter(rate.Inf, 1)
	return c
}

const weatherBody = `{"name":"Pune","weather":[{"description":"light rain"}],"main":{"temp":24.5,"humidity":88},"wind":{"speed":3.09}}`

func TestByCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/2.5/weather" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "pune,IN" {
			t.Errorf("Expected q=pune,IN, got %s", q.Get("q"))
		}
		if q.Get("appid") != "test-key" || q.Get("units") != "metric" {
			t.Errorf("Unexpected query %s", r.URL.RawQuery)
		}
		w.Write([]byte(weatherBody))
	}))
	defer server.Close()

	got := newTestClient(server.URL).ByCity(context.Background(), "pune")

	want := "Weather in Pune:\nDescription: light rain\nTemperature: 24.5°C\nHumidity: 88%\nWind Speed: 3.09 m/s"
	if got != want {
		t.Errorf("ByCity() = %q, want %q", got, want)
	}
}

func TestByCity_KeepsCountryAndTitlesMissingName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "new delhi,in" {
			t.Errorf("Expected untouched city, got %s", r.URL.Query().Get("q"))
		}
		w.Write([]byte(`{"weather":[{"description":"haze"}],"main":{"temp":31,"humidity":40},"wind":{"speed":2}}`))
	}))
	defer server.Close()

	got := newTestClient(server.URL).ByCity(context.Background(), "new delhi,in")

	if !strings.HasPrefix(got, "Weather in New Delhi,In:\n") {
		t.Errorf("Unexpected reply %q", got)
	}
	if !strings.Contains(got, "Temperature: 31°C") {
		t.Errorf("Expected integer temperature preserved, got %q", got)
	}
}

func TestByCity_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		contain string
	}{
		{"upstream 404", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, "unexpected status 404"},
		{"bad json", http.StatusOK, `not json`, "failed to decode response"},
		{"no conditions", http.StatusOK, `{"name":"X","weather":[]}`, "no weather conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got := newTestClient(server.URL).ByCity(context.Background(), "nowhere")

			if !strings.HasPrefix(got, "Error retrieving weather data: ") {
				t.Errorf("Unexpected reply %q", got)
			}
			if !strings.Contains(got, tt.contain) {
				t.Errorf("Expected %q in reply %q", tt.contain, got)
			}
		})
	}
}

func TestByCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "18.52" || q.Get("lon") != "73.85" {
			t.Errorf("Unexpected coordinates %s", r.URL.RawQuery)
		}
		switch r.URL.Path {
		case "/data/2.5/weather":
			w.Write([]byte(weatherBody))
		case "/geo/1.0/reverse":
			if q.Get("limit") != "1" {
				t.Errorf("Expected limit=1")
			}
			w.Write([]byte(`[{"name":"Pune","state":"Maharashtra","country":"IN"}]`))
		default:
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	got := newTestClient(server.URL).ByCoordinates(context.Background(), "18.52", "73.85")

	want := "Weather in Pune, Maharashtra, IN\nDescription: light rain\nTemperature: 24.5°C\nHumidity: 88%\nWind Speed: 3.09 m/s"
	if got != want {
		t.Errorf("ByCoordinates() = %q, want %q", got, want)
	}
}

func TestByCoordinates_WeatherFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/geo/1.0/reverse" {
			w.Write([]byte(`[]`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	got := newTestClient(server.URL).ByCoordinates(context.Background(), "1", "2")

	if !strings.HasPrefix(got, "Error retrieving weather data by coordinates: unexpected status 401") {
		t.Errorf("Unexpected reply %q", got)
	}
}

func TestReverseGeocode(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"full", http.StatusOK, `[{"name":"Guntur","state":"Andhra Pradesh","country":"IN"}]`, "Guntur, Andhra Pradesh, IN"},
		{"no state", http.StatusOK, `[{"name":"Singapore","country":"SG"}]`, "Singapore, SG"},
		{"empty list", http.StatusOK, `[]`, "Unknown Location (Lat: 16.3, Lon: 80.4)"},
		{"empty fields", http.StatusOK, `[{}]`, "Unknown Location (Lat: 16.3, Lon: 80.4)"},
		{"upstream error", http.StatusInternalServerError, ``, "Unknown Location (Lat: 16.3, Lon: 80.4)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			got := newTestClient(server.URL).ReverseGeocode(context.Background(), "16.3", "80.4")
			if got != tt.want {
				t.Errorf("ReverseGeocode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTitleCase(t *testing.T) {
	tests := map[string]string{
		"delhi,IN":     "Delhi,In",
		"new delhi,in": "New Delhi,In",
		"NAGPUR":       "Nagpur",
		"3rd street":   "3Rd Street",
	}
	for in, want := range tests {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}
