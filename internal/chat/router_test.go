package chat

import (
	"context"
	"testing"
)

type mockWeather struct {
	city     string
	lat, lon string
}

func (m *mockWeather) ByCity(_ context.Context, city string) string {
	m.city = city
	return "city:" + city
}

func (m *mockWeather) ByCoordinates(_ context.Context, lat, lon string) string {
	m.lat, m.lon = lat, lon
	return "coords:" + lat + "/" + lon
}

type mockAdvisor struct {
	query string
}

func (m *mockAdvisor) FarmerAdvice(_ context.Context, query string) string {
	m.query = query
	return "advice"
}

func TestRespond(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		lat, lon string
		want     string
	}{
		{"named city", "What is the Weather in Nagpur?", "", "", "city:nagpur"},
		{"city with country", "weather in paris, fr", "", "", "city:paris, fr"},
		{"city wins over coordinates", "weather in guntur", "16.3", "80.4", "city:guntur"},
		{"coordinates", "how is the weather today", "16.3", "80.4", "coords:16.3/80.4"},
		{"half coordinates", "weather please", "16.3", "", "city:Delhi"},
		{"default city", "WEATHER", "", "", "city:Delhi"},
		{"advisor", "Best time to sow wheat?", "16.3", "80.4", "advice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(&mockWeather{}, &mockAdvisor{}, "Delhi")

			got := r.Respond(context.Background(), tt.message, tt.lat, tt.lon)
			if got != tt.want {
				t.Errorf("Respond(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestRespond_AdvisorGetsOriginalCase(t *testing.T) {
	a := &mockAdvisor{}
	r := New(&mockWeather{}, a, "Delhi")

	r.Respond(context.Background(), "Which Fertilizer for Paddy?", "", "")

	if a.query != "Which Fertilizer for Paddy?" {
		t.Errorf("Advisor received %q", a.query)
	}
}

func TestWeather(t *testing.T) {
	w := &mockWeather{}
	r := New(w, &mockAdvisor{}, "Delhi")

	if got := r.Weather(context.Background(), "", ""); got != "city:Delhi" {
		t.Errorf("Weather() = %q", got)
	}
	if got := r.Weather(context.Background(), "1.5", "2.5"); got != "coords:1.5/2.5" {
		t.Errorf("Weather() = %q", got)
	}
}
