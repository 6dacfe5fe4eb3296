package browser

import (
	"reflect"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		engine  string
		want    Driver
		wantErr bool
	}{
		{engine: "chromedp", want: ChromedpDriver{}},
		{engine: "rod", want: RodDriver{}},
		{engine: "playwright", want: PlaywrightDriver{}},
		{engine: "selenium", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			got, err := New(tt.engine)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%q) error = %v, wantErr %v", tt.engine, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("New(%q) = %#v, want %#v", tt.engine, got, tt.want)
			}
		})
	}
}

func TestLaunchConfigSwitches(t *testing.T) {
	cfg := DefaultLaunchConfig("test-agent")
	if !cfg.Headless {
		t.Error("default config should be headless")
	}
	if cfg.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", cfg.UserAgent)
	}

	want := []string{"disable-gpu", "no-sandbox", "disable-dev-shm-usage"}
	if got := cfg.switches(); !reflect.DeepEqual(got, want) {
		t.Errorf("switches() = %v, want %v", got, want)
	}

	if got := (LaunchConfig{Headless: true}).switches(); len(got) != 0 {
		t.Errorf("expected no switches, got %v", got)
	}
}
