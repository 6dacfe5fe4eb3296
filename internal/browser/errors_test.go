package browser

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantTimeout  bool
		wantNotFound bool
		wantKind     Kind
	}{
		{
			name:        "Wait deadline becomes timeout",
			err:         waitError("wait table", context.DeadlineExceeded),
			wantTimeout: true,
			wantKind:    KindTimeout,
		},
		{
			name:     "Other wait failure is extraction",
			err:      waitError("wait table", errors.New("target crashed")),
			wantKind: KindExtraction,
		},
		{
			name:         "Not found survives wrapping",
			err:          fmt.Errorf("scrape: %w", newError("find #x", KindNotFound, nil)),
			wantNotFound: true,
			wantKind:     KindNotFound,
		},
		{
			name: "Foreign error has no kind",
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, ErrTimeout); got != tt.wantTimeout {
				t.Errorf("errors.Is(ErrTimeout) = %v, want %v", got, tt.wantTimeout)
			}
			if got := errors.Is(tt.err, ErrNotFound); got != tt.wantNotFound {
				t.Errorf("errors.Is(ErrNotFound) = %v, want %v", got, tt.wantNotFound)
			}
			if got := KindOf(tt.err); got != tt.wantKind {
				t.Errorf("KindOf() = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	err := newError("navigate", KindNavigation, context.Canceled)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cause to be reachable via errors.Is, got %v", err)
	}
	if err.Error() != "browser navigate: navigation: context canceled" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
