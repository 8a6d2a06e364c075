package prompt

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	if err := translateSurveyErr(terminal.InterruptErr); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	wrapped := fmt.Errorf("ask: %w", terminal.InterruptErr)
	if err := translateSurveyErr(wrapped); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted for wrapped interrupt, got %v", err)
	}
	other := errors.New("boom")
	if err := translateSurveyErr(other); err != other {
		t.Fatalf("expected passthrough, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	options := []string{"banner", "icecream"}
	if got := indexOf(options, "icecream"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := indexOf(options, "missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}

func TestSurveyDriver_SelectGuards(t *testing.T) {
	driver := NewSurveyDriver()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := driver.Select(ctx, SelectConfig{Options: []string{"a"}}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := driver.Select(context.Background(), SelectConfig{}); err == nil {
		t.Fatalf("expected error without options")
	}
}
