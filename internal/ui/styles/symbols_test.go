package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/raphi011/vault/internal/link"
)

func TestSetNerdfont(t *testing.T) {
	// Test default (off)
	SetNerdfont(false)
	if NerdfontEnabled() {
		t.Error("expected nerdfont to be disabled")
	}
	if CurrentSymbols().Present != "✓" {
		t.Errorf("expected default present symbol, got %q", CurrentSymbols().Present)
	}

	// Test enabled
	SetNerdfont(true)
	if !NerdfontEnabled() {
		t.Error("expected nerdfont to be enabled")
	}
	if CurrentSymbols().Present != "" {
		t.Errorf("expected nerdfont present symbol, got %q", CurrentSymbols().Present)
	}

	// Reset
	SetNerdfont(false)
}

func TestMarks(t *testing.T) {
	SetNerdfont(false)

	tests := []struct {
		name     string
		fn       func() string
		expected string
	}{
		{"arrow", ArrowMark, "→"},
		{"created", CreatedMark, "+"},
		{"present", PresentMark, "✓"},
		{"failed", FailedMark, "✗"},
		{"warning", WarningMark, "⚠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ansi.Strip(tt.fn()); got != tt.expected {
				t.Errorf("%s mark = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFormatLinkState(t *testing.T) {
	SetNerdfont(false)

	tests := []struct {
		state link.State
		want  string
	}{
		{link.Linked, "✓ linked"},
		{link.Mismatch, "⚠ mismatch"},
		{link.Missing, "○ missing"},
		{link.State(99), ""},
	}

	for _, tt := range tests {
		got := ansi.Strip(FormatLinkState(tt.state))
		if !strings.Contains(got, tt.want) || (tt.want == "" && got != "") {
			t.Errorf("FormatLinkState(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
