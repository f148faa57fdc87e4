package styles

import (
	"github.com/raphi011/vault/internal/link"
)

// Symbols holds the icon set based on nerdfont configuration
type Symbols struct {
	Arrow    string
	Created  string
	Present  string
	Failed   string
	Missing  string
	Mismatch string
}

// Default symbols
var defaultSymbols = Symbols{
	Arrow:    "→",
	Created:  "+",
	Present:  "✓",
	Failed:   "✗",
	Missing:  "○",
	Mismatch: "⚠",
}

// Nerd font symbols
var nerdfontSymbols = Symbols{
	Arrow:    "\uf061", // nf-fa-arrow_right
	Created:  "\uf0c1", // nf-fa-link
	Present:  "\uf00c", // nf-fa-check
	Failed:   "\uf00d", // nf-fa-times
	Missing:  "\uf10c", // nf-fa-circle_o
	Mismatch: "\uf071", // nf-fa-warning
}

// useNerdfont tracks whether nerd font symbols are enabled
var useNerdfont bool

// currentSymbols holds the active symbol set
var currentSymbols = defaultSymbols

// SetNerdfont enables or disables nerd font symbols
func SetNerdfont(enabled bool) {
	useNerdfont = enabled
	if enabled {
		currentSymbols = nerdfontSymbols
	} else {
		currentSymbols = defaultSymbols
	}
}

// NerdfontEnabled returns whether nerd font symbols are enabled
func NerdfontEnabled() bool {
	return useNerdfont
}

// CurrentSymbols returns the current symbol set
func CurrentSymbols() Symbols {
	return currentSymbols
}

// ArrowMark introduces the repository being processed.
func ArrowMark() string {
	return PrimaryStyle.Render(currentSymbols.Arrow)
}

// CreatedMark marks a newly created link.
func CreatedMark() string {
	return SuccessStyle.Render(currentSymbols.Created)
}

// PresentMark marks a link that already existed.
func PresentMark() string {
	return MutedStyle.Render(currentSymbols.Present)
}

// FailedMark marks a failure.
func FailedMark() string {
	return ErrorStyle.Render(currentSymbols.Failed)
}

// WarningMark marks something that needs attention.
func WarningMark() string {
	return WarningStyle.Render(currentSymbols.Mismatch)
}

// FormatLinkState returns a symbol and label for a link state.
func FormatLinkState(s link.State) string {
	switch s {
	case link.Linked:
		return SuccessStyle.Render(currentSymbols.Present + " linked")
	case link.Mismatch:
		return WarningStyle.Render(currentSymbols.Mismatch + " mismatch")
	case link.Missing:
		return MutedStyle.Render(currentSymbols.Missing + " missing")
	default:
		return ""
	}
}
