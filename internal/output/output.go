// Package output writes vault's user-facing report to stdout.
//
// A pull or add run is reported as one step line per repository followed
// by indented item lines for what happened to it:
//
//	→ group/repoB
//	  ✓ linked /vault/group/repoB
//
// doctor groups its findings into titled sections. Diagnostics and git's
// own output go to stderr through the log package instead.
package output

import (
	"context"
	"fmt"
	"io"
	"os"
)

type ctxKey struct{}

// Printer writes the report for one command run.
type Printer struct {
	w io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer writing to w to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext returns the Printer attached to ctx, or one writing to
// os.Stdout.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Step starts the report for one repository: "<mark> <text>".
func (p *Printer) Step(mark, format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", mark, fmt.Sprintf(format, a...))
}

// Item reports one outcome below the current step: "  <mark> <text>".
func (p *Printer) Item(mark, format string, a ...any) {
	fmt.Fprintf(p.w, "  %s %s\n", mark, fmt.Sprintf(format, a...))
}

// Section starts a titled group separated from what came before by a
// blank line.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "\n%s:\n", title)
}

// Entry lists a keyed finding inside a section: "  • <key>: <text>".
func (p *Printer) Entry(key, text string) {
	fmt.Fprintf(p.w, "  • %s: %s\n", key, text)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the underlying writer for tables and other rendered
// blocks.
func (p *Printer) Writer() io.Writer {
	return p.w
}
