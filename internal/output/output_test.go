package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if got := FromContext(WithPrinter(context.Background(), &buf)).Writer(); got != &buf {
		t.Error("FromContext() should return the printer attached by WithPrinter")
	}
	if got := FromContext(context.Background()).Writer(); got != os.Stdout {
		t.Error("FromContext() without a printer should write to os.Stdout")
	}
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(p *Printer)
		want  string
	}{
		{
			name: "pull report for one repository",
			write: func(p *Printer) {
				p.Step("→", "%s", "group/repoB")
				p.Item("✓", "linked %s", "/vault/group/repoB")
			},
			want: "→ group/repoB\n  ✓ linked /vault/group/repoB\n",
		},
		{
			name: "failed pull keeps the step header",
			write: func(p *Printer) {
				p.Step("→", "%s", "repoA")
				p.Item("✗", "link failed")
			},
			want: "→ repoA\n  ✗ link failed\n",
		},
		{
			name: "doctor sections",
			write: func(p *Printer) {
				p.Section("Link issues")
				p.Entry("group/repoB", "no link at /vault/group/repoB")
				p.Section("Configuration issues")
				p.Entry("SOURCES", "/missing does not exist")
			},
			want: "\nLink issues:\n  • group/repoB: no link at /vault/group/repoB\n" +
				"\nConfiguration issues:\n  • SOURCES: /missing does not exist\n",
		},
		{
			name: "summary line",
			write: func(p *Printer) {
				p.Println()
				p.Printf("%d repositories processed, %d links created", 3, 1)
				p.Println()
			},
			want: "\n3 repositories processed, 1 links created\n",
		},
		{
			name: "text with format verbs is not reinterpreted",
			write: func(p *Printer) {
				p.Item("!", "%s", "repo%20name")
			},
			want: "  ! repo%20name\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.write(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}
