// Package render draws an anagram tree as an ASCII box-drawing diagram,
// optionally colorized, in the spine-and-fork style of the original
// implementation's formatter (original_source/src/format.rs): the Yes
// branch continues straight down the page, and each No branch forks
// sideways at "└─ No: ...".
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/gitrdm/anagramtree/pkg/anagram/splits"
	"github.com/gitrdm/anagramtree/pkg/anagram/tree"
)

// Option configures Write, following the same functional-options
// idiom used throughout this module's configuration surfaces.
type Option func(*config)

type config struct {
	color bool
}

// WithColor forces color on or off, overriding the terminal-detection
// default. Write auto-detects (via go-isatty) when no Option is given.
func WithColor(enabled bool) Option {
	return func(c *config) { c.color = enabled }
}

// Write renders n to w as an ASCII tree. If w is an *os.File attached
// to a terminal, color is enabled automatically unless overridden by
// WithColor; otherwise it is disabled, matching the TTY guard the
// pack's own color-capable CLI uses before emitting ANSI codes.
func Write(w io.Writer, n tree.Node, opts ...Option) error {
	cfg := &config{color: autoColor(w)}
	for _, o := range opts {
		if o != nil {
			o(cfg)
		}
	}
	p := &painter{enabled: cfg.color}
	var sb strings.Builder
	renderSpine(n, "", &sb, p)
	_, err := io.WriteString(w, sb.String())
	return err
}

func autoColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// painter wraps fatih/color, building a color.Color for each call it
// paints, and is a no-op pass-through when disabled.
type painter struct {
	enabled bool
}

func (p *painter) yes(s string) string {
	if !p.enabled {
		return s
	}
	return color.New(color.FgGreen).Sprint(s)
}

func (p *painter) no(s string) string {
	if !p.enabled {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}

func (p *painter) hard(s string) string {
	if !p.enabled {
		return s
	}
	return color.New(color.Bold).Sprint(s)
}

func (p *painter) soft(s string) string {
	if !p.enabled {
		return s
	}
	return color.New(color.Faint).Sprint(s)
}

func (p *painter) leaf(s string) string {
	if !p.enabled {
		return s
	}
	return color.New(color.FgCyan).Sprint(s)
}

// renderSpine draws the straight-down Yes chain at prefix, forking off
// a rendered No branch at each Split and terminating in a Leaf or
// Repeat.
func renderSpine(n tree.Node, prefix string, out *strings.Builder, p *painter) {
	switch t := n.(type) {
	case *tree.Leaf:
		out.WriteString(prefix)
		out.WriteString(p.leaf(capitalize(t.Word)))
		out.WriteString("\n")
	case *tree.Repeat:
		out.WriteString(prefix)
		out.WriteString(p.yes(fmt.Sprintf("Repeat %s?", capitalize(t.Word))))
		out.WriteString("\n")
		out.WriteString(prefix)
		out.WriteString("├─ " + p.yes("Yes: "))
		out.WriteString(p.leaf(capitalize(t.Word)))
		out.WriteString("\n")
		out.WriteString(prefix)
		out.WriteString("└─ " + p.no("No: "))
		renderInline(t.Remaining, prefix+"   ", out, p)
	case *tree.Split:
		out.WriteString(prefix)
		out.WriteString(question(t, p))
		out.WriteString("\n")
		out.WriteString(prefix)
		out.WriteString("└─ " + p.no("No: "))
		renderInline(t.No, prefix+"   ", out, p)
		renderSpine(t.Yes, prefix, out, p)
	}
}

// renderInline renders a No branch that forks sideways: the node's own
// question (or leaf name) appears on the same line as "No:", and any
// further structure below it is indented as a nested fork.
func renderInline(n tree.Node, prefix string, out *strings.Builder, p *painter) {
	switch t := n.(type) {
	case *tree.Leaf:
		out.WriteString(p.leaf(capitalize(t.Word)))
		out.WriteString("\n")
	case *tree.Repeat:
		out.WriteString(p.yes(fmt.Sprintf("Repeat %s?", capitalize(t.Word))))
		out.WriteString("\n")
		out.WriteString(prefix)
		out.WriteString("└─ " + p.no("No: "))
		renderInline(t.Remaining, prefix+"   ", out, p)
	case *tree.Split:
		out.WriteString(question(t, p))
		out.WriteString("\n")
		out.WriteString(prefix)
		out.WriteString("└─ " + p.no("No: "))
		renderInline(t.No, prefix+"   ", out, p)
		out.WriteString(prefix)
		out.WriteString("└─ " + p.yes("Yes: "))
		renderInline(t.Yes, prefix+"   ", out, p)
	}
}

func question(s *tree.Split, p *painter) string {
	letter := func(l int) string { return string(rune('A' + l)) }
	var q string
	switch s.Class {
	case splits.ClassContains:
		q = fmt.Sprintf("Contains '%s'?", letter(s.TestLetter))
	case splits.ClassDouble:
		q = fmt.Sprintf("Doubled '%s'?", letter(s.TestLetter))
	case splits.ClassTriple:
		q = fmt.Sprintf("Tripled '%s'?", letter(s.TestLetter))
	default:
		q = fmt.Sprintf("%s letter '%s'?", s.TestSlot, letter(s.TestLetter))
	}
	if !s.Hard {
		q += p.soft(softRequirement(s, letter))
	}
	if s.Hard {
		return p.hard(q)
	}
	return q
}

func softRequirement(s *tree.Split, letter func(int) string) string {
	if s.Class == splits.ClassPositional && s.TestLetter == s.ReqLetter {
		return fmt.Sprintf(" (all No have '%s' %s)", letter(s.ReqLetter), strings.ToLower(s.ReqSlot.String()))
	}
	if s.HasSlot {
		return fmt.Sprintf(" (all No have '%s' %s)", letter(s.ReqLetter), strings.ToLower(s.ReqSlot.String()))
	}
	return fmt.Sprintf(" (all No have '%s')", letter(s.ReqLetter))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
