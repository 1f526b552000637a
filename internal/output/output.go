// Package output provides terminal formatting for halcyonctl.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes formatted status lines, with colors unless disabled.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(useColors bool) *Printer {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		useColors = false
	}
	return &Printer{out: os.Stdout, err: os.Stderr, useColors: useColors}
}

func (p *Printer) Success(format string, args ...any) {
	p.line(p.out, color.FgGreen, "✓ "+format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.err, color.FgRed, "✗ "+format, args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.line(p.out, color.FgYellow, "! "+format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) line(w io.Writer, attr color.Attribute, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.useColors {
		msg = color.New(attr).Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}
