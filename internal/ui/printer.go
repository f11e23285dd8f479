package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Printer writes console output, styled when the destination is a terminal
// and plain otherwise, so piped output and tests see the exact text.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a Printer for w. Styling is enabled only when w is a
// terminal file.
func NewPrinter(w io.Writer) *Printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{out: w, styled: styled}
}

// NewPlainPrinter creates a Printer that never styles.
func NewPlainPrinter(w io.Writer) *Printer {
	return &Printer{out: w}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Arguments prints the argument count and each argument, program name included.
//
//	Arguments count: 3
//	Argument  0: wsecho-server
//	Argument  1: 127.0.0.1
//	Argument  2: 6080
func (p *Printer) Arguments(argv []string) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", p.render(ArgKeyStyle, "Arguments count:"), len(argv))
	for i, arg := range argv {
		fmt.Fprintf(&b, "%s %s\n",
			p.render(ArgKeyStyle, fmt.Sprintf("Argument %2d:", i)),
			p.render(ArgValueStyle, arg),
		)
	}
	_, _ = io.WriteString(p.out, b.String())
}

// Transport prints which transport the server will use.
func (p *Printer) Transport(secure bool) {
	if secure {
		_, _ = fmt.Fprintln(p.out, p.render(SecureBannerStyle, "WebSocket SECURE - WSS://"))
		return
	}
	_, _ = fmt.Fprintln(p.out, p.render(PlainBannerStyle, "WebSocket WS://"))
}

// Usage prints the one-line usage for program.
func (p *Printer) Usage(program string) {
	_, _ = fmt.Fprintln(p.out, p.render(UsageStyle, UsageLine(program)))
}

// Error prints err with an "Error:" prefix.
func (p *Printer) Error(err error) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n",
		p.render(ErrorTitleStyle, "Error:"),
		p.render(ErrorMessageStyle, err.Error()),
	)
}

// Line prints a plain line.
func (p *Printer) Line(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// UsageLine returns the usage text for program
func UsageLine(program string) string {
	return fmt.Sprintf("Usage: %s <hostname/ip> <tcp port> [certificate file]", program)
}
