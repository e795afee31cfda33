package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrorColor is the foreground color used by [Printer.Errorln].
var ErrorColor = lipgloss.Color("9")

// Printer writes user-visible output, which goes to STDERR by default.
// Styling is only applied when the destination supports it.
type Printer struct {
	out      io.Writer
	errStyle lipgloss.Style
}

func NewPrinter() *Printer {
	p := &Printer{}
	p.Redirect(os.Stderr)
	return p
}

// Redirect sends output to writer, re-detecting the color support of the new destination.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.errStyle = lipgloss.NewRenderer(writer).NewStyle().Foreground(ErrorColor)
}

// Out returns the current destination of the [Printer].
func (p *Printer) Out() io.Writer {
	return p.out
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorln prints a single line styled as an error.
func (p *Printer) Errorln(msg ...any) {
	line := strings.TrimSuffix(fmt.Sprintln(msg...), "\n")
	_, _ = fmt.Fprintln(p.out, p.errStyle.Render(line))
}
