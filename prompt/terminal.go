package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/saylorsolutions/argroute/route"
)

var _ route.Asker = (*Terminal)(nil)

// Terminal asks questions on a terminal, and implements [route.Asker].
type Terminal struct {
	in         io.Reader
	out        io.Writer
	accessible bool
	theme      *huh.Theme
}

// Option configures a [Terminal].
type Option func(t *Terminal)

// WithInput sets where answers are read from.
func WithInput(r io.Reader) Option {
	return func(t *Terminal) {
		if r != nil {
			t.in = r
		}
	}
}

// WithOutput sets where prompts are rendered.
func WithOutput(w io.Writer) Option {
	return func(t *Terminal) {
		if w != nil {
			t.out = w
		}
	}
}

// WithAccessible forces line based prompts, which work without a TTY and with screen readers.
func WithAccessible(accessible bool) Option {
	return func(t *Terminal) {
		t.accessible = accessible
	}
}

// WithTheme sets the [huh.Theme] used for question forms.
func WithTheme(theme *huh.Theme) Option {
	return func(t *Terminal) {
		if theme != nil {
			t.theme = theme
		}
	}
}

// NewTerminal creates a [Terminal] reading from STDIN and rendering to STDERR.
// Accessible mode is enabled by default when STDIN is not a terminal, like when input is piped.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		in:         os.Stdin,
		out:        os.Stderr,
		accessible: !IsTerminal(os.Stdin),
		theme:      huh.ThemeCharm(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// IsTerminal returns true if f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (t *Terminal) form(fields ...huh.Field) *huh.Form {
	in := t.in
	if t.accessible {
		in = byteReader{t.in}
	}
	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(t.theme).
		WithAccessible(t.accessible).
		WithInput(in).
		WithOutput(t.out)
}

// byteReader reads a single byte at a time.
// Accessible fields each scan their own line from the shared input, and a buffering scanner would swallow the lines meant for later fields.
type byteReader struct {
	r io.Reader
}

func (b byteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return b.r.Read(p[:1])
}

// ignoreAbort maps a user abort to cancellation, which isn't an error.
func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}

// Ask renders all questions in a single form.
// If the user aborts the form, then nil answers are returned.
func (t *Terminal) Ask(ctx context.Context, questions []route.Question) (route.Answers, error) {
	var (
		fields  = make([]huh.Field, len(questions))
		answers = make([]func() any, len(questions))
	)
	for i, q := range questions {
		field, answer, err := fieldFor(q)
		if err != nil {
			return nil, err
		}
		fields[i] = field
		answers[i] = answer
	}
	if err := t.form(fields...).RunWithContext(ctx); err != nil {
		return nil, ignoreAbort(err)
	}
	result := make(route.Answers, len(questions))
	for i, q := range questions {
		if val := answers[i](); val != nil {
			result[q.Name] = val
		}
	}
	return result, nil
}

// fieldFor creates the form field for a question, and a function that returns its answer once the form completes.
func fieldFor(q route.Question) (huh.Field, func() any, error) {
	switch q.Kind {
	case route.QuestionText:
		var val string
		field := huh.NewInput().Key(q.Name).Title(q.Message).Value(&val)
		return field, func() any { return val }, nil
	case route.QuestionNumber:
		var val string
		field := huh.NewInput().Key(q.Name).Title(q.Message).Value(&val).Validate(validateNumber)
		return field, func() any { return numberAnswer(val) }, nil
	case route.QuestionList:
		var val string
		field := huh.NewInput().Key(q.Name).Title(q.Message).
			Description("Separate values with " + route.ListSeparator).
			Value(&val)
		return field, func() any { return listAnswer(val) }, nil
	case route.QuestionConfirm:
		var val bool
		field := huh.NewConfirm().Key(q.Name).Title(q.Message).Value(&val)
		return field, func() any { return val }, nil
	case route.QuestionSelect:
		if len(q.Choices) == 0 {
			break
		}
		var val string
		options := make([]huh.Option[string], len(q.Choices))
		for i, opt := range q.Choices {
			options[i] = huh.NewOption(opt.Label, opt.Value)
		}
		field := huh.NewSelect[string]().Key(q.Name).Title(q.Message).Options(options...).Value(&val)
		return field, func() any { return val }, nil
	}
	return nil, nil, fmt.Errorf("%w: %w: %s question %s", route.ErrConfig, route.ErrUnhandledQuestion, q.Kind, q.Name)
}

func validateNumber(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

// numberAnswer returns nil for input that isn't a number, so the placeholder is used instead.
func numberAnswer(s string) any {
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return num
}

// listAnswer splits comma separated input into trimmed, non-empty entries.
func listAnswer(s string) any {
	var entries []string
	for _, entry := range strings.Split(s, route.ListSeparator) {
		entry = strings.TrimSpace(entry)
		if len(entry) > 0 {
			entries = append(entries, entry)
		}
	}
	if len(entries) == 0 {
		return nil
	}
	return entries
}
