package route

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/saylorsolutions/argroute/cli"
)

const (
	DefaultSkip          = 2                                // DefaultSkip is the number of leading raw tokens dropped before matching, a program name and script path.
	DefaultChooseMessage = "Choose one"                     // DefaultChooseMessage is shown above the list of ambiguous candidates.
	NoMatchMessage       = "Cannot find a matching command" // NoMatchMessage is printed when no shape matches the input.
)

// Asker is the interactive collaborator used to fill in missing placeholders and to choose between ambiguous shapes.
type Asker interface {
	// Ask submits all questions in one batch.
	// A nil Answers with a nil error means the user cancelled.
	// Questions without an answer in the result, or answered with empty text, fall back to the placeholder token.
	Ask(ctx context.Context, questions []Question) (Answers, error)
	// Choose asks the user to pick one of the chooser's options, returning its Value.
	// The second return is false if the user cancelled.
	Choose(ctx context.Context, chooser Chooser) (string, bool, error)
}

// Chooser describes a single choice from a filterable list.
type Chooser struct {
	Message string
	Choices []Option
	// Suggest narrows the full list of choices as the user types a search term.
	Suggest func(term string, choices []Option) []Option
}

// Output prints a styled diagnostic line for the user.
type Output interface {
	Errorln(msg ...any)
}

// Router matches raw command line tokens against a [Registry] and dispatches to the matching [Handler].
type Router struct {
	reg           *Registry
	asker         Asker
	out           Output
	log           *slog.Logger
	skip          int
	chooseMessage string
}

// RouterOption configures a [Router].
type RouterOption func(r *Router)

// WithSkip sets the number of leading raw tokens to discard before matching.
// Negative values are treated as 0.
func WithSkip(n int) RouterOption {
	return func(r *Router) {
		r.skip = max(n, 0)
	}
}

// WithOutput sets where the no-match notice is printed.
// The default is a [cli.Printer] writing to STDERR.
func WithOutput(out Output) RouterOption {
	return func(r *Router) {
		if out != nil {
			r.out = out
		}
	}
}

// WithLogger sets the logger used for debug records about matching and dispatch.
// Nothing is logged by default.
func WithLogger(log *slog.Logger) RouterOption {
	return func(r *Router) {
		if log != nil {
			r.log = log
		}
	}
}

// WithChooseMessage overrides [DefaultChooseMessage].
func WithChooseMessage(msg string) RouterOption {
	return func(r *Router) {
		if len(msg) > 0 {
			r.chooseMessage = msg
		}
	}
}

// New creates a [Router] that dispatches shapes from the [Registry], prompting through the [Asker] when needed.
// Passing a nil registry or asker will panic.
func New(reg *Registry, asker Asker, opts ...RouterOption) *Router {
	if reg == nil {
		panic("nil registry")
	}
	if asker == nil {
		panic("nil asker")
	}
	r := &Router{
		reg:           reg,
		asker:         asker,
		out:           cli.NewPrinter(),
		log:           slog.New(slog.DiscardHandler),
		skip:          DefaultSkip,
		chooseMessage: DefaultChooseMessage,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Dispatch routes the raw tokens, usually [os.Args], to a single [Handler].
//
// No handler is run, and nil is returned, if nothing matches or the user cancels a prompt.
// Configuration problems are returned as errors wrapping [ErrConfig].
// A handler's error is returned as-is.
func (r *Router) Dispatch(ctx context.Context, rawArgs []string) error {
	var (
		input  []string
		pinned string
	)
	if len(rawArgs) > r.skip {
		input = slices.Clone(rawArgs[r.skip:])
	}
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		log := r.log.With("round", round, "input", input)
		candidates, err := Match(r.reg, input)
		if err != nil {
			return err
		}
		if len(candidates) > 1 && len(pinned) > 0 {
			if i := slices.IndexFunc(candidates, func(s Shape) bool { return s.Label() == pinned }); i >= 0 {
				candidates = candidates[i : i+1]
			}
		}
		log.Debug("Matched shapes", "candidates", len(candidates))

		switch len(candidates) {
		case 0:
			r.out.Errorln(NoMatchMessage)
			return nil
		case 1:
			return r.run(ctx, log, candidates[0], input)
		}

		chosen, ok, err := r.choose(ctx, candidates)
		if err != nil {
			return err
		}
		if !ok {
			log.Debug("Choice cancelled")
			return nil
		}
		log.Debug("Chose shape", "label", chosen)
		input = extendInput(input, chosen)
		pinned = chosen
	}
}

// extendInput appends the chosen label's literal tokens that follow what was already typed.
// Tokens after the first placeholder are dropped, since their positions can't be filled yet.
func extendInput(input []string, label string) []string {
	tokens := strings.Split(label, " ")
	if len(tokens) <= len(input) {
		return input
	}
	for _, token := range tokens[len(input):] {
		if IsPlaceholder(token) {
			break
		}
		input = append(input, token)
	}
	return input
}

func (r *Router) choose(ctx context.Context, candidates []Shape) (string, bool, error) {
	choices := make([]Option, len(candidates))
	for i, shape := range candidates {
		label := shape.Label()
		choices[i] = Option{Label: label, Value: label}
	}
	chosen, ok, err := r.asker.Choose(ctx, Chooser{
		Message: r.chooseMessage,
		Choices: choices,
		Suggest: SuggestOptions,
	})
	if err != nil || !ok || len(chosen) == 0 {
		return "", false, err
	}
	return chosen, true, nil
}

// run resolves the arguments for a single matched shape and calls its handler.
func (r *Router) run(ctx context.Context, log *slog.Logger, shape Shape, input []string) error {
	id := shape.ID()
	handler, err := r.reg.mustHandler(id)
	if err != nil {
		return err
	}

	var args []any
	for i, token := range input {
		if !IsPlaceholder(shape[i]) {
			continue
		}
		typ, err := r.reg.mustResolve(shape[i])
		if err != nil {
			return err
		}
		val, err := coerceToken(shape[i], typ, token)
		if err != nil {
			return err
		}
		args = append(args, val)
	}

	if len(shape) > len(input) {
		prompted, ok, err := r.prompt(ctx, shape[len(input):])
		if err != nil {
			return err
		}
		if !ok {
			log.Debug("Prompt cancelled", "handler", id)
			return nil
		}
		args = append(args, prompted...)
	}

	log.Debug("Running handler", "handler", id, "args", len(args))
	return handler(ctx, args...)
}

// prompt asks for every placeholder in extra as one batch.
// Literal tokens in extra are implied by the match, so they're neither asked for nor passed to the handler.
func (r *Router) prompt(ctx context.Context, extra []string) ([]any, bool, error) {
	var (
		names     []string
		types     []Type
		questions []Question
	)
	for _, token := range extra {
		if !IsPlaceholder(token) {
			continue
		}
		typ, err := r.reg.mustResolve(token)
		if err != nil {
			return nil, false, err
		}
		q, err := questionFor(token, typ)
		if err != nil {
			return nil, false, err
		}
		names = append(names, token)
		types = append(types, typ)
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, true, nil
	}

	answers, err := r.asker.Ask(ctx, questions)
	if err != nil {
		return nil, false, err
	}
	if answers == nil {
		return nil, false, nil
	}

	args := make([]any, len(questions))
	for i, q := range questions {
		answer, ok := answers[q.Name]
		if !ok || unanswered(answer) {
			args[i] = names[i]
			continue
		}
		val, err := coerceAnswer(names[i], types[i], answer)
		if err != nil {
			return nil, false, err
		}
		args[i] = val
	}
	return args, true, nil
}

// unanswered is true for a nil answer or empty text, which is what a line prompt gives when the user just presses enter.
// False and zero are deliberate answers.
func unanswered(answer any) bool {
	if answer == nil {
		return true
	}
	text, ok := answer.(string)
	return ok && len(text) == 0
}
