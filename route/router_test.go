package route

import (
	"bytes"
	"context"
	"errors"
	"github.com/saylorsolutions/argroute/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

// fakeAsker answers prompts from canned values, recording what it was asked.
type fakeAsker struct {
	answers   Answers
	askErr    error
	choices   []string // Returned in order by Choose, an empty string cancels.
	chooseErr error

	asked   [][]Question
	offered []Chooser
}

func (f *fakeAsker) Ask(_ context.Context, questions []Question) (Answers, error) {
	f.asked = append(f.asked, questions)
	if f.askErr != nil {
		return nil, f.askErr
	}
	return f.answers, nil
}

func (f *fakeAsker) Choose(_ context.Context, chooser Chooser) (string, bool, error) {
	f.offered = append(f.offered, chooser)
	if f.chooseErr != nil {
		return "", false, f.chooseErr
	}
	if len(f.choices) == 0 {
		return "", false, nil
	}
	choice := f.choices[0]
	f.choices = f.choices[1:]
	return choice, len(choice) > 0, nil
}

type call struct {
	id   CommandID
	args []any
}

// recordingRegistry registers handlers for all sample shapes that record their invocation.
func recordingRegistry(calls *[]call) *Registry {
	reg := sampleRegistry()
	for _, shape := range reg.Shapes() {
		id := shape.ID()
		reg.Handle(id, func(_ context.Context, args ...any) error {
			*calls = append(*calls, call{id: id, args: args})
			return nil
		})
	}
	return reg
}

func testRouter(reg *Registry, asker Asker, out *bytes.Buffer) *Router {
	printer := cli.NewPrinter()
	printer.Redirect(out)
	return New(reg, asker, WithSkip(0), WithOutput(printer))
}

func TestRouter_Dispatch_FullySpecified(t *testing.T) {
	tests := map[string]struct {
		input    []string
		expected call
	}{
		"All literal": {
			input:    []string{"migrate", "run"},
			expected: call{id: "migrate_run"},
		},
		"Number": {
			input:    []string{"practice_number", "-12.5"},
			expected: call{id: "practice_number", args: []any{-12.5}},
		},
		"Number list": {
			input:    []string{"practice_numbers", "1,2,3"},
			expected: call{id: "practice_numbers", args: []any{[]float64{1, 2, 3}}},
		},
		"String list stays raw": {
			input:    []string{"practice_strings", "a,b"},
			expected: call{id: "practice_strings", args: []any{"a,b"}},
		},
		"Boolean stays raw": {
			input:    []string{"practice_boolean", "true"},
			expected: call{id: "practice_boolean", args: []any{"true"}},
		},
		"Choice and number list": {
			input:    []string{"fixture", "import", "Product", "4,5"},
			expected: call{id: "fixture_import", args: []any{"Product", []float64{4, 5}}},
		},
		"String": {
			input:    []string{"stub", "practice", "Foo"},
			expected: call{id: "stub_practice", args: []any{"Foo"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var (
				calls []call
				out   bytes.Buffer
				asker = new(fakeAsker)
			)
			r := testRouter(recordingRegistry(&calls), asker, &out)
			require.NoError(t, r.Dispatch(context.Background(), tc.input))
			assert.Equal(t, []call{tc.expected}, calls)
			assert.Empty(t, asker.asked, "Nothing should be asked for a fully specified command")
			assert.Empty(t, asker.offered)
			assert.Empty(t, out.String())
		})
	}
}

func TestRouter_Dispatch_Idempotent(t *testing.T) {
	var calls []call
	r := testRouter(recordingRegistry(&calls), new(fakeAsker), new(bytes.Buffer))
	input := []string{"fixture", "import", "Brand", "1,2"}
	require.NoError(t, r.Dispatch(context.Background(), input))
	require.NoError(t, r.Dispatch(context.Background(), input))
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
	assert.Equal(t, []string{"fixture", "import", "Brand", "1,2"}, input, "Input should not be modified")
}

func TestRouter_Dispatch_Skip(t *testing.T) {
	var calls []call
	reg := recordingRegistry(&calls)
	r := New(reg, new(fakeAsker))
	require.NoError(t, r.Dispatch(context.Background(), []string{"node", "sample.js", "migrate", "clear"}))
	assert.Equal(t, []call{{id: "migrate_clear"}}, calls, "Two leading tokens should be skipped by default")

	calls = nil
	r = New(reg, new(fakeAsker), WithSkip(1))
	require.NoError(t, r.Dispatch(context.Background(), []string{"sample", "migrate", "reset"}))
	assert.Equal(t, []call{{id: "migrate_reset"}}, calls)
}

func TestRouter_Dispatch_NoMatch(t *testing.T) {
	var (
		calls []call
		out   bytes.Buffer
		asker = new(fakeAsker)
	)
	r := testRouter(recordingRegistry(&calls), asker, &out)
	require.NoError(t, r.Dispatch(context.Background(), []string{"practice_number", "abc"}))
	assert.Empty(t, calls)
	assert.Empty(t, asker.asked)
	assert.Empty(t, asker.offered)
	assert.Equal(t, NoMatchMessage+"\n", out.String())
}

func TestRouter_Dispatch_MissingPlaceholder(t *testing.T) {
	var (
		calls []call
		asker = &fakeAsker{answers: Answers{"#name": "Foo"}}
	)
	r := testRouter(recordingRegistry(&calls), asker, new(bytes.Buffer))
	require.NoError(t, r.Dispatch(context.Background(), []string{"stub", "practice"}))
	require.Len(t, asker.asked, 1)
	assert.Equal(t, []Question{{Kind: QuestionText, Name: "#name", Message: "Please input #name"}}, asker.asked[0])
	assert.Equal(t, []call{{id: "stub_practice", args: []any{"Foo"}}}, calls)
}

func TestRouter_Dispatch_PromptedKinds(t *testing.T) {
	tests := map[string]struct {
		input    []string
		answers  Answers
		asked    []QuestionKind
		expected call
	}{
		"Number": {
			input:    []string{"practice_number"},
			answers:  Answers{"#recordId": 7.0},
			asked:    []QuestionKind{QuestionNumber},
			expected: call{id: "practice_number", args: []any{7.0}},
		},
		"Number list entries converted": {
			input:    []string{"practice_numbers"},
			answers:  Answers{"#recordIds": []string{"1", "2"}},
			asked:    []QuestionKind{QuestionList},
			expected: call{id: "practice_numbers", args: []any{[]float64{1, 2}}},
		},
		"String list": {
			input:    []string{"practice_strings"},
			answers:  Answers{"#names": []string{"a", "b"}},
			asked:    []QuestionKind{QuestionList},
			expected: call{id: "practice_strings", args: []any{[]string{"a", "b"}}},
		},
		"False is an answer": {
			input:    []string{"practice_boolean"},
			answers:  Answers{"#yesOrNo": false},
			asked:    []QuestionKind{QuestionConfirm},
			expected: call{id: "practice_boolean", args: []any{false}},
		},
		"Choice": {
			input:    []string{"stub", "smd"},
			answers:  Answers{"#smdId": "Category"},
			asked:    []QuestionKind{QuestionSelect},
			expected: call{id: "stub_smd", args: []any{"Category"}},
		},
		"Supplied values come first": {
			input:    []string{"fixture", "import", "Brand"},
			answers:  Answers{"#recordIds": []string{"3"}},
			asked:    []QuestionKind{QuestionList},
			expected: call{id: "fixture_import", args: []any{"Brand", []float64{3}}},
		},
		"Batch of two": {
			input:    []string{"fixture", "import"},
			answers:  Answers{"#smdId": "Brand", "#recordIds": []string{"1"}},
			asked:    []QuestionKind{QuestionSelect, QuestionList},
			expected: call{id: "fixture_import", args: []any{"Brand", []float64{1}}},
		},
		"Empty text falls back to placeholder": {
			input:    []string{"stub", "practice"},
			answers:  Answers{"#name": ""},
			asked:    []QuestionKind{QuestionText},
			expected: call{id: "stub_practice", args: []any{"#name"}},
		},
		"Zero is an answer": {
			input:    []string{"practice_number"},
			answers:  Answers{"#recordId": 0.0},
			asked:    []QuestionKind{QuestionNumber},
			expected: call{id: "practice_number", args: []any{0.0}},
		},
		"Unanswered falls back to placeholder": {
			input:    []string{"fixture", "import"},
			answers:  Answers{"#smdId": "Brand"},
			asked:    []QuestionKind{QuestionSelect, QuestionList},
			expected: call{id: "fixture_import", args: []any{"Brand", "#recordIds"}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var (
				calls []call
				asker = &fakeAsker{answers: tc.answers}
			)
			r := testRouter(recordingRegistry(&calls), asker, new(bytes.Buffer))
			require.NoError(t, r.Dispatch(context.Background(), tc.input))
			require.Len(t, asker.asked, 1, "All questions should be asked in one batch")
			var kinds []QuestionKind
			for _, q := range asker.asked[0] {
				kinds = append(kinds, q.Kind)
			}
			assert.Equal(t, tc.asked, kinds)
			assert.Equal(t, []call{tc.expected}, calls)
		})
	}
}

func TestRouter_Dispatch_PromptCancelled(t *testing.T) {
	var (
		calls []call
		out   bytes.Buffer
		asker = new(fakeAsker)
	)
	r := testRouter(recordingRegistry(&calls), asker, &out)
	require.NoError(t, r.Dispatch(context.Background(), []string{"stub", "practice"}))
	assert.Len(t, asker.asked, 1)
	assert.Empty(t, calls, "No handler should run when the prompt is cancelled")
	assert.Empty(t, out.String(), "Nothing should be printed on cancellation")
}

func TestRouter_Dispatch_PromptError(t *testing.T) {
	var (
		calls   []call
		errTest = errors.New("test")
		asker   = &fakeAsker{askErr: errTest}
	)
	r := testRouter(recordingRegistry(&calls), asker, new(bytes.Buffer))
	assert.ErrorIs(t, r.Dispatch(context.Background(), []string{"stub", "practice"}), errTest)
	assert.Empty(t, calls)
}

func TestRouter_Dispatch_Disambiguation(t *testing.T) {
	var (
		calls []call
		asker = &fakeAsker{choices: []string{"migrate run"}}
	)
	reg := NewRegistry().
		Shape("migrate", "run").
		Shape("migrate", "rollback").
		Shape("migrate", "clear")
	for _, shape := range reg.Shapes() {
		id := shape.ID()
		reg.Handle(id, func(_ context.Context, args ...any) error {
			calls = append(calls, call{id: id, args: args})
			return nil
		})
	}
	r := testRouter(reg, asker, new(bytes.Buffer))
	require.NoError(t, r.Dispatch(context.Background(), []string{"migrate"}))

	require.Len(t, asker.offered, 1)
	chooser := asker.offered[0]
	assert.Equal(t, DefaultChooseMessage, chooser.Message)
	assert.Equal(t, []Option{
		{Label: "migrate run", Value: "migrate run"},
		{Label: "migrate rollback", Value: "migrate rollback"},
		{Label: "migrate clear", Value: "migrate clear"},
	}, chooser.Choices)
	assert.Equal(t, chooser.Choices, chooser.Suggest("", chooser.Choices))
	assert.Equal(t, chooser.Choices[:1], chooser.Suggest("mgrn", chooser.Choices))
	assert.Empty(t, chooser.Suggest("nm", chooser.Choices))

	assert.Equal(t, []call{{id: "migrate_run"}}, calls)
}

func TestRouter_Dispatch_DisambiguationThenPrompt(t *testing.T) {
	var (
		calls []call
		asker = &fakeAsker{
			choices: []string{"stub smd #smdId"},
			answers: Answers{"#smdId": "Brand"},
		}
	)
	r := testRouter(recordingRegistry(&calls), asker, new(bytes.Buffer))
	require.NoError(t, r.Dispatch(context.Background(), []string{"stub"}))
	require.Len(t, asker.offered, 1)
	assert.Len(t, asker.offered[0].Choices, 2)
	require.Len(t, asker.asked, 1)
	assert.Equal(t, "#smdId", asker.asked[0][0].Name)
	assert.Equal(t, []call{{id: "stub_smd", args: []any{"Brand"}}}, calls)
}

func TestRouter_Dispatch_ListingMode(t *testing.T) {
	var (
		calls []call
		asker = &fakeAsker{
			choices: []string{"practice_number #recordId"},
			answers: Answers{"#recordId": 3.0},
		}
	)
	reg := recordingRegistry(&calls)
	r := testRouter(reg, asker, new(bytes.Buffer))
	require.NoError(t, r.Dispatch(context.Background(), nil))
	require.Len(t, asker.offered, 1)
	assert.Len(t, asker.offered[0].Choices, len(reg.Shapes()), "Every shape should be offered for empty input")
	assert.Equal(t, []call{{id: "practice_number", args: []any{3.0}}}, calls)
}

func TestRouter_Dispatch_PinnedChoice(t *testing.T) {
	var (
		calls []call
		asker = &fakeAsker{
			choices: []string{"scaffold #kind extra"},
			answers: Answers{"#kind": "x"},
		}
	)
	reg := NewRegistry().
		Type("#kind", String).
		Shape("scaffold", "#kind").
		Shape("scaffold", "#kind", "extra").
		Handle("scaffold", nopHandler).
		Handle("scaffold_extra", func(_ context.Context, args ...any) error {
			calls = append(calls, call{id: "scaffold_extra", args: args})
			return nil
		})
	r := testRouter(reg, asker, new(bytes.Buffer))
	require.NoError(t, r.Dispatch(context.Background(), []string{"scaffold"}))
	assert.Len(t, asker.offered, 1, "A choice that adds no literal tokens should still resolve")
	assert.Equal(t, []call{{id: "scaffold_extra", args: []any{"x"}}}, calls, "Trailing literals are implied by the match")
}

func TestRouter_Dispatch_ChoiceCancelled(t *testing.T) {
	var (
		calls []call
		out   bytes.Buffer
		asker = new(fakeAsker)
	)
	r := testRouter(recordingRegistry(&calls), asker, &out)
	require.NoError(t, r.Dispatch(context.Background(), []string{"migrate"}))
	assert.Len(t, asker.offered, 1)
	assert.Empty(t, calls)
	assert.Empty(t, out.String())
}

func TestRouter_Dispatch_ChooseError(t *testing.T) {
	errTest := errors.New("test")
	r := testRouter(sampleRegistry(), &fakeAsker{chooseErr: errTest}, new(bytes.Buffer))
	assert.ErrorIs(t, r.Dispatch(context.Background(), []string{"migrate"}), errTest)
}

func TestRouter_Dispatch_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls []call
	r := testRouter(recordingRegistry(&calls), new(fakeAsker), new(bytes.Buffer))
	assert.ErrorIs(t, r.Dispatch(ctx, []string{"migrate", "run"}), context.Canceled)
	assert.Empty(t, calls)
}

func TestRouter_Dispatch_ConfigErrors(t *testing.T) {
	tests := map[string]struct {
		reg      *Registry
		input    []string
		expected error
	}{
		"Unregistered handler": {
			reg:      NewRegistry().Shape("a"),
			input:    []string{"a"},
			expected: ErrUnregisteredHandler,
		},
		"Unregistered type while matching": {
			reg:      NewRegistry().Shape("a", "#x").Handle("a", nopHandler),
			input:    []string{"a", "1"},
			expected: ErrUnregisteredType,
		},
		"Unregistered type while prompting": {
			reg:      NewRegistry().Shape("a", "#x").Handle("a", nopHandler),
			input:    []string{"a"},
			expected: ErrUnregisteredType,
		},
		"Unhandled question": {
			reg: NewRegistry().
				Type("#x", Choice(Question{Kind: QuestionSelect})).
				Shape("a", "#x").
				Handle("a", nopHandler),
			input:    []string{"a"},
			expected: ErrUnhandledQuestion,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			asker := new(fakeAsker)
			err := testRouter(tc.reg, asker, new(bytes.Buffer)).Dispatch(context.Background(), tc.input)
			assert.ErrorIs(t, err, ErrConfig)
			assert.ErrorIs(t, err, tc.expected)
			assert.Empty(t, asker.asked, "Nothing should be asked of the user when misconfigured")
		})
	}
}

func TestRouter_Dispatch_HandlerError(t *testing.T) {
	errTest := errors.New("test")
	reg := NewRegistry().Shape("fail").Handle("fail", func(context.Context, ...any) error {
		return errTest
	})
	err := testRouter(reg, new(fakeAsker), new(bytes.Buffer)).Dispatch(context.Background(), []string{"fail"})
	assert.ErrorIs(t, err, errTest)
	assert.NotErrorIs(t, err, ErrConfig)
}

func TestRouter_Dispatch_InvalidNumberList(t *testing.T) {
	var calls []call
	r := testRouter(recordingRegistry(&calls), new(fakeAsker), new(bytes.Buffer))
	err := r.Dispatch(context.Background(), []string{"practice_numbers", "1,two"})
	assert.ErrorIs(t, err, ErrInvalidNumber)
	assert.Empty(t, calls)
}

func TestNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		New(nil, new(fakeAsker))
	})
	assert.Panics(t, func() {
		New(NewRegistry(), nil)
	})
}

func TestExtendInput(t *testing.T) {
	assert.Equal(t, []string{"migrate", "run"}, extendInput([]string{"migrate"}, "migrate run"))
	assert.Equal(t, []string{"fixture", "import"}, extendInput(nil, "fixture import #smdId #recordIds"))
	assert.Equal(t, []string{"stub"}, extendInput([]string{"stub"}, "stub"))
	assert.Equal(t, []string{"a", "5", "b"}, extendInput([]string{"a", "5"}, "a #n b"))
}
