package route

import (
	"fmt"
)

// Kind identifies the variant held by a [Type].
type Kind int

const (
	KindString     Kind = iota + 1 // Free text, passed through unchanged.
	KindNumber                     // Parsed to float64.
	KindStringList                 // Collected as []string.
	KindNumberList                 // Collected as []float64.
	KindBoolean                    // Yes/no confirmation.
	KindChoice                     // Closed set of options described by a [Question].
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindStringList:
		return "string[]"
	case KindNumberList:
		return "number[]"
	case KindBoolean:
		return "boolean"
	case KindChoice:
		return "choice"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type describes how a placeholder is validated, prompted for, and coerced.
// The zero value is not a valid Type.
type Type struct {
	kind   Kind
	choice Question
}

var (
	String     = Type{kind: KindString}
	Number     = Type{kind: KindNumber}
	StringList = Type{kind: KindStringList}
	NumberList = Type{kind: KindNumberList}
	Boolean    = Type{kind: KindBoolean}
)

// Choice creates a [Type] from a complete interactive descriptor.
// The descriptor is passed to the [Asker] unchanged when the placeholder is missing, and its option values are the only tokens accepted at the placeholder's position.
func Choice(q Question) Type {
	return Type{kind: KindChoice, choice: q}
}

// Kind returns the variant of this [Type].
func (t Type) Kind() Kind {
	return t.kind
}

// Question returns the descriptor wrapped by a [KindChoice] type.
func (t Type) Question() (Question, bool) {
	if t.kind != KindChoice {
		return Question{}, false
	}
	return t.choice, true
}

func (t Type) String() string {
	return t.kind.String()
}

// QuestionKind selects the kind of prompt an [Asker] should render.
type QuestionKind int

const (
	QuestionText    QuestionKind = iota + 1 // Single line of text.
	QuestionNumber                          // Numeric input, answered with float64.
	QuestionList                            // Comma separated values, answered with []string.
	QuestionConfirm                         // Yes/no, answered with bool.
	QuestionSelect                          // One of Choices, answered with the Option's Value.
)

func (k QuestionKind) String() string {
	switch k {
	case QuestionText:
		return "text"
	case QuestionNumber:
		return "number"
	case QuestionList:
		return "list"
	case QuestionConfirm:
		return "confirm"
	case QuestionSelect:
		return "select"
	default:
		return fmt.Sprintf("QuestionKind(%d)", int(k))
	}
}

// Question is a single prompt in a batch sent to an [Asker].
type Question struct {
	Kind    QuestionKind
	Name    string // Key of the answer in [Answers].
	Message string
	Choices []Option // Only used with QuestionSelect.
}

// Option is a labeled value in a [Question] or [Chooser].
type Option struct {
	Label string
	Value string
}

// Answers maps a [Question] name to the entered value.
// A nil Answers means the user cancelled.
type Answers map[string]any
