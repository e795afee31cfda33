package route

import (
	"fmt"
	"strings"
)

// ListSeparator separates the values of a list placeholder given on the command line.
const ListSeparator = ","

// questionFor builds the prompt used when a placeholder has no value yet.
func questionFor(name string, typ Type) (Question, error) {
	msg := fmt.Sprintf("Please input %s", name)
	switch typ.Kind() {
	case KindString:
		return Question{Kind: QuestionText, Name: name, Message: msg}, nil
	case KindNumber:
		return Question{Kind: QuestionNumber, Name: name, Message: msg}, nil
	case KindStringList, KindNumberList:
		return Question{Kind: QuestionList, Name: name, Message: msg}, nil
	case KindBoolean:
		return Question{Kind: QuestionConfirm, Name: name, Message: msg}, nil
	case KindChoice:
		q := typ.choice
		if q.Kind != QuestionSelect || len(q.Choices) == 0 {
			return Question{}, fmt.Errorf("%w: %w: %s question with %d choices on %s", ErrConfig, ErrUnhandledQuestion, q.Kind, len(q.Choices), name)
		}
		if len(q.Name) == 0 {
			q.Name = name
		}
		if len(q.Message) == 0 {
			q.Message = msg
		}
		return q, nil
	default:
		return Question{}, fmt.Errorf("%w: %w: %s on %s", ErrConfig, ErrUnhandledType, typ, name)
	}
}

// coerceToken converts a placeholder value given on the command line.
func coerceToken(name string, typ Type, token string) (any, error) {
	switch typ.Kind() {
	case KindNumber:
		return parseNumber(token)
	case KindNumberList:
		parts := strings.Split(token, ListSeparator)
		nums := make([]float64, len(parts))
		for i, part := range parts {
			num, err := parseNumber(part)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			nums[i] = num
		}
		return nums, nil
	case KindString, KindStringList, KindBoolean, KindChoice:
		return token, nil
	default:
		return nil, fmt.Errorf("%w: %w: %s on %s", ErrConfig, ErrUnhandledType, typ, name)
	}
}

// coerceAnswer post-processes a prompted value.
// Number list answers arrive as raw entries and are converted individually.
func coerceAnswer(name string, typ Type, answer any) (any, error) {
	if typ.Kind() != KindNumberList {
		return answer, nil
	}
	var entries []string
	switch val := answer.(type) {
	case []string:
		entries = val
	case string:
		entries = strings.Split(val, ListSeparator)
	case []float64:
		return val, nil
	default:
		return nil, fmt.Errorf("%s: %w: unexpected answer %T", name, ErrInvalidNumber, answer)
	}
	nums := make([]float64, len(entries))
	for i, entry := range entries {
		num, err := parseNumber(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		nums[i] = num
	}
	return nums, nil
}
