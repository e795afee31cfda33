package route

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Match returns the registered shapes that are compatible with the given input tokens, in registration order.
// Every shape is a candidate when the input is empty.
//
// A shape referencing an unregistered placeholder at a compared position results in an [ErrConfig] error.
func Match(reg *Registry, input []string) ([]Shape, error) {
	var candidates []Shape
	for _, shape := range reg.shapes {
		if len(input) == 0 {
			candidates = append(candidates, shape)
			continue
		}
		ok, err := compatible(reg, shape, input)
		if err != nil {
			return nil, err
		}
		if ok {
			candidates = append(candidates, shape)
		}
	}
	return candidates, nil
}

func compatible(reg *Registry, shape Shape, input []string) (bool, error) {
	if len(shape) < len(input) {
		return false, nil
	}
	for i, token := range input {
		if !IsPlaceholder(shape[i]) {
			if shape[i] != token {
				return false, nil
			}
			continue
		}
		typ, err := reg.mustResolve(shape[i])
		if err != nil {
			return false, err
		}
		ok, err := accepts(shape[i], typ, token)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// accepts reports whether a raw token may fill a placeholder of the given type.
// List and boolean placeholders are only validated when prompted, so any token is provisionally accepted.
func accepts(name string, typ Type, token string) (bool, error) {
	switch typ.Kind() {
	case KindString:
		return true, nil
	case KindNumber:
		_, err := parseNumber(token)
		return err == nil, nil
	case KindChoice:
		return slices.ContainsFunc(typ.choice.Choices, func(opt Option) bool {
			return opt.Value == token
		}), nil
	case KindStringList, KindNumberList, KindBoolean:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %w: %s on %s", ErrConfig, ErrUnhandledType, typ, name)
	}
}

func parseNumber(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	val, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(val) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return val, nil
}
