package route

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

const (
	PlaceholderPrefix = "#" // PlaceholderPrefix marks a shape token as a typed placeholder.
	IDSeparator       = "_" // IDSeparator joins the literal tokens of a [Shape] to form its [CommandID].
)

// Shape is an ordered template of literal and placeholder tokens describing one command form.
type Shape []string

// IsPlaceholder returns true if the token references a placeholder type.
func IsPlaceholder(token string) bool {
	return strings.HasPrefix(token, PlaceholderPrefix)
}

// Literals returns the shape's tokens with placeholders removed.
func (s Shape) Literals() []string {
	literals := make([]string, 0, len(s))
	for _, token := range s {
		if !IsPlaceholder(token) {
			literals = append(literals, token)
		}
	}
	return literals
}

// ID derives the [CommandID] used to look up this shape's [Handler].
func (s Shape) ID() CommandID {
	return CommandID(strings.Join(s.Literals(), IDSeparator))
}

// Label is the shape's tokens joined by spaces, as shown to the user when choosing.
func (s Shape) Label() string {
	return strings.Join(s, " ")
}

// CommandID identifies the [Handler] for a [Shape].
type CommandID string

// Handler is executed once a [Shape] is fully resolved.
// Arguments are the shape's placeholder values from left to right, coerced according to their [Type].
type Handler func(ctx context.Context, args ...any) error

// Registry holds the placeholder types, shapes, and handlers known to a [Router].
// It's populated once at startup, and must not be changed while dispatching.
type Registry struct {
	types    map[string]Type
	shapes   []Shape
	handlers map[CommandID]Handler
}

// NewRegistry creates an empty [Registry].
func NewRegistry() *Registry {
	return &Registry{
		types:    map[string]Type{},
		handlers: map[CommandID]Handler{},
	}
}

// Type registers the [Type] of a placeholder.
// The name should include the [PlaceholderPrefix].
func (r *Registry) Type(name string, typ Type) *Registry {
	r.types[name] = typ
	return r
}

// Shape registers a command form.
// Shapes are matched in the order they're registered.
func (r *Registry) Shape(tokens ...string) *Registry {
	r.shapes = append(r.shapes, slices.Clone(Shape(tokens)))
	return r
}

// Handle registers the [Handler] for a [CommandID].
func (r *Registry) Handle(id CommandID, handler Handler) *Registry {
	r.handlers[id] = handler
	return r
}

// Resolve returns the [Type] registered for the placeholder name.
func (r *Registry) Resolve(name string) (Type, bool) {
	typ, ok := r.types[name]
	return typ, ok
}

// Handler returns the [Handler] registered with the [CommandID].
func (r *Registry) Handler(id CommandID) (Handler, bool) {
	h, ok := r.handlers[id]
	if !ok || h == nil {
		return nil, false
	}
	return h, true
}

// Shapes returns the registered shapes in registration order.
func (r *Registry) Shapes() []Shape {
	return slices.Clone(r.shapes)
}

func (r *Registry) mustResolve(name string) (Type, error) {
	typ, ok := r.Resolve(name)
	if !ok {
		return Type{}, fmt.Errorf("%w: %w: %s", ErrConfig, ErrUnregisteredType, name)
	}
	return typ, nil
}

func (r *Registry) mustHandler(id CommandID) (Handler, error) {
	h, ok := r.Handler(id)
	if !ok {
		return nil, fmt.Errorf("%w: %w: needs to register the handler named %q", ErrConfig, ErrUnregisteredHandler, id)
	}
	return h, nil
}

// Validate checks every registered shape, returning all configuration problems found.
// Dispatch reports the same problems lazily, so calling this is optional but lets a binary fail before any user interaction.
func (r *Registry) Validate() error {
	var (
		errs []error
		seen = map[string]bool{}
	)
	for _, shape := range r.shapes {
		label := shape.Label()
		if seen[label] {
			errs = append(errs, fmt.Errorf("%w: %w: %s", ErrConfig, ErrDuplicateShape, label))
		}
		seen[label] = true
		for _, token := range shape {
			if !IsPlaceholder(token) {
				continue
			}
			typ, err := r.mustResolve(token)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if _, err := questionFor(token, typ); err != nil {
				errs = append(errs, err)
			}
		}
		if _, err := r.mustHandler(shape.ID()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Usage returns one line per registered shape, with its handler's [CommandID].
func (r *Registry) Usage() string {
	var (
		buf    strings.Builder
		maxLen int
	)
	for _, shape := range r.shapes {
		maxLen = max(maxLen, len(shape.Label()))
	}
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for _, shape := range r.shapes {
		buf.WriteString(fmt.Sprintf(fmtStr, shape.Label(), shape.ID()))
	}
	return buf.String()
}
