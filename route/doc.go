/*
Package route dispatches command line tokens to handlers by matching them against declared command shapes.

A [Shape] is an ordered list of tokens.
Literal tokens must be typed exactly, and tokens starting with [PlaceholderPrefix] are typed placeholders registered with [Registry.Type].
The literal tokens of a shape, joined with [IDSeparator], form the [CommandID] of its [Handler].

	reg := route.NewRegistry().
		Type("#recordId", route.Number).
		Shape("migrate", "run").
		Shape("practice_number", "#recordId").
		Handle("migrate_run", migrateRun).
		Handle("practice_number", practiceNumber)

# Dispatch

[Router.Dispatch] works in rounds.
Each round matches the input against every shape.

  - No candidates: a notice is printed and nothing runs.
  - One candidate: missing trailing placeholders are asked for through the [Asker], values are coerced, and the handler runs.
  - More candidates: the user chooses one from a fuzzy-filtered list, its literal tokens are appended to the input, and a new round begins.

Cancelling any prompt ends dispatch without an error.
Misconfiguration, like a shape using an unregistered placeholder, results in an error wrapping [ErrConfig].
*/
package route
