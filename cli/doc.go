/*
Package cli provides the output and flag plumbing shared by routing binaries.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - Error lines are styled with [lipgloss], which drops the styling when the destination isn't a terminal.
  - This package uses [pflag] for posix style flags.
  - Flags should NOT be interspersed. Flag parsing stops at the first command token, so everything after it is left for the router.

# Invocation

A routing binary can always be invoked in this form:

	CLI_NAME [FLAGS...] [COMMAND TOKENS...]

The flags are described by [Settings], and created with [SettingsFlags].

[pflag]: https://github.com/spf13/pflag
[lipgloss]: https://github.com/charmbracelet/lipgloss
*/
package cli
