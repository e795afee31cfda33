/*
Package prompt implements [route.Asker] for interactive terminals.

Questions for missing placeholders are rendered as a single [huh] form.
Ambiguous commands are narrowed with a small [bubbletea] program: a filter input above the options that survive the chooser's suggest function.

When STDIN isn't a terminal, or accessible mode is requested, every prompt falls back to plain lines of text so answers can be piped in.

[huh]: https://github.com/charmbracelet/huh
[bubbletea]: https://github.com/charmbracelet/bubbletea
*/
package prompt
