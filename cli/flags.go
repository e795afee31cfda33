package cli

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

var (
	ErrUsage = errors.New("usage error")
)

// Settings are the options a routing binary accepts before its command tokens.
type Settings struct {
	Skip       int    // Leading raw tokens to drop before matching.
	Accessible bool   // Use line based prompts instead of a full TUI.
	LogLevel   string // One of debug, info, warn, or error.
	List       bool   // Print the registered shapes instead of dispatching.
}

// MustGet is used with a [flag.FlagSet] getter to panic if the flag is not defined, or is not the right type.
func MustGet[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// SettingsFlags creates a [flag.FlagSet] for [Settings], using defaults as the initial values.
// Flag parsing stops at the first non-flag argument, so command tokens like "-1" after a literal are left for routing.
func SettingsFlags(name string, defaults Settings) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetInterspersed(false)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.Int("skip", defaults.Skip, "Number of leading arguments to drop before matching")
	fs.Bool("accessible", defaults.Accessible, "Use line based prompts instead of an interactive terminal UI")
	fs.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, or error")
	fs.BoolP("list", "l", defaults.List, "Lists registered commands and exits")
	return fs
}

// ParseSettings parses args with a [flag.FlagSet] from [SettingsFlags].
// The returned slice holds the remaining command tokens.
// If help was requested, then flag.ErrHelp is returned.
func ParseSettings(fs *flag.FlagSet, args []string) (Settings, []string, error) {
	if err := fs.Parse(args); err != nil {
		return Settings{}, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if MustGet(fs.GetBool("help")) {
		return Settings{}, nil, flag.ErrHelp
	}
	settings := Settings{
		Skip:       MustGet(fs.GetInt("skip")),
		Accessible: MustGet(fs.GetBool("accessible")),
		LogLevel:   strings.ToLower(MustGet(fs.GetString("log-level"))),
		List:       MustGet(fs.GetBool("list")),
	}
	if settings.Skip < 0 {
		return Settings{}, nil, fmt.Errorf("%w: skip must not be negative, got %d", ErrUsage, settings.Skip)
	}
	return settings, fs.Args(), nil
}
