package env

import (
	"github.com/saylorsolutions/argroute/cli"
)

// Prefix is prepended to every key read by [Settings].
const Prefix = "ARGROUTE_"

const (
	KeySkip       = Prefix + "SKIP"
	KeyAccessible = Prefix + "ACCESSIBLE"
	KeyLogLevel   = Prefix + "LOG_LEVEL"
)

// Settings reads [cli.Settings] from the [Source], falling back to defaults for anything unset or invalid.
// The result is meant to be used as the defaults of [cli.SettingsFlags], so flags take precedence over the environment.
func (s Source) Settings(defaults cli.Settings) cli.Settings {
	settings := defaults
	if skip := s.Int(KeySkip, defaults.Skip); skip >= 0 {
		settings.Skip = skip
	}
	settings.Accessible = s.Bool(KeyAccessible, defaults.Accessible)
	settings.LogLevel = s.Val(KeyLogLevel, defaults.LogLevel)
	return settings
}
