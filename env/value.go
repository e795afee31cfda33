package env

import (
	"os"
	"strconv"
	"strings"
)

// Source provides environment variables by key.
// Keys are compared case-insensitive, and values are trimmed.
type Source map[string]string

// FromOS captures the current process environment as a [Source].
func FromOS() Source {
	return FromPairs(os.Environ())
}

// FromPairs creates a [Source] from KEY=value pairs, as returned by [os.Environ].
// Pairs without an equals sign are ignored.
func FromPairs(pairs []string) Source {
	src := Source{}
	for _, pair := range pairs {
		key, val, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		src[strings.ToLower(key)] = val
	}
	return src
}

// Val will attempt to get a value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func (s Source) Val(key string, defaultVal string) string {
	val, ok := s[strings.ToLower(key)]
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Source.Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Source.Bool], and can be changed.
)

// Bool interprets a variable as a boolean, using [DefaultTrue] and [DefaultFalse].
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func (s Source) Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(s.Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, v := range DefaultTrue {
		if sval == v {
			return true
		}
	}
	for _, v := range DefaultFalse {
		if sval == v {
			return false
		}
	}
	return defaultVal
}

// Int will attempt to interpret a variable as an integer, returning the defaultVal if it isn't found or can't be a valid integer.
func (s Source) Int(key string, defaultVal int) int {
	sval := s.Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	ival, err := strconv.Atoi(sval)
	if err != nil {
		return defaultVal
	}
	return ival
}
