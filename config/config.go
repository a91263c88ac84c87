// Package config resolves the job-level configuration values a runtime
// needs before it can build a program: timebases, tick intervals, port
// widths, backend selection. Lookup is deliberately opaque — callers ask
// for a key and a type, and the package decides whether that came from a
// file, the environment, or a static map, the way the rest of the job's
// components never need to know.
package config

import (
	"fmt"

	"github.com/sarchlab/music/musicerr"
	"github.com/spf13/viper"
)

// Lookup resolves configuration values by key. Every method returns a
// ConfigurationError when the key is missing. Static also returns one when
// the stored value is not of the requested type; the viper-backed lookups
// convert the value with viper's own getters instead and do not report a
// value that fails to convert.
type Lookup interface {
	String(key string) (string, error)
	Int(key string) (int, error)
	Float64(key string) (float64, error)
}

// viperLookup is a Lookup backed by a *viper.Viper instance — used by both
// FromFile and FromEnv, which differ only in how they populate it.
type viperLookup struct {
	v *viper.Viper
}

// FromFile builds a Lookup that reads configuration from the file at path.
// The file's extension (.yaml, .json, .toml, ...) selects its format.
func FromFile(path string) (Lookup, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &musicerr.ConfigurationError{Key: path, Reason: err.Error()}
	}
	return &viperLookup{v: v}, nil
}

// FromEnv builds a Lookup that reads configuration from environment
// variables prefixed with prefix (e.g. prefix "MUSIC" makes key
// "tick_interval" resolve from MUSIC_TICK_INTERVAL).
func FromEnv(prefix string) Lookup {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	return &viperLookup{v: v}
}

func (l *viperLookup) String(key string) (string, error) {
	if !l.v.IsSet(key) {
		return "", &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	return l.v.GetString(key), nil
}

func (l *viperLookup) Int(key string) (int, error) {
	if !l.v.IsSet(key) {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	return l.v.GetInt(key), nil
}

func (l *viperLookup) Float64(key string) (float64, error) {
	if !l.v.IsSet(key) {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	return l.v.GetFloat64(key), nil
}

// Static is an in-memory Lookup for tests and samples that should not
// depend on a file or the environment.
type Static map[string]any

// String looks up key, requiring its value be a string.
func (s Static) String(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	str, ok := v.(string)
	if !ok {
		return "", &musicerr.ConfigurationError{Key: key, Reason: fmt.Sprintf("value %v is not a string", v)}
	}
	return str, nil
}

// Int looks up key, requiring its value be an int.
func (s Static) Int(key string) (int, error) {
	v, ok := s[key]
	if !ok {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	i, ok := v.(int)
	if !ok {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: fmt.Sprintf("value %v is not an int", v)}
	}
	return i, nil
}

// Float64 looks up key, requiring its value be a float64.
func (s Static) Float64(key string) (float64, error) {
	v, ok := s[key]
	if !ok {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: "not set"}
	}
	f, ok := v.(float64)
	if !ok {
		return 0, &musicerr.ConfigurationError{Key: key, Reason: fmt.Sprintf("value %v is not a float64", v)}
	}
	return f, nil
}
