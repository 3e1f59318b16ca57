package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Configuration keys persisted in the config file.
const (
	KeyToken       = "token"
	KeyURL         = "url"
	KeyFormat      = "format"
	KeyRateLimit   = "rate_limit"
	KeyMaxProjects = "max_projects"
)

// ConfigKeys returns every recognised configuration key in display order.
func ConfigKeys() []string {
	return []string{KeyToken, KeyURL, KeyFormat, KeyRateLimit, KeyMaxProjects}
}

// IsConfigKey reports whether key is recognised.
func IsConfigKey(key string) bool {
	return slices.Contains(ConfigKeys(), key)
}

// Settings are the persisted defaults. Zero values mean unset.
type Settings struct {
	Token       string  `toml:"token,omitempty"`
	URL         string  `toml:"url,omitempty"`
	Format      string  `toml:"format,omitempty"`
	RateLimit   float64 `toml:"rate_limit,omitempty"`
	MaxProjects int     `toml:"max_projects,omitempty"`
}

// Get returns the string form of a key and whether it is set.
func (s Settings) Get(key string) (string, bool) {
	switch key {
	case KeyToken:
		return s.Token, s.Token != ""
	case KeyURL:
		return s.URL, s.URL != ""
	case KeyFormat:
		return s.Format, s.Format != ""
	case KeyRateLimit:
		return strconv.FormatFloat(s.RateLimit, 'f', -1, 64), s.RateLimit != 0
	case KeyMaxProjects:
		return strconv.Itoa(s.MaxProjects), s.MaxProjects != 0
	default:
		return "", false
	}
}

// With returns a copy of s with key set from its string form.
// An empty value clears the key.
func (s Settings) With(key, value string) (Settings, error) {
	value = strings.TrimSpace(value)

	switch key {
	case KeyToken:
		s.Token = value
	case KeyURL:
		s.URL = value
	case KeyFormat:
		if value == "" {
			s.Format = ""
			break
		}
		f, err := ParseOutputFormat(value)
		if err != nil {
			return s, err
		}
		s.Format = string(f)
	case KeyRateLimit:
		if value == "" {
			s.RateLimit = 0
			break
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v < 0 {
			return s, fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidInput, key)
		}
		s.RateLimit = v
	case KeyMaxProjects:
		if value == "" {
			s.MaxProjects = 0
			break
		}
		v, err := strconv.Atoi(value)
		if err != nil || v < 0 {
			return s, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidInput, key)
		}
		s.MaxProjects = v
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownConfigKey, key)
	}
	return s, nil
}
