// Package raw reads the handful of env values the logger needs before anything else is up
// It must not import the logger or config packages
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view over a key lookup, os.LookupEnv unless built with From
type Conf struct {
	prefix string
	lookup func(string) (string, bool)
}

// New reads the process environment
func New() Conf { return Conf{lookup: os.LookupEnv} }

// From reads a fixed map, for tests and embedded callers
func From(m map[string]string) Conf {
	return Conf{lookup: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

// Prefix narrows the view, LOG_ then LEVEL reads LOG_LEVEL
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p, lookup: c.lookup} }

func (c Conf) value(key string) string {
	if c.lookup == nil {
		return ""
	}
	v, _ := c.lookup(c.prefix + key)
	return strings.TrimSpace(v)
}

// Get returns the trimmed value or def when unset or blank
func (c Conf) Get(key, def string) string {
	if v := c.value(key); v != "" {
		return v
	}
	return def
}

// GetBool accepts 1/true/yes/on, anything else set is false
func (c Conf) GetBool(key string, def bool) bool {
	switch v := strings.ToLower(c.value(key)); v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// GetInt returns a non negative integer, def when unset or unparsable
func (c Conf) GetInt(key string, def int) int {
	n, err := strconv.Atoi(c.value(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}
