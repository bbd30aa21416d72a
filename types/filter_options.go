// filter_options.go defines the open option map forwarded to external filters.

package types

import (
	"fmt"
	"strings"
)

// FilterOption is a single named option for an external filter. The value
// is passed through opaquely; only the individual filter knows its meaning.
type FilterOption struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}

// FilterOptions is an ordered open option set. It is forwarded to the
// selected external filter verbatim; this layer performs no schema
// validation beyond the few keys it reads itself (see GetInt).
type FilterOptions []FilterOption

func Option(key string, value any) FilterOption {
	return FilterOption{Key: key, Value: value}
}

func (s FilterOptions) Clone() FilterOptions {
	if s == nil {
		return nil
	}
	result := make(FilterOptions, len(s))
	copy(result, s)
	return result
}

func (s FilterOptions) Has(key string) bool {
	_, ok := s.Get(key)
	return ok
}

// Get returns the value of the last occurrence of the key.
func (s FilterOptions) Get(key string) (any, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Key == key {
			return s[i].Value, true
		}
	}
	return nil, false
}

// GetInt returns the value of the key as an integer, if it is set and is
// of any integer-ish type.
func (s FilterOptions) GetInt(key string) (int64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch value := v.(type) {
	case int:
		return int64(value), true
	case int32:
		return int64(value), true
	case int64:
		return value, true
	case uint:
		return int64(value), true
	case uint32:
		return int64(value), true
	case uint64:
		return int64(value), true
	case float64:
		if value == float64(int64(value)) {
			return int64(value), true
		}
	case float32:
		if value == float32(int64(value)) {
			return int64(value), true
		}
	}
	return 0, false
}

// GetFloat returns the value of the key as a float, if it is set and is
// numeric.
func (s FilterOptions) GetFloat(key string) (float64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch value := v.(type) {
	case float64:
		return value, true
	case float32:
		return float64(value), true
	case int:
		return float64(value), true
	case int32:
		return float64(value), true
	case int64:
		return float64(value), true
	case uint:
		return float64(value), true
	case uint32:
		return float64(value), true
	case uint64:
		return float64(value), true
	}
	return 0, false
}

// With returns a copy with the given option appended.
func (s FilterOptions) With(key string, value any) FilterOptions {
	result := make(FilterOptions, 0, len(s)+1)
	result = append(result, s...)
	return append(result, FilterOption{Key: key, Value: value})
}

// Join returns the concatenation of s and extra, in order. Duplicate keys
// are kept; the later occurrence wins on lookup (and host-side).
func (s FilterOptions) Join(extra FilterOptions) FilterOptions {
	if len(extra) == 0 {
		return s.Clone()
	}
	result := make(FilterOptions, 0, len(s)+len(extra))
	result = append(result, s...)
	return append(result, extra...)
}

// Deduplicate drops all but the last occurrence of each key, keeping the
// order of last occurrences.
func (s FilterOptions) Deduplicate() FilterOptions {
	var result FilterOptions
	for idx, opt := range s {
		isLast := true
		for _, next := range s[idx+1:] {
			if next.Key == opt.Key {
				isLast = false
				break
			}
		}
		if isLast {
			result = append(result, opt)
		}
	}
	return result
}

func (s FilterOptions) String() string {
	var result []string
	for _, opt := range s {
		result = append(result, fmt.Sprintf("%s=%v", opt.Key, opt.Value))
	}
	return strings.Join(result, ":")
}
