package schema

import "strings"

// HydraPrefix is the namespace prefix Hydra servers may put on collection keys
// ("hydra:member", "hydra:totalItems").
const HydraPrefix = "hydra:"

// StripKeyPrefix returns a copy of value with prefix removed from every object
// key, at any depth. Arrays are walked; other values are returned as-is.
//
// When an object carries both "hydra:x" and "x", the value of the prefixed
// key wins.
func StripKeyPrefix(value any, prefix string) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if !strings.HasPrefix(k, prefix) {
				out[k] = StripKeyPrefix(val, prefix)
			}
		}
		for k, val := range v {
			if stripped, ok := strings.CutPrefix(k, prefix); ok {
				out[stripped] = StripKeyPrefix(val, prefix)
			}
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = StripKeyPrefix(item, prefix)
		}
		return out
	default:
		return value
	}
}

// KeyPrefixStripper returns a Preprocess function that applies
// StripKeyPrefix with prefix.
func KeyPrefixStripper(prefix string) func(any) any {
	return func(value any) any {
		return StripKeyPrefix(value, prefix)
	}
}
