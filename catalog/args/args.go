// Package args provides typed accessors over the loosely-typed argument bag
// a calling SDK delivers with a tool invocation. Tool bodies run after the
// validating projection has accepted the bag, so the accessors only bridge
// JSON decoding artifacts (float64 numbers, []any arrays) and apply declared
// defaults for omitted optional parameters.
package args

// String returns the string argument for key, or "" when absent.
func String(bag map[string]any, key string) string {
	s, _ := bag[key].(string)
	return s
}

// StringOr returns the string argument for key, or def when absent.
func StringOr(bag map[string]any, key, def string) string {
	if s, ok := bag[key].(string); ok {
		return s
	}
	return def
}

// Int returns the numeric argument for key truncated to int, or 0 when
// absent. JSON numbers decode as float64; Go-native ints are handled for
// in-process callers.
func Int(bag map[string]any, key string) int {
	switch v := bag[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

// BoolOr returns the boolean argument for key, or def when absent.
func BoolOr(bag map[string]any, key string, def bool) bool {
	if b, ok := bag[key].(bool); ok {
		return b
	}
	return def
}

// Has reports whether the caller supplied key at all.
func Has(bag map[string]any, key string) bool {
	_, ok := bag[key]
	return ok
}

// Strings returns the string-array argument for key. Both []any (wire
// decoded) and []string (in-process) representations are accepted.
func Strings(bag map[string]any, key string) []string {
	switch v := bag[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Matrix returns the value-matrix argument for key as [][]any.
func Matrix(bag map[string]any, key string) [][]any {
	switch v := bag[key].(type) {
	case [][]any:
		return v
	case []any:
		out := make([][]any, 0, len(v))
		for _, row := range v {
			switch r := row.(type) {
			case []any:
				out = append(out, r)
			}
		}
		return out
	}
	return nil
}

// StringMatrix returns the string-matrix argument for key as [][]string.
func StringMatrix(bag map[string]any, key string) [][]string {
	switch v := bag[key].(type) {
	case [][]string:
		return v
	case []any:
		out := make([][]string, 0, len(v))
		for _, row := range v {
			switch r := row.(type) {
			case []string:
				out = append(out, r)
			case []any:
				sr := make([]string, 0, len(r))
				for _, e := range r {
					if s, ok := e.(string); ok {
						sr = append(sr, s)
					}
				}
				out = append(out, sr)
			}
		}
		return out
	}
	return nil
}
