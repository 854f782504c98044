package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator checks a parsed value after JSON extraction. Returns nil if
// valid, or a descriptive error if the value violates its contract.
type Validator[T any] func(T) error

// ExtractJSON parses a JSON object of type T out of raw model output.
// Models are instructed to reply with only JSON, but in practice still wrap
// it in markdown fences or surround it with prose, so the first balanced
// object is extracted before unmarshaling. A reply with no parseable object,
// or one that fails validation, is a contract violation (ErrInvalidOutput) —
// it is never coerced into a partial value.
func ExtractJSON[T any](raw string, validate Validator[T]) (T, error) {
	var zero T

	jsonStr := firstJSONObject(stripCodeFences(raw))
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON object found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validate != nil {
		if err := validate(result); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
		}
	}
	return result, nil
}

// stripCodeFences drops markdown fence lines (```json ... ```).
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// firstJSONObject returns the first balanced { ... } block in s, respecting
// string literals and escapes, or "" when none exists.
func firstJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
