// ABOUTME: Best-effort JSON extraction from free-text model output.
// ABOUTME: Strips code fences, then takes the first-{ to last-} substring.
package extract

import (
	"errors"
	"strings"
)

// ErrNoJSON is returned when no JSON-shaped substring is present.
var ErrNoJSON = errors.New("no JSON object found in response")

// ExtractJSON isolates a single JSON object candidate from raw model output.
// The model is not contract-bound to emit pure JSON, so this is deliberately
// a permissive heuristic, not a parser: after fence stripping it returns the
// substring from the first '{' to the last '}'. It can return malformed text
// when the response contains multiple JSON-like fragments; the caller decodes
// and decides.
func ExtractJSON(raw string) (string, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	if start == -1 {
		return "", ErrNoJSON
	}
	end := strings.LastIndex(cleaned, "}")
	if end == -1 || end < start {
		return "", ErrNoJSON
	}
	return cleaned[start : end+1], nil
}

// stripFences removes markdown code-fence markers, leniently. Fences may
// carry a language tag ("```json"), may be unbalanced, and may share a line
// with the JSON itself, so only the marker tokens are removed, never the
// rest of the line.
func stripFences(s string) string {
	var b strings.Builder
	for {
		i := strings.Index(s, "```")
		if i == -1 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		s = s[i+3:]
		s = strings.TrimLeft(s, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	}
}
