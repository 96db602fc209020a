// Package extract pulls structured data out of raw model text: JSON
// blocks buried in prose or code fences, bounding boxes, and event
// timestamps. Model output is best-effort; every failure routes to the
// parse-error class instead of surfacing as a server fault.
package extract

import (
	"encoding/json"
	"strings"

	"github.com/eleven-am/vision-backend/internal/shared"
)

// JSON returns the first well-formed JSON object or array embedded in
// text, tolerating surrounding prose and markdown code fences.
func JSON(text string) (string, error) {
	stripped := strings.TrimSpace(stripCodeFence(text))
	if candidate := firstBalanced(stripped); candidate != "" {
		return candidate, nil
	}

	// The first fence may wrap prose while the JSON follows it.
	if trimmed := strings.TrimSpace(text); trimmed != stripped {
		if candidate := firstBalanced(trimmed); candidate != "" {
			return candidate, nil
		}
	}
	return "", shared.ParseError("no valid JSON found in model output")
}

// Unmarshal extracts the embedded JSON and decodes it into v.
func Unmarshal(text string, v any) error {
	raw, err := JSON(text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return shared.ParseErrorf("malformed JSON in model output: %v", err)
	}
	return nil
}

// stripCodeFence unwraps a ```json fenced block when present,
// mirroring how the model is instructed to answer.
func stripCodeFence(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		fence := strings.TrimSpace(line)
		if fence == "```json" || fence == "```" {
			body := strings.Join(lines[i+1:], "\n")
			if end := strings.Index(body, "```"); end >= 0 {
				body = body[:end]
			}
			if strings.TrimSpace(body) != "" {
				return body
			}
		}
	}
	return text
}

// firstBalanced scans for the first bracket-balanced substring that
// parses as JSON. Brackets inside string literals are ignored.
func firstBalanced(text string) string {
	for start := 0; start < len(text); start++ {
		open := text[start]
		if open != '{' && open != '[' {
			continue
		}

		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(text); i++ {
			c := text[i]
			switch {
			case escaped:
				escaped = false
			case inString:
				if c == '\\' {
					escaped = true
				} else if c == '"' {
					inString = false
				}
			case c == '"':
				inString = true
			case c == '{' || c == '[':
				depth++
			case c == '}' || c == ']':
				depth--
				if depth == 0 {
					candidate := text[start : i+1]
					if json.Valid([]byte(candidate)) {
						return candidate
					}
					i = len(text)
				}
			}
		}
	}
	return ""
}
