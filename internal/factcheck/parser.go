package factcheck

import (
	"encoding/json"
	"strings"
)

// parseTier is one recovery strategy for extracting a JSON object from model
// output. Tiers are tried in order; the first candidate that unmarshals wins.
type parseTier struct {
	name      string
	candidate func(text string) (string, bool)
}

// parseTiers is the ordered fallback ladder:
//  1. the whole input as-is,
//  2. the substring between the first '{' and the last '}' (models love to
//     wrap JSON in prose or code fences),
//  3. the same substring after a minimal cleanup pass.
//
// This is a heuristic, not a grammar. The greedy outer match deliberately
// trades correctness on nested stray braces for tolerance of surrounding
// prose.
var parseTiers = []parseTier{
	{name: "direct", candidate: func(text string) (string, bool) {
		return strings.TrimSpace(text), true
	}},
	{name: "brace_extract", candidate: extractBraced},
	{name: "cleanup", candidate: func(text string) (string, bool) {
		extracted, ok := extractBraced(text)
		if !ok {
			return "", false
		}
		return cleanupJSON(extracted), true
	}},
}

// Parse coerces raw model output into a loosely-typed mapping.
// It never substitutes a default object: if every tier fails the caller gets
// a *MalformedPayloadError carrying the original text.
func Parse(text string) (map[string]any, error) {
	for _, tier := range parseTiers {
		candidate, ok := tier.candidate(text)
		if !ok || candidate == "" {
			continue
		}
		var payload map[string]any
		if err := json.Unmarshal([]byte(candidate), &payload); err == nil && payload != nil {
			// A JSON "null" unmarshals into a nil map without error;
			// that is not an object, so the tier fails.
			return payload, nil
		}
	}
	return nil, &MalformedPayloadError{Raw: text}
}

// extractBraced returns the substring from the first '{' to the last '}'
// inclusive, or false if no such span exists.
func extractBraced(text string) (string, bool) {
	start := strings.Index(text, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(text, "}")
	if end < start {
		return "", false
	}
	return text[start : end+1], true
}

// cleanupJSON applies the tier-3 repairs: escaped newlines become spaces and
// doubled quotes collapse to a single quote.
func cleanupJSON(s string) string {
	s = strings.ReplaceAll(s, `\n`, " ")
	s = strings.ReplaceAll(s, `""`, `"`)
	return s
}
