package content

import (
	"errors"
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON pulls the first JSON object out of a raw LLM completion.
// It accepts a fenced ```json block or a bare {...} surrounded by prose.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", errors.New("empty response")
	}

	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), nil
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no JSON object found in response")
	}
	return strings.TrimSpace(text[start : end+1]), nil
}
