package formatting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// ErrParseFailed is returned when content holds no decodable JSON document,
// either directly or inside a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Extract returns the single JSON document carried by content. Model output
// is accepted either as bare JSON or wrapped in a markdown code fence.
func Extract(content string) ([]byte, error) {
	content = strings.TrimSpace(content)

	if content != "" && json.Valid([]byte(content)) {
		return []byte(content), nil
	}

	matches := jsonBlockRegex.FindStringSubmatch(content)
	if len(matches) >= 2 {
		cleaned := strings.TrimSpace(matches[1])
		if cleaned != "" && json.Valid([]byte(cleaned)) {
			return []byte(cleaned), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrParseFailed, truncate(content, 200))
}

// Parse extracts the JSON document from content and unmarshals it into T.
func Parse[T any](content string) (T, error) {
	var result T

	data, err := Extract(content)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	return result, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
