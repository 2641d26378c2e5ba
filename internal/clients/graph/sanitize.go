package graph

import (
	"regexp"
	"strings"
)

var autoReplyPrefix = regexp.MustCompile(`(?i)^\s*(\[auto reply\]\s*)+`)

// SanitizeMessage strips legacy "[Auto Reply]" prefixes from outgoing text.
func SanitizeMessage(text string) string {
	return strings.TrimSpace(autoReplyPrefix.ReplaceAllString(text, ""))
}
