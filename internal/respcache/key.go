package respcache

import (
	"fmt"
	"strings"
)

// hintPrefixLen bounds how much of the question text participates in
// the hint key. Enough to distinguish questions, short enough to keep
// keys readable.
const hintPrefixLen = 30

// HintKey derives a deterministic cache key for a hint request from the
// topic, representation type, and a prefix of the question text.
func HintKey(topic, representation, questionText string) string {
	return fmt.Sprintf("hint:%s:%s:%s",
		normalize(topic), normalize(representation), normalize(prefix(questionText, hintPrefixLen)))
}

// QuestionKey derives a stable cache key for question generation from
// topic, difficulty, and cognitive domain. The key intentionally
// excludes any per-call token so equivalent requests actually share
// cached questions.
func QuestionKey(topic string, difficulty int, domain string) string {
	return fmt.Sprintf("question:%s:%d:%s", normalize(topic), difficulty, normalize(domain))
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
