package tutor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The parser is an ordered list of recovery strategies over the raw
// provider text. Each stage returns an optional result; the first
// success wins. Provider responses are usually clean JSON (stage one),
// but models occasionally wrap JSON in prose or emit slightly broken
// structures, which the later stages recover.

type parseStage struct {
	name  string
	parse func(string) (*GeneratedQuestion, error)
}

var questionStages = []parseStage{
	{"direct-json", parseDirectJSON},
	{"brace-extract", parseBraceExtract},
	{"field-extract", parseFieldExtract},
}

// ParseQuestion runs the recovery chain over the raw response text. It
// returns the parsed question, the name of the stage that succeeded,
// or an error when every stage fails.
func ParseQuestion(raw string) (*GeneratedQuestion, string, error) {
	text := stripFences(raw)

	var lastErr error
	for _, stage := range questionStages {
		q, err := stage.parse(text)
		if err == nil {
			return q, stage.name, nil
		}
		lastErr = err
	}
	return nil, "", fmt.Errorf("all parse stages failed: %w", lastErr)
}

// ParseHint extracts hint text from a raw response. Hints are requested
// as plain text, but some models answer with a JSON object anyway.
func ParseHint(raw string) string {
	text := strings.TrimSpace(stripFences(raw))

	if strings.HasPrefix(text, "{") {
		var obj struct {
			Hint string `json:"hint"`
		}
		if err := json.Unmarshal([]byte(text), &obj); err == nil && obj.Hint != "" {
			return strings.TrimSpace(obj.Hint)
		}
	}
	return strings.Trim(text, `" `)
}

// stripFences removes markdown code-fence wrappers from the text.
func stripFences(s string) string {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func parseDirectJSON(text string) (*GeneratedQuestion, error) {
	var q GeneratedQuestion
	if err := json.Unmarshal([]byte(text), &q); err != nil {
		return nil, err
	}
	if err := requireFields(&q); err != nil {
		return nil, err
	}
	return &q, nil
}

// parseBraceExtract parses the substring between the first '{' and the
// last '}', recovering JSON wrapped in prose.
func parseBraceExtract(text string) (*GeneratedQuestion, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found")
	}
	return parseDirectJSON(text[start : end+1])
}

// Targeted field patterns for the last-resort extraction stage.
var (
	questionRe = regexp.MustCompile(`"question"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	correctRe  = regexp.MustCompile(`"correctAnswer"\s*:\s*"([A-Da-d])"`)
	hintRe     = regexp.MustCompile(`"hint"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	optionRe   = regexp.MustCompile(`"label"\s*:\s*"([A-Da-d])"\s*,\s*"text"\s*:\s*"((?:[^"\\]|\\.)*)"\s*,\s*"isCorrect"\s*:\s*(true|false)`)
)

// parseFieldExtract pulls each expected field out of the raw text with
// targeted patterns. This recovers responses whose JSON is structurally
// broken (truncated, stray commas) but whose fields survive.
func parseFieldExtract(text string) (*GeneratedQuestion, error) {
	qm := questionRe.FindStringSubmatch(text)
	if qm == nil {
		return nil, fmt.Errorf("question field not found")
	}

	q := &GeneratedQuestion{Question: unescape(qm[1])}

	for _, m := range optionRe.FindAllStringSubmatch(text, -1) {
		q.Options = append(q.Options, Option{
			Label:   strings.ToUpper(m[1]),
			Text:    unescape(m[2]),
			Correct: m[3] == "true",
		})
	}
	if len(q.Options) == 0 {
		return nil, fmt.Errorf("no options found")
	}

	if cm := correctRe.FindStringSubmatch(text); cm != nil {
		q.CorrectAnswer = strings.ToUpper(cm[1])
	}
	if hm := hintRe.FindStringSubmatch(text); hm != nil {
		q.Hint = unescape(hm[1])
	}

	if err := requireFields(q); err != nil {
		return nil, err
	}
	return q, nil
}

// requireFields rejects questions missing the fields every later stage
// depends on. Structural rules (option count, correctness flags) are
// the validators' job.
func requireFields(q *GeneratedQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) == 0 {
		return fmt.Errorf("no options present")
	}
	return nil
}

// unescape resolves JSON string escapes captured by the field patterns.
func unescape(s string) string {
	if unquoted, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return unquoted
	}
	return s
}
