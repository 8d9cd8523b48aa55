package tutor

import (
	"fmt"
	"strings"

	"github.com/PTMAbellana/Polegion-sub002/internal/llm"
)

const hintSystemPrompt = `You are a patient geometry tutor helping a middle school student who is stuck on a problem.

Rules:
- Give ONE short hint (at most two sentences) that nudges the student toward the next step.
- Never reveal the final answer or complete the computation for them.
- Refer to the specific shapes, sides, or measurements in the problem.
- Use plain text. No LaTeX, no markdown, no bullet lists.
- Match the tone to a struggling student: encouraging, never condescending.`

const questionSystemPrompt = `You are a geometry question author for an adaptive learning platform.

Rules:
- Generate a single multiple-choice geometry question for the given topic, difficulty, and cognitive domain.
- Respond with a JSON object only: {"question": "...", "options": [{"label": "A", "text": "...", "isCorrect": true}, ...], "correctAnswer": "A", "hint": "..."}.
- Provide exactly 4 options labeled A, B, C, D with exactly one isCorrect set to true.
- All 4 option texts must be different from each other.
- Distractors should reflect common student mistakes (wrong formula, forgotten unit, off-by-one dimension), not random values.
- If the question involves area, perimeter, or volume, double-check the arithmetic: the correct option must equal the formula result.
- Include a short hint that points at the method without revealing the answer.
- Use plain ASCII text and metric units.`

// difficultyDescriptors expands a level into prompt guidance.
var difficultyDescriptors = map[int]string{
	1: "very easy: one-step recall of a definition or formula",
	2: "easy: direct single-formula application with small numbers",
	3: "medium: single-formula application requiring a setup step",
	4: "hard: multi-step problem combining two concepts or shapes",
	5: "very hard: multi-step problem with composite figures or unit conversions",
}

// domainDescriptors expands a cognitive domain into prompt guidance.
var domainDescriptors = map[string]string{
	"remembering":   "recall a definition, formula, or property",
	"understanding": "explain or identify a concept in a new phrasing",
	"applying":      "apply a formula to concrete measurements",
	"analyzing":     "break a composite figure or multi-step problem apart",
	"evaluating":    "judge which approach or claim is correct",
	"creating":      "construct or complete a figure or expression",
}

// buildHintMessage constructs the user message for hint generation.
func buildHintMessage(req HintRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	fmt.Fprintf(&b, "Question: %s\n", req.QuestionText)
	fmt.Fprintf(&b, "Difficulty: %d of 5\n", req.Difficulty)
	fmt.Fprintf(&b, "Wrong attempts in a row: %d\n", req.WrongStreak)

	switch req.Representation {
	case RepresentationVisual:
		b.WriteString("The question shows a figure. Point the student at what to look for in it.\n")
	case RepresentationRealWorld:
		b.WriteString("The question is a real-world scenario. Help the student connect it to the right formula.\n")
	default:
		b.WriteString("The question is plain text. Help the student find the given values.\n")
	}

	if req.WrongStreak >= 3 {
		b.WriteString("The student is getting frustrated. Make the hint more concrete than usual.\n")
	}

	return b.String()
}

// buildQuestionMessage constructs the user message for question
// generation.
func buildQuestionMessage(req QuestionRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if len(req.TopicFilter) > 0 {
		fmt.Fprintf(&b, "Focus subtopics: %s\n", strings.Join(req.TopicFilter, ", "))
	}

	desc, ok := difficultyDescriptors[req.Difficulty]
	if !ok {
		desc = difficultyDescriptors[3]
	}
	fmt.Fprintf(&b, "Difficulty: %d (%s)\n", req.Difficulty, desc)

	if d, ok := domainDescriptors[strings.ToLower(req.Domain)]; ok {
		fmt.Fprintf(&b, "Cognitive domain: %s (%s)\n", req.Domain, d)
	} else if req.Domain != "" {
		fmt.Fprintf(&b, "Cognitive domain: %s\n", req.Domain)
	}

	if len(req.AvoidIDs) > 0 {
		fmt.Fprintf(&b, "Do not repeat questions with these identifiers: %s\n", strings.Join(req.AvoidIDs, ", "))
	}

	return b.String()
}

// QuestionSchema defines the JSON schema for question generation
// responses. Providers with native structured output enforce it at
// generation time; the layered parser handles the rest.
var QuestionSchema = &llm.Schema{
	Name:        "geometry-question",
	Description: "A single multiple-choice geometry question with four options and a hint",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the student, plain ASCII text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label": map[string]any{
							"type": "string",
							"enum": []any{"A", "B", "C", "D"},
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The option text, distinct from every other option",
						},
						"isCorrect": map[string]any{
							"type": "boolean",
						},
					},
					"required":             []any{"label", "text", "isCorrect"},
					"additionalProperties": false,
				},
				"description": "Exactly 4 options, exactly one with isCorrect true",
			},
			"correctAnswer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The label of the correct option",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short hint pointing at the method, not the answer",
			},
		},
		"required":             []any{"question", "options", "correctAnswer", "hint"},
		"additionalProperties": false,
	},
}
