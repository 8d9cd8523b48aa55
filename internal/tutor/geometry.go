package tutor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Absolute tolerances for comparing the stated answer against the
// recomputed formula result. Perimeter questions use small integers, so
// the tolerance is tighter.
const (
	volumeAreaTolerance = 1.0
	perimeterTolerance  = 0.1
)

// GeometryCheckValidator independently recomputes the answer for
// recognized volume, area, and perimeter questions. Questions with no
// recognizable shape or with ambiguous dimensions pass through
// silently; the check only rejects when it can compute a result and the
// stated answer disagrees.
type GeometryCheckValidator struct{}

func (v *GeometryCheckValidator) Name() string { return "geometry-check" }

func (v *GeometryCheckValidator) Validate(q *GeneratedQuestion) *ValidationError {
	correct := q.CorrectOption()
	if correct == nil {
		// The answer-label validator runs first; nothing to check here.
		return nil
	}

	stated, ok := firstNumber(correct.Text)
	if !ok {
		// Non-numeric answer (e.g. a shape name). Not computable.
		return nil
	}

	expected, tolerance, ok := computeExpected(q.Question)
	if !ok {
		return nil
	}

	if math.Abs(stated-expected) > tolerance {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %.2f but the stated answer is %.2f", expected, stated),
		}
	}
	return nil
}

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// extractNumbers pulls every numeric dimension out of the question text
// in order of appearance.
func extractNumbers(text string) []float64 {
	matches := numberRe.FindAllString(text, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// firstNumber returns the first numeric value in a string.
func firstNumber(s string) (float64, bool) {
	m := numberRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

// computeExpected recomputes the answer from the question text when the
// measure and shape are recognizable. The bool result reports whether a
// computation was possible at all.
func computeExpected(text string) (value, tolerance float64, ok bool) {
	lower := strings.ToLower(text)
	nums := extractNumbers(text)

	switch {
	case strings.Contains(lower, "volume"):
		v, ok := computeVolume(lower, nums)
		return v, volumeAreaTolerance, ok

	case strings.Contains(lower, "perimeter"):
		v, ok := computePerimeter(lower, nums)
		return v, perimeterTolerance, ok

	case strings.Contains(lower, "area"):
		v, ok := computeArea(lower, nums)
		return v, volumeAreaTolerance, ok
	}
	return 0, 0, false
}

func computeVolume(lower string, nums []float64) (float64, bool) {
	switch {
	case strings.Contains(lower, "cube"):
		if len(nums) >= 1 {
			return nums[0] * nums[0] * nums[0], true
		}
	case strings.Contains(lower, "cylinder"):
		// Assumes radius before height; a stated diameter makes the
		// dimensions ambiguous, so skip.
		if strings.Contains(lower, "diameter") {
			return 0, false
		}
		if len(nums) >= 2 {
			return math.Pi * nums[0] * nums[0] * nums[1], true
		}
	case strings.Contains(lower, "prism"):
		if len(nums) >= 3 {
			return nums[0] * nums[1] * nums[2], true
		}
	}
	return 0, false
}

func computePerimeter(lower string, nums []float64) (float64, bool) {
	switch {
	case strings.Contains(lower, "square"):
		if len(nums) >= 1 {
			return 4 * nums[0], true
		}
	case strings.Contains(lower, "rectangle"):
		if len(nums) >= 2 {
			return 2 * (nums[0] + nums[1]), true
		}
	case strings.Contains(lower, "triangle"):
		if len(nums) >= 3 {
			return nums[0] + nums[1] + nums[2], true
		}
	}
	return 0, false
}

func computeArea(lower string, nums []float64) (float64, bool) {
	switch {
	case strings.Contains(lower, "square"):
		if len(nums) >= 1 {
			return nums[0] * nums[0], true
		}
	case strings.Contains(lower, "rectangle"):
		if len(nums) >= 2 {
			return nums[0] * nums[1], true
		}
	case strings.Contains(lower, "triangle"):
		if len(nums) >= 2 {
			return nums[0] * nums[1] / 2, true
		}
	case strings.Contains(lower, "circle"):
		if strings.Contains(lower, "diameter") {
			return 0, false
		}
		if len(nums) >= 1 {
			return math.Pi * nums[0] * nums[0], true
		}
	}
	return 0, false
}
