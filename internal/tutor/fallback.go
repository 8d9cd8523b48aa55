package tutor

import "strings"

// RuleHint builds the template hint used whenever the AI path is
// ineligible or unavailable. It combines a representation-specific
// nudge with a formula reminder derived from the topic.
func RuleHint(req HintRequest) string {
	var parts []string

	switch req.Representation {
	case RepresentationVisual:
		parts = append(parts, "Look at the figure again and find the sides or angles that are labeled.")
	case RepresentationRealWorld:
		parts = append(parts, "Picture the object in real life and ask which measurement the question needs.")
	default:
		parts = append(parts, "Re-read the problem and underline every measurement you are given.")
	}

	if reminder := topicReminder(req.Topic); reminder != "" {
		parts = append(parts, reminder)
	}

	if req.WrongStreak >= 3 {
		parts = append(parts, "Take your time with this one step by step.")
	}

	return strings.Join(parts, " ")
}

// topicReminder maps topic keywords to a one-line formula nudge.
func topicReminder(topic string) string {
	lower := strings.ToLower(topic)
	switch {
	case strings.Contains(lower, "perimeter"):
		return "Perimeter is the distance all the way around, so add up every side."
	case strings.Contains(lower, "volume"):
		return "Volume fills a solid: multiply the dimensions your formula asks for."
	case strings.Contains(lower, "area"):
		return "Area covers the inside of a shape. Which formula fits this shape?"
	case strings.Contains(lower, "angle"):
		return "Remember what the angles of this shape must add up to."
	}
	return ""
}
