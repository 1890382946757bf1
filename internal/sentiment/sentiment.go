// Package sentiment tags free text with a coarse sentiment label using
// fixed keyword lists. It is a deliberate placeholder for a real model.
package sentiment

import "strings"

// Label is one of the three sentiment classes.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

var (
	positiveWords = []string{"great", "good", "love", "awesome", "thanks", "cool", "nice"}
	negativeWords = []string{"bad", "hate", "terrible", "awful", "angry", "sad", "upset"}
)

// Classify maps text to a Label by case-insensitive substring match.
// Text matching only positive keywords is positive, only negative keywords
// negative; anything else, including a conflict between the two sets,
// resolves to neutral.
func Classify(text string) Label {
	t := strings.ToLower(text)

	pos := containsAny(t, positiveWords)
	neg := containsAny(t, negativeWords)

	switch {
	case pos && !neg:
		return Positive
	case neg && !pos:
		return Negative
	default:
		return Neutral
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
