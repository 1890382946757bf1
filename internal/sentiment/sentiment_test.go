package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive keyword", "this is awesome", Positive},
		{"negative keyword", "I hate this", Negative},
		{"conflict resolves to neutral", "awesome but awful", Neutral},
		{"no keywords", "the weather is cloudy", Neutral},
		{"empty string", "", Neutral},
		{"case insensitive positive", "THANKS a lot", Positive},
		{"case insensitive negative", "this is TERRIBLE", Negative},
		{"keyword inside a word", "goodbye", Positive},
		{"multiple positives stay positive", "great, love it, nice", Positive},
		{"multiple negatives stay negative", "bad and sad and angry", Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Positive, Classify("thanks, this is cool"))
	}
}
