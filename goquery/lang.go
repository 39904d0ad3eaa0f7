package goquery

import (
	"unicode/utf8"

	"github.com/RadhiFadlillah/whatlanggo"
)

// Detection needs enough text to be meaningful and a confident result.
const (
	minDetectLength     = 50
	minDetectConfidence = 0.8
)

// DetectLanguage guesses the ISO 639-1 language of text. It returns "" when
// the text is short or the guess is not confident.
func DetectLanguage(text string) string {
	if utf8.RuneCountInString(text) < minDetectLength {
		return ""
	}
	info := whatlanggo.Detect(text)
	if info.Confidence < minDetectConfidence {
		return ""
	}
	return info.Lang.Iso6391()
}
