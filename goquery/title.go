package goquery

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// titleSeparators are tried in order; the first one present splits the
// title into segments.
var titleSeparators = []string{" | ", " » ", " – ", " — ", " - ", " · "}

// CleanTitle strips a site name segment from a page title. A segment equal
// to siteName is dropped; without a site name match, a trailing segment
// shorter than the rest of the title is dropped.
// A colon only separates when one side equals the site name.
func CleanTitle(title, siteName string) string {
	title = strings.Join(strings.Fields(title), " ")
	siteName = strings.Join(strings.Fields(siteName), " ")
	if title == "" {
		return ""
	}

	if siteName != "" {
		if rest, ok := dropSegment(title, ": ", siteName); ok {
			return rest
		}
	}

	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}
		if siteName != "" {
			if rest, ok := dropSegment(title, sep, siteName); ok {
				return rest
			}
		}
		segments := strings.Split(title, sep)
		last := segments[len(segments)-1]
		head := strings.Join(segments[:len(segments)-1], sep)
		if runeLen(last) < runeLen(head) {
			return head
		}
		return title
	}
	return title
}

// dropSegment removes every segment of title equal to siteName.
func dropSegment(title, sep, siteName string) (string, bool) {
	segments := strings.Split(title, sep)
	if len(segments) < 2 {
		return "", false
	}
	kept := segments[:0:0]
	for _, s := range segments {
		if !strings.EqualFold(strings.TrimSpace(s), siteName) {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(segments) || len(kept) == 0 {
		return "", false
	}
	return strings.TrimSpace(strings.Join(kept, sep)), true
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// titleSimilarity returns how much of b's wording also appears in a, from 0
// to 1.
func titleSimilarity(a, b string) float64 {
	tokensA := tokenize(a)
	tokensB := tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}
	inA := make(map[string]bool, len(tokensA))
	for _, t := range tokensA {
		inA[t] = true
	}
	var unique []string
	for _, t := range tokensB {
		if !inA[t] {
			unique = append(unique, t)
		}
	}
	distance := float64(len(strings.Join(unique, " "))) / float64(len(strings.Join(tokensB, " ")))
	return 1 - distance
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
