package readable

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Heading is one entry of an article outline.
type Heading struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	fencedCodeRe = regexp.MustCompile("(?s)```.*?```")
	atxHeadingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+?)\s*#*\s*$`)
)

// Outline returns the ATX headings of a Markdown rendering of an article.
// Headings inside fenced code are ignored. Anchors are slugs made unique
// with numeric suffixes.
func Outline(markdown string) []Heading {
	matches := atxHeadingRe.FindAllStringSubmatch(fencedCodeRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	headings := make([]Heading, 0, len(matches))
	seen := make(map[string]int)
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		anchor := slugify(title)
		if n, ok := seen[anchor]; ok {
			seen[anchor] = n + 1
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		headings = append(headings, Heading{Level: len(m[1]), Title: title, Anchor: anchor})
	}
	return headings
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case (unicode.IsSpace(r) || r == '-') && !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
