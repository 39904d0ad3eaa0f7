package goquery_test

import (
	"testing"

	"github.com/fwojciec/readable/goquery"
	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		siteName string
		want     string
	}{
		{"drops site name segment", "My Article | Example Site", "Example Site", "My Article"},
		{"drops leading site name", "Example Site » My Article", "Example Site", "My Article"},
		{"drops site name after colon", "Example Site: My Article", "Example Site", "My Article"},
		{"keeps colons without site name", "Why Go: A Review", "", "Why Go: A Review"},
		{"drops shorter trailing segment", "My Article Title - Blog", "", "My Article Title"},
		{"keeps shorter leading segment", "News · A much longer headline here", "", "News · A much longer headline here"},
		{"keeps longer trailing segment", "Rust vs Go - Which Systems Language Should You Learn First", "", "Rust vs Go - Which Systems Language Should You Learn First"},
		{"keeps plain titles", "Home", "", "Home"},
		{"collapses whitespace", "  spaced \n  title ", "", "spaced title"},
		{"empty", "", "Site", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.CleanTitle(tt.title, tt.siteName))
		})
	}
}
