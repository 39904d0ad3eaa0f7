package readable

import (
	"strings"
	"time"
)

// Article is the result of a successful extraction.
type Article struct {
	Title         string     `json:"title"`
	Byline        string     `json:"byline,omitempty"`
	Content       string     `json:"content"`
	TextContent   string     `json:"textContent"`
	Length        int        `json:"length"`
	Excerpt       string     `json:"excerpt,omitempty"`
	SiteName      string     `json:"siteName,omitempty"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
	Language      string     `json:"language,omitempty"`
	Direction     string     `json:"direction,omitempty"`
	Image         string     `json:"image,omitempty"`
	Favicon       string     `json:"favicon,omitempty"`
}

// Metadata is the record filled by the metadata priority chain. Empty
// strings and a nil PublishedTime mean the field is unset.
type Metadata struct {
	Title         string
	Byline        string
	Excerpt       string
	SiteName      string
	PublishedTime *time.Time
	Language      string
	Direction     string
	Image         string
	Favicon       string
}

// Merge fills every unset field of m from other. Fields already set are
// never overwritten, so merging sources from highest to lowest priority
// yields the priority chain.
func (m *Metadata) Merge(other Metadata) {
	setOnce(&m.Title, other.Title)
	setOnce(&m.Byline, other.Byline)
	setOnce(&m.Excerpt, other.Excerpt)
	setOnce(&m.SiteName, other.SiteName)
	setOnce(&m.Language, other.Language)
	setOnce(&m.Direction, other.Direction)
	setOnce(&m.Image, other.Image)
	setOnce(&m.Favicon, other.Favicon)
	if m.PublishedTime == nil && other.PublishedTime != nil {
		t := *other.PublishedTime
		m.PublishedTime = &t
	}
}

func setOnce(dst *string, value string) {
	if *dst != "" {
		return
	}
	*dst = strings.TrimSpace(value)
}
