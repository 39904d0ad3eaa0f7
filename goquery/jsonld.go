package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readable"
	"golang.org/x/net/html"
)

// ReadJSONLD returns the metadata of the first schema.org article object
// found in an application/ld+json script. Malformed scripts are skipped.
// It must run before Preprocess, which removes scripts.
func ReadJSONLD(doc *html.Node) readable.Metadata {
	var meta readable.Metadata
	goquery.NewDocumentFromNode(doc).Find("script[type]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), "application/ld+json") {
			return true
		}
		raw := strings.TrimSpace(s.Text())
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "<![CDATA["), "]]>")

		var data any
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return true
		}
		obj := findArticleObject(data, false)
		if obj == nil {
			return true
		}
		meta = metadataFromLD(obj)
		return false
	})
	return meta
}

// findArticleObject walks arrays and @graph containers looking for an
// object whose @type is an article type.
func findArticleObject(data any, inGraph bool) map[string]any {
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			if obj := findArticleObject(item, inGraph); obj != nil {
				return obj
			}
		}
	case map[string]any:
		if ctx, ok := v["@context"].(string); ok && !strings.Contains(strings.ToLower(ctx), "schema.org") {
			return nil
		}
		if isArticleType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"]; ok {
			return findArticleObject(graph, true)
		}
	}
	return nil
}

func isArticleType(t any) bool {
	switch v := t.(type) {
	case string:
		return articleLDRe.MatchString(v)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && articleLDRe.MatchString(s) {
				return true
			}
		}
	}
	return false
}

func metadataFromLD(obj map[string]any) readable.Metadata {
	meta := readable.Metadata{
		Title:         firstString(ldString(obj["headline"]), ldString(obj["name"])),
		Byline:        ldNames(obj["author"]),
		Excerpt:       ldString(obj["description"]),
		Image:         ldURL(obj["image"]),
		Language:      ldString(obj["inLanguage"]),
		PublishedTime: parseTime(ldString(obj["datePublished"])),
	}
	if publisher, ok := obj["publisher"].(map[string]any); ok {
		meta.SiteName = ldString(publisher["name"])
	}
	return meta
}

func ldString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(html.UnescapeString(s))
}

// ldNames joins the names of a person, a list of people, or plain strings.
func ldNames(v any) string {
	switch a := v.(type) {
	case string:
		return ldString(a)
	case map[string]any:
		return ldString(a["name"])
	case []any:
		var names []string
		for _, item := range a {
			if name := ldNames(item); name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

// ldURL returns the first URL of an image value, which may be a string, an
// ImageObject, or a list of either.
func ldURL(v any) string {
	switch a := v.(type) {
	case string:
		return ldString(a)
	case map[string]any:
		return ldString(a["url"])
	case []any:
		for _, item := range a {
			if u := ldURL(item); u != "" {
				return u
			}
		}
	}
	return ""
}

func firstString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
