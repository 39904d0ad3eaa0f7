package goquery

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// CleanConfig configures a cleaning run.
type CleanConfig struct {
	Flags   readable.Flags
	Options readable.Options

	// Title is the article title. Headings repeating it are removed.
	Title string

	// Logger receives debug records of removals. Nil discards them.
	Logger *slog.Logger
}

// Clean prunes the selected content under root in place and returns the
// number of mutations made. Passes repeat until one makes no change, so
// cleaning an already cleaned tree returns 0. Root itself is never removed
// or renamed.
func Clean(root *html.Node, cfg CleanConfig) int {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	total := 0
	for pass := 1; ; pass++ {
		n := cleanPass(root, cfg)
		if n == 0 {
			return total
		}
		cfg.Logger.Debug("clean pass", "pass", pass, "mutations", n)
		total += n
	}
}

func cleanPass(root *html.Node, cfg CleanConfig) int {
	n := removeJunk(root)
	n += removeNoise(root)
	n += fixLazyImages(root)
	if cfg.Flags.Has(readable.FlagCleanConditionally) {
		n += cleanConditionally(root, cfg)
	}
	n += unwrapLayoutTables(root)
	n += removeEmpty(root)
	n += unwrapSpans(root)
	n += divsToParagraphs(root)
	n += removeTitleHeadings(root, cfg.Title)
	n += stripPresentation(root)
	if !cfg.Options.KeepClasses {
		n += stripClasses(root, &cfg.Options)
	}
	return n
}

// attached reports whether n is still under root.
func attached(root, n *html.Node) bool {
	return n != root && contains(root, n)
}

func removeJunk(root *html.Node) int {
	removed := 0
	for _, n := range elements(root) {
		if junkTags[n.Data] && attached(root, n) {
			remove(n)
			removed++
		}
	}
	return removed
}

// removeNoise drops elements whose class or id names residual noise such
// as share bars or comment threads. Elements holding half or more of the
// content are kept.
func removeNoise(root *html.Node) int {
	removed := 0
	total := textLength(root)
	for _, n := range elements(root) {
		if !noiseRe.MatchString(classAndID(n)) || !attached(root, n) {
			continue
		}
		if total > 0 && textLength(n)*2 >= total {
			continue
		}
		remove(n)
		removed++
	}
	return removed
}

// fixLazyImages promotes lazy-loading attributes to src and srcset when the
// real attribute is missing or a data: placeholder.
func fixLazyImages(root *html.Node) int {
	fixed := 0
	for _, n := range elements(root, "img", "source") {
		src := dom.GetAttribute(n, "src")
		if src == "" || strings.HasPrefix(src, "data:") {
			for _, name := range []string{"data-src", "data-original", "data-lazy-src"} {
				v := strings.TrimSpace(dom.GetAttribute(n, name))
				if v != "" && v != src && !strings.HasPrefix(v, "data:") {
					dom.SetAttribute(n, "src", v)
					fixed++
					break
				}
			}
		}
		if dom.GetAttribute(n, "srcset") == "" {
			if v := strings.TrimSpace(dom.GetAttribute(n, "data-srcset")); v != "" {
				dom.SetAttribute(n, "srcset", v)
				fixed++
			}
		}
	}
	return fixed
}

// cleanConditionally removes containers that look like boilerplate,
// innermost first.
func cleanConditionally(root *html.Node, cfg CleanConfig) int {
	nodes := elements(root, "form", "fieldset", "table", "ul", "ol", "div", "section", "aside")
	removed := 0
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if !attached(root, n) {
			continue
		}
		reason, ok := conditionalRemoval(n, cfg)
		if !ok {
			continue
		}
		cfg.Logger.Debug("removed container", "tag", n.Data, "class", dom.ClassName(n), "id", dom.ID(n), "reason", reason)
		remove(n)
		removed++
	}
	return removed
}

// conditionalRemoval decides whether a container is boilerplate and names
// the rule that matched.
func conditionalRemoval(n *html.Node, cfg CleanConfig) (string, bool) {
	if n.Data == "table" && IsDataTable(n) {
		return "", false
	}
	if hasDataTableAncestor(n) || hasAncestorTag(n, "code") {
		return "", false
	}
	for _, t := range elements(n, "table") {
		if IsDataTable(t) {
			return "", false
		}
	}

	h := cfg.Options.Heuristics
	modifier := cfg.Options.LinkDensityModifier
	weight := classWeight(n, cfg.Flags, h.ClassWeight)
	if weight < 0 {
		return "negative class weight", true
	}

	text := innerText(n)
	length := len([]rune(text))
	if length == 0 && hasMedia(n) {
		return "", false
	}
	if adWordsRe.MatchString(text) || loadingRe.MatchString(text) {
		return "placeholder text", true
	}
	if countCommas(text) >= 10 {
		return "", false
	}

	embeds := 0
	for _, e := range elements(n, "object", "embed", "iframe") {
		if isVideoEmbed(e) {
			return "", false
		}
		embeds++
	}

	isList := n.Data == "ul" || n.Data == "ol"
	p := countTags(n, "p")
	img := countTags(n, "img")
	li := countTags(n, "li") - 100
	input := countTags(n, "input")
	linkDensity := LinkDensity(n)

	var headingLength int
	for _, hd := range elements(n, "h1", "h2", "h3", "h4", "h5", "h6") {
		headingLength += textLength(hd)
	}
	var headingDensity float64
	if length > 0 {
		headingDensity = float64(headingLength) / float64(length)
	}

	switch {
	case !isList && li > p:
		return "list items outnumber paragraphs", true
	case input > p/3:
		return "too many inputs", true
	case !isList && headingDensity < 0.9 && length < 25 && (img == 0 || img > 2) && linkDensity > 0:
		return "short linked fragment", true
	case !isList && weight < 25 && linkDensity > 0.2+modifier:
		return "high link density", true
	case weight >= 25 && linkDensity > 0.5+modifier:
		return "high link density", true
	case (embeds == 1 && length < 75) || embeds > 1:
		return "embeds", true
	}
	return "", false
}

func hasDataTableAncestor(n *html.Node) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if tagName(p) == "table" && IsDataTable(p) {
			return true
		}
	}
	return false
}

func unwrapLayoutTables(root *html.Node) int {
	tables := elements(root, "table")
	unwrapped := 0
	for i := len(tables) - 1; i >= 0; i-- {
		t := tables[i]
		if !attached(root, t) || IsDataTable(t) || hasDataTableAncestor(t) {
			continue
		}
		unwrapLayoutTable(t)
		unwrapped++
	}
	return unwrapped
}

// removeEmpty drops paragraphs and headings with neither text nor media.
func removeEmpty(root *html.Node) int {
	removed := 0
	for _, n := range elements(root, "p", "h1", "h2", "h3", "h4", "h5", "h6") {
		if attached(root, n) && textLength(n) == 0 && !hasMedia(n) {
			remove(n)
			removed++
		}
	}
	return removed
}

func unwrapSpans(root *html.Node) int {
	unwrapped := 0
	for _, n := range elements(root, "span") {
		if attached(root, n) && !dom.HasAttribute(n, "id") {
			unwrap(n)
			unwrapped++
		}
	}
	return unwrapped
}

// divsToParagraphs renames divs holding only inline content to p.
func divsToParagraphs(root *html.Node) int {
	renamed := 0
	for _, n := range elements(root, "div") {
		if attached(root, n) && !hasBlockChild(n) && textLength(n) > 0 && !hasAncestorTag(n, "p") {
			rename(n, "p")
			renamed++
		}
	}
	return renamed
}

func removeTitleHeadings(root *html.Node, title string) int {
	if strings.TrimSpace(title) == "" {
		return 0
	}
	removed := 0
	for _, n := range elements(root, "h1", "h2") {
		if attached(root, n) && titleSimilarity(title, innerText(n)) > 0.75 {
			remove(n)
			removed++
		}
	}
	return removed
}

func stripPresentation(root *html.Node) int {
	stripped := 0
	for _, n := range append([]*html.Node{root}, elements(root)...) {
		for _, name := range presentationalAttrs {
			if dom.HasAttribute(n, name) {
				dom.RemoveAttribute(n, name)
				stripped++
			}
		}
		if !sizedTags[n.Data] {
			continue
		}
		for _, name := range []string{"width", "height"} {
			if dom.HasAttribute(n, name) {
				dom.RemoveAttribute(n, name)
				stripped++
			}
		}
	}
	return stripped
}

// stripClasses removes every class not in the preserve list, dropping the
// attribute when nothing is left.
func stripClasses(root *html.Node, opts *readable.Options) int {
	stripped := 0
	for _, n := range append([]*html.Node{root}, elements(root)...) {
		if !dom.HasAttribute(n, "class") {
			continue
		}
		current := dom.GetAttribute(n, "class")
		var kept []string
		for _, c := range strings.Fields(current) {
			if opts.PreservesClass(c) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			dom.RemoveAttribute(n, "class")
			stripped++
			continue
		}
		if joined := strings.Join(kept, " "); joined != current {
			dom.SetAttribute(n, "class", joined)
			stripped++
		}
	}
	return stripped
}
