package goquery

import (
	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Minimum number of strong alternatives that must share an ancestor before
// the top candidate is promoted to it.
const minSharedCandidates = 3

// Selection is the outcome of article selection.
type Selection struct {
	// Top is the chosen container in the scored document.
	Top *html.Node

	// Score is the score the sibling thresholds were derived from.
	Score float64

	// Content is a detached container holding copies of Top and of the
	// siblings merged with it.
	Content *html.Node
}

// SelectArticle picks the best container from scored candidates and merges
// qualifying siblings into a detached copy. It returns nil when there are
// no candidates. The scored document is left unchanged.
func SelectArticle(cands *Candidates, opts readable.Options) *Selection {
	pool := cands.Top(opts.NbTopCandidates)
	if len(pool) == 0 {
		return nil
	}
	top := pool[0].Node
	score := pool[0].Score

	top = promoteSharedAncestor(top, score, pool[1:])
	top = descend(top, cands)
	if s := cands.Score(top); s > score {
		score = s
	}

	content := dom.CreateElement("div")
	dom.SetAttribute(content, "id", "readability-page-1")
	dom.SetAttribute(content, "class", "page")

	if tagName(top) == "body" || top.Parent == nil {
		for c := top.FirstChild; c != nil; c = c.NextSibling {
			content.AppendChild(dom.Clone(c, true))
		}
		return &Selection{Top: top, Score: score, Content: content}
	}

	h := opts.Heuristics
	threshold := max(h.SiblingScoreFloor, score*h.SiblingScoreRatio)
	topClass := dom.ClassName(top)
	for _, sibling := range dom.Children(top.Parent) {
		if sibling == top || shouldMergeSibling(sibling, topClass, score, threshold, cands, h) {
			content.AppendChild(dom.Clone(sibling, true))
		}
	}
	return &Selection{Top: top, Score: score, Content: content}
}

// descend moves from n to its child while exactly one child scores strictly
// higher than the current node.
func descend(n *html.Node, cands *Candidates) *html.Node {
	for {
		current := cands.Score(n)
		var better []*html.Node
		for _, c := range dom.Children(n) {
			if cand, ok := cands.Get(c); ok && cand.Score > current {
				better = append(better, c)
			}
		}
		if len(better) != 1 {
			return n
		}
		n = better[0]
	}
}

// promoteSharedAncestor moves top up to the nearest ancestor that also
// contains enough strong alternative candidates, so content split across
// several containers is kept together.
func promoteSharedAncestor(top *html.Node, score float64, alternatives []*Candidate) *html.Node {
	var strong []*html.Node
	for _, alt := range alternatives {
		if contains(top, alt.Node) || contains(alt.Node, top) {
			continue
		}
		if alt.Score >= score*0.75 {
			strong = append(strong, alt.Node)
		}
	}
	if len(strong) < minSharedCandidates {
		return top
	}
	for p := top.Parent; p != nil && !isPageRoot(p); p = p.Parent {
		shared := 0
		for _, alt := range strong {
			if contains(p, alt) {
				shared++
			}
		}
		if shared >= minSharedCandidates {
			return p
		}
	}
	return top
}

func contains(ancestor, n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

// shouldMergeSibling decides whether a sibling of the top candidate
// continues the article.
func shouldMergeSibling(sibling *html.Node, topClass string, topScore, threshold float64, cands *Candidates, h readable.Heuristics) bool {
	var bonus float64
	if topClass != "" && dom.ClassName(sibling) == topClass {
		bonus += topScore * h.SiblingScoreRatio
	}

	cand, scored := cands.Get(sibling)
	if scored && cand.Score+bonus >= threshold {
		return true
	}

	if sibling.Data != "p" {
		return keepBlockSibling(sibling, topScore, h)
	}
	text := innerText(sibling)
	length := len([]rune(text))
	if length == 0 || hasUnlikelyClass(sibling) {
		return false
	}
	density := LinkDensity(sibling)
	if length > h.ParagraphLength && density < h.ParagraphLinkDensity {
		return true
	}
	return length <= h.ParagraphLength && density == 0 && sentenceRe.MatchString(text)
}

// keepBlockSibling decides whether a block sibling that missed the score
// threshold still reads as article text. Longer blocks tolerate more links;
// lists and tables need enough items or paragraphs to count.
func keepBlockSibling(n *html.Node, topScore float64, h readable.Heuristics) bool {
	switch n.Data {
	case "div", "section", "article", "ul", "ol", "table":
	default:
		return false
	}
	if classWeight(n, readable.FlagsAll, h.ClassWeight) < -h.ClassWeight && topScore < 100 {
		return false
	}

	length := len([]rune(innerText(n)))
	density := LinkDensity(n)
	if length == 0 || density > 0.6 {
		return false
	}

	switch n.Data {
	case "ul", "ol":
		return len(dom.GetElementsByTagName(n, "li")) >= 3 && length > 80 && density < 0.4
	case "table":
		return (len(dom.GetElementsByTagName(n, "p")) >= 2 || length > 200) && density < 0.45
	default:
		return length > 400 || (length > 140 && density < 0.35)
	}
}
