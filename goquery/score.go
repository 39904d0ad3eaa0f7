package goquery

import (
	"sort"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Candidate is a node considered as the article container.
type Candidate struct {
	Node *html.Node

	// Score is the final content score after the link density penalty.
	Score float64

	// Base is the tag and class/id weight the candidate started from.
	Base float64

	depth    int
	position int
}

// Candidates holds the candidates of one scoring pass, keyed by node.
type Candidates struct {
	byNode map[*html.Node]*Candidate
	ranked []*Candidate
}

// Len returns the number of candidates.
func (c *Candidates) Len() int {
	return len(c.ranked)
}

// Get returns the candidate for n.
func (c *Candidates) Get(n *html.Node) (*Candidate, bool) {
	cand, ok := c.byNode[n]
	return cand, ok
}

// Score returns the score of n, or 0 when n is not a candidate.
func (c *Candidates) Score(n *html.Node) float64 {
	if cand, ok := c.byNode[n]; ok {
		return cand.Score
	}
	return 0
}

// Top returns up to n candidates ordered by score, then by shallower depth,
// then by document position.
func (c *Candidates) Top(n int) []*Candidate {
	if n > len(c.ranked) {
		n = len(c.ranked)
	}
	return c.ranked[:n]
}

// ScoreCandidates scores every seed of a preprocessed document and
// propagates seed scores to the seed's parent in full and to its
// grandparent divided by the grandparent divisor. It does not modify doc.
func ScoreCandidates(doc *html.Node, flags readable.Flags, opts readable.Options) *Candidates {
	h := opts.Heuristics
	cands := &Candidates{byNode: make(map[*html.Node]*Candidate)}

	position := make(map[*html.Node]int)
	var seeds []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			position[c] = len(position)
			if flags.Has(readable.FlagStripUnlikelys) && isUnlikelyCandidate(c) {
				continue
			}
			if isSeed(c) {
				seeds = append(seeds, c)
			}
			walk(c)
		}
	}
	walk(doc)

	ensure := func(n *html.Node) *Candidate {
		if cand, ok := cands.byNode[n]; ok {
			return cand
		}
		base := tagWeight(n) + classWeight(n, flags, h.ClassWeight)
		cand := &Candidate{Node: n, Score: base, Base: base, depth: depth(n), position: position[n]}
		cands.byNode[n] = cand
		return cand
	}

	for _, seed := range seeds {
		text := innerText(seed)
		length := len([]rune(text))
		if length < h.MinSeedLength {
			continue
		}
		score := 1 + float64(countCommas(text)) + float64(min(length/h.LengthBonusStep, h.LengthBonusCap))

		ensure(seed).Score += score
		parent := seed.Parent
		if parent == nil || parent.Type != html.ElementNode || isDetachedRoot(parent) {
			continue
		}
		ensure(parent).Score += score
		grandparent := parent.Parent
		if grandparent == nil || grandparent.Type != html.ElementNode || isDetachedRoot(grandparent) {
			continue
		}
		ensure(grandparent).Score += score / h.GrandparentDivisor
	}

	for _, cand := range cands.byNode {
		cand.Score = applyLinkDensity(cand.Score, LinkDensity(cand.Node), opts.LinkDensityModifier)
		cands.ranked = append(cands.ranked, cand)
	}
	sort.Slice(cands.ranked, func(i, j int) bool {
		a, b := cands.ranked[i], cands.ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.depth != b.depth {
			return a.depth < b.depth
		}
		return a.position < b.position
	})
	return cands
}

// applyLinkDensity scales a positive score by (1 - linkDensity + modifier),
// clamped to [0, 1]. Negative scores are left alone so that more links
// never raise a score.
func applyLinkDensity(score, linkDensity, modifier float64) float64 {
	if score <= 0 {
		return score
	}
	factor := 1 - linkDensity + modifier
	factor = max(0, min(1, factor))
	return score * factor
}

// isSeed reports whether n is a scoring seed: p, td, pre, or a div or
// section acting as a paragraph.
func isSeed(n *html.Node) bool {
	switch n.Data {
	case "p", "td", "pre":
		return true
	case "div", "section":
		return !hasBlockChild(n)
	}
	return false
}

// isUnlikelyCandidate reports whether n and its subtree are skipped as
// seeds while unlikely candidates are stripped.
func isUnlikelyCandidate(n *html.Node) bool {
	switch n.Data {
	case "body", "html", "a":
		return false
	}
	if unlikelyRoles[dom.GetAttribute(n, "role")] {
		return true
	}
	if !hasUnlikelyClass(n) {
		return false
	}
	return !hasAncestorTag(n, "table") && !hasAncestorTag(n, "code")
}

// hasUnlikelyClass reports whether n's class or id names boilerplate
// without also naming content.
func hasUnlikelyClass(n *html.Node) bool {
	match := classAndID(n)
	if strings.TrimSpace(match) == "" {
		return false
	}
	return unlikelyRe.MatchString(match) && !maybeRe.MatchString(match)
}

// tagWeight is the base weight of a candidate's own tag.
func tagWeight(n *html.Node) float64 {
	switch n.Data {
	case "article", "section":
		return 8
	case "div":
		if hasBlockChild(n) {
			return 2
		}
		return 5
	case "pre", "td", "blockquote":
		return 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form", "table":
		return -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		return -5
	}
	return 0
}

// classWeight adds weight for positive class/id matches and subtracts it
// for negative ones. When class weighting is relaxed only the penalties are
// dropped, so relaxing never lowers a score.
func classWeight(n *html.Node, flags readable.Flags, weight float64) float64 {
	var w float64
	for _, v := range []string{dom.ClassName(n), dom.ID(n)} {
		if v == "" {
			continue
		}
		if negativeRe.MatchString(v) {
			w -= weight
		}
		if positiveRe.MatchString(v) {
			w += weight
		}
	}
	if !flags.Has(readable.FlagWeightClasses) {
		return max(0, w)
	}
	return w
}
