package goquery

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Ensure Parser implements readable.Extractor at compile time.
var _ readable.Extractor = (*Parser)(nil)

// Parser extracts articles from HTML documents. A Parser holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	opts   readable.Options
	logger *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithOptions replaces the default extraction options.
func WithOptions(opts readable.Options) ParserOption {
	return func(p *Parser) {
		p.opts = opts
	}
}

// WithLogger sets the logger that receives debug records when
// Options.Debug is enabled.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser with default options.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		opts:   readable.DefaultOptions(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract parses rawHTML and extracts its article. pageURL is used to
// resolve relative links and may be empty.
func (p *Parser) Extract(rawHTML, pageURL string) (*readable.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "failed to parse HTML: %v", err)
	}
	return p.Parse(doc, pageURL)
}

// Parse extracts the article of an already parsed document. The document is
// modified in place. Parse fails with EINVALID for a document without a
// body, EINVALIDURL for a malformed pageURL and ENOCONTENT when no attempt
// yields enough text.
func (p *Parser) Parse(doc *html.Node, pageURL string) (*readable.Article, error) {
	if err := p.opts.Validate(); err != nil {
		return nil, err
	}
	if doc == nil || findFirst(doc, "body") == nil {
		return nil, readable.Errorf(readable.EINVALID, "document has no body element")
	}
	base, err := ParseBaseURL(pageURL)
	if err != nil {
		return nil, err
	}

	var jsonLD readable.Metadata
	if !p.opts.DisableJSONLD {
		jsonLD = ReadJSONLD(doc)
	}
	if err := Preprocess(doc); err != nil {
		return nil, err
	}
	meta := ExtractMetadata(doc, jsonLD, p.opts.Heuristics)

	sel, err := p.selectContent(doc, meta.Title)
	if err != nil {
		return nil, err
	}
	ResolveURLs(sel.Content, base)

	text := TextContent(sel.Content)
	article := &readable.Article{
		Title:         meta.Title,
		Byline:        meta.Byline,
		Content:       dom.OuterHTML(sel.Content),
		TextContent:   text,
		Length:        utf8.RuneCountInString(text),
		Excerpt:       meta.Excerpt,
		SiteName:      meta.SiteName,
		PublishedTime: meta.PublishedTime,
		Language:      meta.Language,
		Direction:     direction(sel.Top, meta.Direction),
		Image:         ResolveURL(base, meta.Image),
		Favicon:       ResolveURL(base, meta.Favicon),
	}
	if article.Excerpt == "" {
		article.Excerpt = findExcerpt(sel.Content, p.opts.Heuristics.ExcerptMinLength)
	}
	if article.Language == "" {
		article.Language = DetectLanguage(text)
	}
	return article, nil
}

// selectContent runs the retry loop. Each attempt scores the document,
// selects and cleans a copy of the best container, and is accepted once
// its text reaches the char threshold. Failed attempts relax one flag and
// try again until no flag is left.
func (p *Parser) selectContent(doc *html.Node, title string) (*Selection, error) {
	flags := readable.FlagsAll
	for attempt := 1; ; attempt++ {
		cands := ScoreCandidates(doc, flags, p.opts)
		sel := SelectArticle(cands, p.opts)

		length := 0
		if sel != nil {
			Clean(sel.Content, CleanConfig{
				Flags:   flags,
				Options: p.opts,
				Title:   title,
				Logger:  p.debugLogger(),
			})
			length = utf8.RuneCountInString(TextContent(sel.Content))
		}
		p.debug("extraction attempt",
			"attempt", attempt,
			"flags", flags.String(),
			"candidates", cands.Len(),
			"top", describe(sel),
			"length", length,
		)

		if sel != nil && length >= p.opts.CharThreshold {
			return sel, nil
		}
		next, ok := flags.Relax()
		if !ok {
			return nil, readable.Errorf(readable.ENOCONTENT, "no article content found")
		}
		flags = next
	}
}

func (p *Parser) debug(msg string, args ...any) {
	if p.opts.Debug {
		p.logger.Debug(msg, args...)
	}
}

func (p *Parser) debugLogger() *slog.Logger {
	if p.opts.Debug {
		return p.logger
	}
	return nil
}

// describe names the selected container for debug output.
func describe(sel *Selection) string {
	if sel == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(sel.Top.Data)
	if id := dom.ID(sel.Top); id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range strings.Fields(dom.ClassName(sel.Top)) {
		b.WriteString("." + c)
	}
	return b.String()
}

// direction returns the dir attribute of top or its nearest ancestor
// carrying one, falling back to fallback.
func direction(top *html.Node, fallback string) string {
	for n := top; n != nil; n = n.Parent {
		if dir := normalizeDir(dom.GetAttribute(n, "dir")); dir != "" {
			return dir
		}
	}
	return fallback
}
