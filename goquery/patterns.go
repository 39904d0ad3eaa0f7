package goquery

import "regexp"

var (
	// unlikelyRe marks class/id values of nodes that are skipped as scoring
	// seeds unless they also match maybeRe.
	unlikelyRe = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	maybeRe    = regexp.MustCompile(`(?i)and|article|body|column|content|main|mathjax|shadow`)

	positiveRe = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	negativeRe = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|footer|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|widget`)

	// noiseRe matches whole class/id tokens of residual noise inside the
	// selected content.
	noiseRe = regexp.MustCompile(`(?i)(^|[\s_-])(ads?|adv|advert|advertisement|banner|breadcrumbs?|comments?|disqus|footer|gdpr|menu|nav|navbar|newsletter|outbrain|promo|related|share|sharing|shoutbox|sidebar|social|sponsor(ed)?|subscribe|taboola|widget)([\s_-]|$)`)

	bylineRe     = regexp.MustCompile(`(?i)byline|author|dateline|writtenby|p-author`)
	videosRe     = regexp.MustCompile(`(?i)//(www\.)?((dailymotion|youtube|youtube-nocookie|player\.vimeo|v\.qq|bilibili|live\.bilibili)\.com|(archive|upload\.wikimedia)\.org|player\.twitch\.tv)`)
	commasRe     = regexp.MustCompile(`[\x{002C}\x{060C}\x{FE50}\x{FE10}\x{FE11}\x{2E41}\x{2E34}\x{2E32}\x{FF0C}]`)
	sentenceRe   = regexp.MustCompile(`\.( |$)`)
	adWordsRe    = regexp.MustCompile(`(?i)^(ad(vertising|vertisement)?|pub(licité)?|werb(ung)?|广告|Реклама|Anuncio)$`)
	loadingRe    = regexp.MustCompile(`(?i)^((loading|正在加载|Загрузка|chargement|cargando)(…|\.\.\.)?)$`)
	articleLDRe  = regexp.MustCompile(`^(Article|AdvertiserContentArticle|NewsArticle|AnalysisNewsArticle|AskPublicNewsArticle|BackgroundNewsArticle|OpinionNewsArticle|ReportageNewsArticle|ReviewNewsArticle|Report|SatiricalArticle|ScholarlyArticle|MedicalScholarlyArticle|SocialMediaPosting|BlogPosting|LiveBlogPosting|DiscussionForumPosting|TechArticle|APIReference)$`)
	hatnoteRe    = regexp.MustCompile(`(?i)hatnote|navigation|navbox|breadcrumb|menu|caption|byline|dateline|copyright|disclaimer|notice|meta`)
	sidebarRe    = regexp.MustCompile(`(?i)sidebar|related|recommend|widget|comment|footer|promo`)
	dateLikeRe   = regexp.MustCompile(`^[\d\s\-/.:,]+$`)
	bylinePrefix = regexp.MustCompile(`(?i)^by[\s:]+`)
)

// unlikelyRoles are ARIA roles of nodes that never hold article content.
var unlikelyRoles = map[string]bool{
	"menu":          true,
	"menubar":       true,
	"complementary": true,
	"navigation":    true,
	"alert":         true,
	"alertdialog":   true,
	"dialog":        true,
}

// blockTags are elements that stop a div from acting as a paragraph.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "details": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
	"hr": true, "img": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"ul": true,
}

// phrasingTags are inline elements that may live inside a paragraph.
var phrasingTags = map[string]bool{
	"abbr": true, "audio": true, "b": true, "bdo": true, "br": true,
	"button": true, "cite": true, "code": true, "data": true,
	"datalist": true, "dfn": true, "em": true, "embed": true, "i": true,
	"img": true, "input": true, "kbd": true, "label": true, "mark": true,
	"math": true, "meter": true, "noscript": true, "object": true,
	"output": true, "progress": true, "q": true, "ruby": true,
	"samp": true, "select": true, "small": true, "span": true,
	"strong": true, "sub": true, "sup": true, "textarea": true,
	"time": true, "var": true, "wbr": true, "u": true, "s": true,
	"font": true,
}

// mediaTags are never treated as empty.
var mediaTags = map[string]bool{
	"img": true, "picture": true, "video": true, "audio": true,
	"iframe": true, "embed": true, "object": true, "svg": true,
	"canvas": true, "math": true, "source": true,
}

// junkTags are removed from the selected content unconditionally.
var junkTags = map[string]bool{
	"nav": true, "aside": true, "footer": true, "form": true,
	"fieldset": true, "button": true, "input": true, "select": true,
	"textarea": true, "link": true, "meta": true,
}

// presentationalAttrs are stripped from every content element.
var presentationalAttrs = []string{
	"align", "background", "bgcolor", "border", "cellpadding",
	"cellspacing", "frame", "hspace", "rules", "style", "valign", "vspace",
}

// sizedTags lose their deprecated width and height attributes.
var sizedTags = map[string]bool{
	"table": true, "th": true, "td": true, "hr": true, "pre": true,
}
