// Package scraper extracts readable landing page text, first from the static
// HTML and, when that is too thin, from a headless browser render.
package scraper

import (
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"adcopy/internal/domain/entity"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
)

// MinContentLength is the amount of text a selector must yield to be used.
const MinContentLength = 100

const truncationMarker = "..."

// Elements that never carry page copy.
var noiseSelectors = []string{
	"script", "style", "noscript", "iframe", "svg",
	"nav", "header", "footer",
	".ad", ".ads", ".advertisement", "[class*='advert']", "[id*='advert']",
	".cookie-banner", "[aria-hidden='true']",
}

// Content containers, most specific first.
var contentSelectors = []string{
	"main",
	"[role='main']",
	".content",
	".main-content",
	"#content",
	"#main",
	".post-content",
	".entry-content",
	"article",
	"body",
}

// Elements whose boundaries separate words even without whitespace in the markup.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "hr": true, "li": true,
	"main": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "td": true, "th": true, "tr": true, "ul": true,
	"button": true, "label": true, "option": true,
}

var whitespace = regexp.MustCompile(`\s+`)

// Extract parses an HTML document and returns its readable text. Content is
// empty when the document has no body text at all.
func Extract(r io.Reader, maxLength int, now time.Time) (*entity.PageContent, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html")
	}

	page := &entity.PageContent{
		Title:    collapse(doc.Find("title").First().Text()),
		Metadata: extractMetadata(doc, now),
	}

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	var fallback string
	for _, sel := range contentSelectors {
		text := collapse(blockText(doc.Find(sel).First()))
		if utf8.RuneCountInString(text) > MinContentLength {
			page.Content = text
			break
		}
		if fallback == "" {
			fallback = text
		}
	}
	if page.Content == "" {
		page.Content = fallback
	}

	page.Content = truncate(page.Content, maxLength)

	return page, nil
}

// blockText is Selection.Text with a space at every block element and line
// break boundary.
func blockText(sel *goquery.Selection) string {
	var sb strings.Builder

	var walk func(*goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, child *goquery.Selection) {
			switch name := goquery.NodeName(child); {
			case name == "#text":
				sb.WriteString(child.Text())
			case name == "br":
				sb.WriteByte(' ')
			case blockElements[name]:
				sb.WriteByte(' ')
				walk(child)
				sb.WriteByte(' ')
			default:
				walk(child)
			}
		})
	}
	walk(sel)

	return sb.String()
}

func extractMetadata(doc *goquery.Document, now time.Time) entity.LandingPageMetadata {
	meta := entity.LandingPageMetadata{
		Description:   metaContent(doc, `meta[name="description"]`),
		OGTitle:       metaContent(doc, `meta[property="og:title"]`),
		OGDescription: metaContent(doc, `meta[property="og:description"]`),
		Keywords:      []string{},
		ScrapedAt:     now.UTC(),
	}

	for _, keyword := range strings.Split(metaContent(doc, `meta[name="keywords"]`), ",") {
		if keyword = strings.TrimSpace(keyword); keyword != "" {
			meta.Keywords = append(meta.Keywords, keyword)
		}
	}

	return meta
}

func metaContent(doc *goquery.Document, selector string) string {
	value, _ := doc.Find(selector).First().Attr("content")

	return collapse(value)
}

func collapse(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// truncate cuts s to maxLength runes and appends the marker when it did.
func truncate(s string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(s) <= maxLength {
		return s
	}

	runes := []rune(s)

	return string(runes[:maxLength]) + truncationMarker
}
