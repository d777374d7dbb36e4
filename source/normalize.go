package source

import (
	"net/url"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

var (
	htmlTagRe        = regexp.MustCompile(`(?is)<[^>]+>`)
	excessiveLinesRe = regexp.MustCompile(`\n{3,}`)
)

// Normalizer reduces document content to plain text so the keyword and
// co-occurrence strategies scan prose, not markup.
type Normalizer struct {
	converter *md.Converter
}

// NewNormalizer creates a content normalizer.
func NewNormalizer() *Normalizer {
	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())

	return &Normalizer{converter: converter}
}

// Normalize returns the document's text with markup stripped. Plain-text
// content passes through unchanged. HTML goes through readability extraction
// first, falling back to a markdown conversion when readability finds no
// article body.
func (n *Normalizer) Normalize(doc *Document) string {
	text := doc.Text()
	if text == "" {
		return ""
	}
	if !looksLikeHTML(text) {
		return text
	}

	base, _ := url.Parse("https://semstore.local/" + url.PathEscape(doc.ID))
	article, err := readability.FromReader(strings.NewReader(text), base)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return collapseWhitespace(article.TextContent)
	}

	markdown, err := n.converter.ConvertString(text)
	if err == nil && strings.TrimSpace(markdown) != "" {
		return collapseWhitespace(markdown)
	}

	// Last resort: strip tags in place.
	return collapseWhitespace(htmlTagRe.ReplaceAllString(text, " "))
}

// looksLikeHTML reports whether the content parses to HTML element nodes
// beyond the implicit html/head/body wrappers.
func looksLikeHTML(content string) bool {
	if !strings.Contains(content, "<") {
		return false
	}

	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return false
	}

	found := false
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if found {
			return
		}
		if node.Type == html.ElementNode {
			switch node.Data {
			case "html", "head", "body":
				// Implicit wrappers; not evidence of markup.
			default:
				found = true
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

// collapseWhitespace trims lines and squeezes blank-line runs.
func collapseWhitespace(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	content = strings.Join(lines, "\n")
	content = excessiveLinesRe.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
