package types

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// PageContent is the rendered markup for one region's trending page, as
// returned by a content source after dynamic-content settling. Strategies
// consume it through the lazily parsed document accessors.
type PageContent struct {
	// Region is the geographic unit this content belongs to.
	Region Region

	// URL is the address the content was rendered from.
	URL string

	// Body is the raw HTML bytes.
	Body []byte

	// FetchDuration is how long rendering and settling took.
	FetchDuration time.Duration

	// FetchedAt is when the snapshot was taken.
	FetchedAt time.Time

	doc  *goquery.Document
	node *html.Node
}

// NewPageContent wraps a rendered HTML snapshot for a region.
func NewPageContent(region Region, url string, body []byte, duration time.Duration) *PageContent {
	return &PageContent{
		Region:        region,
		URL:           url,
		Body:          body,
		FetchDuration: duration,
		FetchedAt:     time.Now(),
	}
}

// Document returns a parsed goquery document, lazily initializing it.
func (p *PageContent) Document() (*goquery.Document, error) {
	if p.doc != nil {
		return p.doc, nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(p.Body)))
	if err != nil {
		return nil, err
	}
	p.doc = doc
	return doc, nil
}

// Node returns the parsed HTML root node for XPath queries, lazily
// initializing it.
func (p *PageContent) Node() (*html.Node, error) {
	if p.node != nil {
		return p.node, nil
	}
	node, err := html.Parse(strings.NewReader(string(p.Body)))
	if err != nil {
		return nil, err
	}
	p.node = node
	return node, nil
}
