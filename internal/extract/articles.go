package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jovalie/political-forecast/internal/types"
)

// ArticleStrategy extracts candidates from semantically tagged content
// blocks: an <article> with a heading and a link inside it. It runs when the
// page carries no row structure at all.
type ArticleStrategy struct{}

// NewArticleStrategy creates the article-element strategy.
func NewArticleStrategy() *ArticleStrategy {
	return &ArticleStrategy{}
}

// Name implements Strategy.
func (s *ArticleStrategy) Name() string { return "articles" }

// Extract implements Strategy.
func (s *ArticleStrategy) Extract(content *types.PageContent) ([]types.RawCandidate, error) {
	doc, err := content.Document()
	if err != nil {
		return nil, &types.ExtractError{Strategy: s.Name(), Region: content.Region.Code, Err: err}
	}

	var candidates []types.RawCandidate

	doc.Find("article").Each(func(_ int, article *goquery.Selection) {
		heading := article.Find("h1, h2, h3, h4").First()
		link := article.Find("a[href]").First()
		if heading.Length() == 0 || link.Length() == 0 {
			return
		}

		title := strings.TrimSpace(heading.Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}

		text := article.Text()
		href, _ := link.Attr("href")

		candidates = append(candidates, types.RawCandidate{
			Title:        title,
			SearchVolume: extractField(volumeAttempts, []string{text}),
			Started:      extractField(startedAttempts, []string{text}),
			Percentage:   unknownToEmpty(extractField(percentAttempts, []string{text})),
			SourceLink:   href,
		})
	})

	return candidates, nil
}
