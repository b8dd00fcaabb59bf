package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jovalie/political-forecast/internal/types"
)

// RowStrategy extracts candidates from elements with row/table semantics.
// This is the richest strategy: a qualifying row yields volume, recency,
// growth, and breakdown fields alongside the title.
type RowStrategy struct{}

// NewRowStrategy creates the structured-row strategy.
func NewRowStrategy() *RowStrategy {
	return &RowStrategy{}
}

// Name implements Strategy.
func (s *RowStrategy) Name() string { return "rows" }

// Extract implements Strategy. A row qualifies only when it has at least
// three cell-like children and at least one cell carries a volume token.
func (s *RowStrategy) Extract(content *types.PageContent) ([]types.RawCandidate, error) {
	doc, err := content.Document()
	if err != nil {
		return nil, &types.ExtractError{Strategy: s.Name(), Region: content.Region.Code, Err: err}
	}

	var candidates []types.RawCandidate

	doc.Find(`tr, [role="row"]`).Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row)
		if len(cells) < 3 {
			return
		}

		rowText := strings.TrimSpace(row.Text())
		if !hasVolumeToken(cells) {
			return
		}

		// Locations ordered richest first: individual cells, the whole row,
		// then aria-labels on descendants. The page's anonymous class-free
		// markup moves fields between these locations across sessions.
		locations := append([]string{}, cells...)
		locations = append(locations, rowText)
		locations = append(locations, ariaLabels(row)...)

		title := titleBeforeNumbers(rowText)
		if title == "" && len(cells) > 0 {
			title = titleBeforeNumbers(cells[0])
		}

		candidates = append(candidates, types.RawCandidate{
			Title:        strings.TrimSpace(title),
			SearchVolume: extractField(volumeAttempts, locations),
			Started:      extractField(startedAttempts, locations),
			Percentage:   unknownToEmpty(extractField(percentAttempts, locations)),
			Breakdown:    unknownToEmpty(extractField(breakdownAttempts, locations)),
			SourceLink:   firstTrendLink(row),
		})
	})

	return candidates, nil
}

// rowCells returns the trimmed text of each cell-like child of a row.
func rowCells(row *goquery.Selection) []string {
	cells := row.Find(`td, th, [role="cell"], [role="gridcell"]`)
	if cells.Length() == 0 {
		cells = row.Children()
	}

	var texts []string
	cells.Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}

// hasVolumeToken reports whether any cell carries a volume pattern.
// Bare years never qualify.
func hasVolumeToken(cells []string) bool {
	for _, cell := range cells {
		if extractField(volumeAttempts, []string{cell}) != types.FieldUnknown {
			return true
		}
	}
	return false
}

// ariaLabels collects aria-label attributes from a row's descendants.
func ariaLabels(row *goquery.Selection) []string {
	var labels []string
	row.Find(`[aria-label]`).Each(func(_ int, sel *goquery.Selection) {
		if label, ok := sel.Attr("aria-label"); ok && label != "" {
			labels = append(labels, label)
		}
	})
	return labels
}

// firstTrendLink returns the first anchor href inside a selection.
func firstTrendLink(sel *goquery.Selection) string {
	href, _ := sel.Find("a[href]").First().Attr("href")
	return href
}

func unknownToEmpty(v string) string {
	if v == types.FieldUnknown {
		return ""
	}
	return v
}
