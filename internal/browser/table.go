package browser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseTableRows turns the outer HTML of a table into per-row cell texts.
// Only td cells count, so th-only header rows produce an empty slice.
func ParseTableRows(tableHTML string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse table HTML: %w", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("no table element in extracted HTML")
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// Skip rows that belong to a nested table.
		if tr.ParentsFiltered("table").First().Get(0) != table.Get(0) {
			return
		}
		cells := []string{}
		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, cellText(td))
		})
		rows = append(rows, cells)
	})
	return rows, nil
}

// cellText approximates rendered innerText: trimmed, inner whitespace collapsed.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
