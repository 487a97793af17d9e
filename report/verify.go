package report

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Verify parses a rendered report and confirms it is well-formed HTML
// containing exactly one <table> element. The pipeline runs it before a
// report is persisted so a malformed document is never stored.
func Verify(report string) error {
	doc, err := html.Parse(strings.NewReader(report))
	if err != nil {
		return fmt.Errorf("rendered report is not parseable HTML: %w", err)
	}

	count := countTables(doc)
	if count != 1 {
		return fmt.Errorf("rendered report contains %d tables, expected exactly 1", count)
	}
	return nil
}

func countTables(n *html.Node) int {
	count := 0
	if n.Type == html.ElementNode && n.Data == "table" {
		count++
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		count += countTables(c)
	}
	return count
}
