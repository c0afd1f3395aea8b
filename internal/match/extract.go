package match

import (
	"regexp"

	"github.com/fredrikhm/artmatch/internal/core"
)

// articleRe matches a 6-digit article number starting with 1, bounded so a
// digit inside a longer run does not count ("1000011" holds no article
// number).
var articleRe = regexp.MustCompile(`\b1\d{5}\b`)

// ExtractArticles collects every article number occurring in the given
// pages. Pages with no text are skipped; duplicates across lines and pages
// collapse via set semantics.
func ExtractArticles(pages []core.Page) *Set {
	articles := NewSet()
	for _, page := range pages {
		for _, line := range page.Lines {
			for _, n := range articleRe.FindAllString(line, -1) {
				articles.Add(n)
			}
		}
	}
	return articles
}
