package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fredrikhm/artmatch/internal/core"
)

func pagesOf(lines ...string) []core.Page {
	return []core.Page{{Lines: lines}}
}

func TestExtractArticles(t *testing.T) {
	pages := []core.Page{
		{Lines: []string{"frame 100001 oak", "100002 100003 double"}},
		{},
		{Lines: []string{"100001 repeated on a later page"}},
	}

	articles := ExtractArticles(pages)

	assert.Equal(t, []string{"100001", "100002", "100003"}, articles.Values())
}

func TestExtractArticlesIgnoresOtherLeadingDigits(t *testing.T) {
	articles := ExtractArticles(pagesOf("frame 200001 pine", "order 999999"))

	assert.Equal(t, 0, articles.Len())
}

func TestExtractArticlesBoundedByDigitRuns(t *testing.T) {
	// 7-digit runs must not contribute an article number.
	articles := ExtractArticles(pagesOf("serial 1000011 is not an article"))

	assert.Equal(t, 0, articles.Len())
}

func TestExtractArticlesIdempotent(t *testing.T) {
	pages := pagesOf("100001 oak", "100002 pine")

	first := ExtractArticles(pages)
	second := ExtractArticles(pages)

	assert.Equal(t, first.Values(), second.Values())
}
