package match

import (
	"context"
	"regexp"
	"strings"

	"github.com/fredrikhm/artmatch/internal/core"
)

// Matcher searches candidate documents for lines containing article numbers.
type Matcher struct {
	reader core.DocumentReader
}

func NewMatcher(reader core.DocumentReader) *Matcher {
	return &Matcher{reader: reader}
}

// FindMatches scans the documents at paths, in the given order, for lines
// containing any article number not yet located. The first unfound number
// matched in a line records that line (trimmed) and marks the number found;
// the remaining numbers are not checked against that line. Scanning stops at
// line, page and document level as soon as every number has been found, so
// documents past that point are never opened. A document that cannot be read
// aborts the whole pass.
func (m *Matcher) FindMatches(ctx context.Context, articles *Set, paths []string) ([]string, *Set, error) {
	found := NewSet()
	var matches []string

	ordered := articles.Values()
	probes := make(map[string]*regexp.Regexp, len(ordered))
	for _, n := range ordered {
		probes[n] = regexp.MustCompile(`\b` + n + `\b`)
	}

	for _, path := range paths {
		if found.Len() == articles.Len() {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		pages, err := m.reader.ReadPages(ctx, path)
		if err != nil {
			return nil, nil, err
		}

		for _, page := range pages {
			if page.Empty() {
				continue
			}
			for _, line := range page.Lines {
				for _, n := range ordered {
					if found.Contains(n) {
						continue
					}
					if probes[n].MatchString(line) {
						matches = append(matches, strings.TrimSpace(line))
						found.Add(n)
						break
					}
				}
				if found.Len() == articles.Len() {
					break
				}
			}
			if found.Len() == articles.Len() {
				break
			}
		}
	}

	return matches, found, nil
}
