package match

import (
	"math"
	"regexp"
	"sort"
	"strconv"
)

// keyRe matches any bounded 6-digit run. The report sort key and the
// matched-number derivation use the first such run in a line, article
// prefix or not.
var keyRe = regexp.MustCompile(`\b(\d{6})\b`)

// Report is the assembled result: the lines that survived filtering, in
// ascending order of their numeric key, and the article numbers for which
// no line was retained.
type Report struct {
	Lines    []string
	NotFound []string
}

// BuildReport filters, sorts and summarizes the raw match list.
//
// A line is kept only when every article number it contains was found
// somewhere, re-derived from the line text itself; a line recorded during
// scanning can still be dropped here when it also carries a number that
// stayed unfound. Kept lines sort by the numeric value of their first
// 6-digit run, lines without one last. NotFound is everything in articles
// not backing a kept line, ascending.
func BuildReport(matches []string, articles, found *Set) Report {
	var kept []string
	for _, line := range matches {
		all := true
		for _, n := range articleRe.FindAllString(line, -1) {
			if !found.Contains(n) {
				all = false
				break
			}
		}
		if all {
			kept = append(kept, line)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return sortKey(kept[i]) < sortKey(kept[j])
	})

	matched := NewSet()
	for _, line := range kept {
		if n := keyRe.FindString(line); n != "" {
			matched.Add(n)
		}
	}

	var notFound []string
	for _, n := range articles.Values() {
		if !matched.Contains(n) {
			notFound = append(notFound, n)
		}
	}
	sort.Slice(notFound, func(i, j int) bool {
		a, _ := strconv.Atoi(notFound[i])
		b, _ := strconv.Atoi(notFound[j])
		return a < b
	})

	return Report{Lines: kept, NotFound: notFound}
}

// sortKey returns the numeric value of the first 6-digit run in line, or a
// sentinel past every possible key when the line has none.
func sortKey(line string) int {
	n := keyRe.FindString(line)
	if n == "" {
		return math.MaxInt
	}
	v, _ := strconv.Atoi(n)
	return v
}
