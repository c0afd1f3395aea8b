package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReportSortsByFirstNumericKey(t *testing.T) {
	matches := []string{
		"150002 walnut frame",
		"100001 oak frame",
		"199999 birch frame",
	}
	found := NewSet("150002", "100001", "199999")

	rep := BuildReport(matches, NewSet("100001", "150002", "199999"), found)

	assert.Equal(t, []string{
		"100001 oak frame",
		"150002 walnut frame",
		"199999 birch frame",
	}, rep.Lines)
	assert.Empty(t, rep.NotFound)
}

func TestBuildReportDropsLineWithUnfoundNumber(t *testing.T) {
	// The line was recorded because 100001 matched, but it also carries
	// 100002, which was never found anywhere. The whole line goes.
	matches := []string{"100001 shelf with 100002 bracket"}
	articles := NewSet("100001", "100002")
	found := NewSet("100001")

	rep := BuildReport(matches, articles, found)

	assert.Empty(t, rep.Lines)
	assert.Equal(t, []string{"100001", "100002"}, rep.NotFound)
}

func TestBuildReportLinesWithoutKeySortLast(t *testing.T) {
	matches := []string{
		"appendix note without a number",
		"100001 oak frame",
	}
	found := NewSet("100001")

	rep := BuildReport(matches, NewSet("100001"), found)

	assert.Equal(t, []string{
		"100001 oak frame",
		"appendix note without a number",
	}, rep.Lines)
}

func TestBuildReportNotFoundSortedNumerically(t *testing.T) {
	articles := NewSet("100100", "100003", "100020")

	rep := BuildReport(nil, articles, NewSet())

	assert.Empty(t, rep.Lines)
	assert.Equal(t, []string{"100003", "100020", "100100"}, rep.NotFound)
}

func TestBuildReportDerivesMatchedFromKeptLines(t *testing.T) {
	// 100002 backs a dropped line, so it counts as not found even though the
	// scan once recorded a line for it.
	matches := []string{
		"100001 oak frame",
		"100002 shelf with 100003 bracket",
	}
	articles := NewSet("100001", "100002", "100003")
	found := NewSet("100001", "100002")

	rep := BuildReport(matches, articles, found)

	assert.Equal(t, []string{"100001 oak frame"}, rep.Lines)
	assert.Equal(t, []string{"100002", "100003"}, rep.NotFound)
}

func TestBuildReportStableForEqualKeys(t *testing.T) {
	matches := []string{
		"100001 first occurrence",
		"100001 second occurrence",
	}
	found := NewSet("100001")

	rep := BuildReport(matches, NewSet("100001"), found)

	assert.Equal(t, matches, rep.Lines)
}
