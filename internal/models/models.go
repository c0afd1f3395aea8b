package models

import (
	"time"
)

// MatchResult summarizes one matching run over a source document and its
// candidates. NotFound mirrors the red section of the rendered report, in
// ascending numeric order.
type MatchResult struct {
	ID           string    `json:"id"`
	SourceFile   string    `json:"source_file"`
	ArticleCount int       `json:"article_count"`
	MatchedLines int       `json:"matched_lines"`
	NotFound     []string  `json:"not_found"`
	ReportName   string    `json:"report_name"`
	ReportURL    string    `json:"report_url"`
	CreatedAt    time.Time `json:"created_at"`
}
