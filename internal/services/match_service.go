package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/fredrikhm/artmatch/internal/core"
	"github.com/fredrikhm/artmatch/internal/match"
	"github.com/fredrikhm/artmatch/internal/models"
	"github.com/fredrikhm/artmatch/internal/pdfread"
	"github.com/fredrikhm/artmatch/internal/report"
)

// MatchService runs the extract, search and report pipeline over a staged
// source document and the candidate PDFs next to it.
type MatchService struct {
	reader core.DocumentReader
	store  core.ReportStore
}

func NewMatchService(reader core.DocumentReader, store core.ReportStore) *MatchService {
	return &MatchService{reader: reader, store: store}
}

// Run extracts the article numbers from the document at sourcePath, searches
// every other PDF in stagingDir for them, and stores the rendered report.
// The steps run strictly in sequence; any read failure aborts the run.
func (s *MatchService) Run(ctx context.Context, sourcePath, stagingDir string) (*models.MatchResult, error) {
	pages, err := s.reader.ReadPages(ctx, sourcePath)
	if err != nil {
		return nil, err
	}

	articles := match.ExtractArticles(pages)
	if articles.Len() == 0 {
		return nil, fmt.Errorf("no article numbers in %s", filepath.Base(sourcePath))
	}

	paths, err := pdfread.ListPDFs(stagingDir, filepath.Base(sourcePath))
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	matcher := match.NewMatcher(s.reader)
	lines, found, err := matcher.FindMatches(ctx, articles, paths)
	if err != nil {
		return nil, err
	}

	rep := match.BuildReport(lines, articles, found)

	data, err := report.Render(rep)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	name := id + ".pdf"
	url, err := s.store.Save(ctx, name, data, "application/pdf")
	if err != nil {
		return nil, err
	}

	return &models.MatchResult{
		ID:           id,
		SourceFile:   filepath.Base(sourcePath),
		ArticleCount: articles.Len(),
		MatchedLines: len(rep.Lines),
		NotFound:     rep.NotFound,
		ReportName:   name,
		ReportURL:    url,
		CreatedAt:    time.Now(),
	}, nil
}
