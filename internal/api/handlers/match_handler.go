package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fredrikhm/artmatch/internal/config"
	"github.com/fredrikhm/artmatch/internal/core"
	"github.com/fredrikhm/artmatch/internal/services"
)

type MatchHandler struct {
	svc *services.MatchService
	cfg *config.Config
}

func NewMatchHandler(svc *services.MatchService, cfg *config.Config) *MatchHandler {
	return &MatchHandler{svc: svc, cfg: cfg}
}

// RunMatch stages the uploaded source PDF and candidate PDFs into a
// per-request directory, runs the matching pipeline over them, and returns
// the result as JSON. The staging directory is removed afterwards.
func (h *MatchHandler) RunMatch(w http.ResponseWriter, r *http.Request) {

	if err := r.ParseMultipartForm(h.cfg.MaxUploadMB << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	source, sourceHdr, err := r.FormFile("source")
	if err != nil {
		http.Error(w, "missing source file", http.StatusBadRequest)
		return
	}
	defer source.Close()

	candidates := r.MultipartForm.File["candidates"]
	if len(candidates) == 0 {
		http.Error(w, "no candidate files", http.StatusBadRequest)
		return
	}

	stagingDir := filepath.Join(h.cfg.StagingDir, uuid.NewString())
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		http.Error(w, fmt.Sprintf("staging failed: %v", err), http.StatusInternalServerError)
		return
	}
	defer os.RemoveAll(stagingDir)

	// Sanitize filenames to prevent path traversal
	sourceName := filepath.Base(sourceHdr.Filename)
	sourcePath := filepath.Join(stagingDir, sourceName)
	if err := stageUpload(source, sourcePath); err != nil {
		http.Error(w, fmt.Sprintf("staging failed: %v", err), http.StatusInternalServerError)
		return
	}

	// Candidates are staged concurrently; the matching pass itself stays
	// strictly sequential.
	g, gctx := errgroup.WithContext(r.Context())
	for _, fh := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			f, err := fh.Open()
			if err != nil {
				return fmt.Errorf("open upload %s: %w", fh.Filename, err)
			}
			defer f.Close()
			return stageUpload(f, filepath.Join(stagingDir, filepath.Base(fh.Filename)))
		})
	}
	if err := g.Wait(); err != nil {
		http.Error(w, fmt.Sprintf("staging failed: %v", err), http.StatusInternalServerError)
		return
	}

	runCtx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
	defer cancel()

	result, err := h.svc.Run(runCtx, sourcePath, stagingDir)
	if err != nil {
		var readErr *core.ReadError
		if errors.As(err, &readErr) {
			http.Error(w, readErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Printf("match run failed for %s: %v", sourceName, err)
		http.Error(w, fmt.Sprintf("match failed: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func stageUpload(src io.Reader, dst string) error {
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("stage %s: %w", dst, err)
	}
	return nil
}
