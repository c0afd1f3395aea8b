package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/fredrikhm/artmatch/internal/core"
	"github.com/fredrikhm/artmatch/internal/report"
)

type ReportHandler struct {
	store core.ReportStore
}

func NewReportHandler(store core.ReportStore) *ReportHandler {
	return &ReportHandler{store: store}
}

// GetReport streams a previously generated report PDF.
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "missing report id", http.StatusBadRequest)
		return
	}

	name := id
	if filepath.Ext(name) == "" {
		name += ".pdf"
	}

	rc, err := h.store.Open(r.Context(), name)
	if err != nil {
		http.Error(w, "report not found", http.StatusNotFound)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.DefaultFileName))
	if _, err := io.Copy(w, rc); err != nil {
		log.Printf("stream report %s: %v", name, err)
	}
}
